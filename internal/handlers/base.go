package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"boardlink/internal/store"

	"github.com/gin-gonic/gin"
)

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// storeError maps resource-graph failures onto the response contract.
// Anything that is not NotFound is a store-connectivity failure and fatal
// for the current operation.
func storeError(c *gin.Context, err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, what+" not found")
		return
	}
	fail(c, http.StatusInternalServerError, "internal error")
}

// pathID parses a numeric path parameter; a malformed id is a validation
// failure, not NotFound.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
