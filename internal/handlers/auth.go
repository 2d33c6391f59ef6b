package handlers

import (
	"errors"
	"net/http"

	"boardlink/internal/auth"
	"boardlink/internal/middleware"
	"boardlink/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store *store.Store
	auth  *auth.Service
}

func NewAuthHandler(st *store.Store, svc *auth.Service) *AuthHandler {
	return &AuthHandler{store: st, auth: svc}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid registration payload")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := h.store.CreateUser(req.Username, req.Email, hash)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			fail(c, http.StatusConflict, "username or email already registered")
			return
		}
		fail(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(*user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid login payload")
		return
	}

	user, err := h.auth.Verify(req.Email, req.Password)
	if err != nil {
		fail(c, http.StatusUnauthorized, "incorrect email or password")
		return
	}

	token, err := h.auth.IssueToken(user.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.Actor(c)
	c.JSON(http.StatusOK, newUserResponse(*user))
}
