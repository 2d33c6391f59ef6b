package handlers

import (
	"net/http"

	"boardlink/internal/authz"
	"boardlink/internal/middleware"
	"boardlink/internal/store"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(st *store.Store) *CommentHandler {
	return &CommentHandler{store: st}
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type updateCommentRequest struct {
	Content *string `json:"content"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid comment payload")
		return
	}

	actor := middleware.Actor(c)
	comment, err := h.store.CreateComment(postID, actor.ID, req.Content)
	if err != nil {
		storeError(c, err, "post")
		return
	}

	c.JSON(http.StatusCreated, newCommentResponse(*comment))
}

func (h *CommentHandler) List(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	comments, err := h.store.ListComments(postID)
	if err != nil {
		storeError(c, err, "post")
		return
	}

	c.JSON(http.StatusOK, newCommentResponses(comments))
}

func (h *CommentHandler) Update(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	// Scoped pair lookup: a comment id under the wrong post is NotFound,
	// and existence is settled before any ownership comparison.
	comment, err := h.store.GetComment(commentID, postID)
	if err != nil {
		storeError(c, err, "comment")
		return
	}

	actor := middleware.Actor(c)
	if !authz.Can(actor.ID, comment.AuthorID, authz.OpUpdate) {
		fail(c, http.StatusForbidden, "not authorized to update this comment")
		return
	}

	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid comment payload")
		return
	}

	updated, err := h.store.UpdateComment(commentID, postID, store.CommentPatch{Content: req.Content})
	if err != nil {
		storeError(c, err, "comment")
		return
	}

	c.JSON(http.StatusOK, newCommentResponse(*updated))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	comment, err := h.store.GetComment(commentID, postID)
	if err != nil {
		storeError(c, err, "comment")
		return
	}

	actor := middleware.Actor(c)
	if !authz.Can(actor.ID, comment.AuthorID, authz.OpDelete) {
		fail(c, http.StatusForbidden, "not authorized to delete this comment")
		return
	}

	if err := h.store.DeleteComment(commentID, postID); err != nil {
		storeError(c, err, "comment")
		return
	}

	c.Status(http.StatusNoContent)
}
