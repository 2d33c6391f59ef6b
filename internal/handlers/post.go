package handlers

import (
	"net/http"

	"boardlink/internal/authz"
	"boardlink/internal/middleware"
	"boardlink/internal/store"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	store *store.Store
}

func NewPostHandler(st *store.Store) *PostHandler {
	return &PostHandler{store: st}
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// updatePostRequest is a partial update: nil fields stay untouched.
type updatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Content *string `json:"content"`
}

type listPostsQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid post payload")
		return
	}

	actor := middleware.Actor(c)
	post, err := h.store.CreatePost(actor.ID, req.Title, req.Content)
	if err != nil {
		storeError(c, err, "post")
		return
	}

	c.JSON(http.StatusCreated, newPostResponse(*post))
}

func (h *PostHandler) List(c *gin.Context) {
	var q listPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid pagination parameters")
		return
	}

	posts, err := h.store.ListPosts(q.Skip, q.Limit)
	if err != nil {
		storeError(c, err, "post")
		return
	}

	c.JSON(http.StatusOK, newPostSummaries(posts))
}

// Get serves a single post and records the view: every fetch counts, the
// author's own included.
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	post, err := h.store.RecordView(id)
	if err != nil {
		storeError(c, err, "post")
		return
	}

	c.JSON(http.StatusOK, newPostResponse(*post))
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	// Existence before ownership: a missing post is 404 for everyone.
	post, err := h.store.GetPost(id)
	if err != nil {
		storeError(c, err, "post")
		return
	}

	actor := middleware.Actor(c)
	if !authz.Can(actor.ID, post.AuthorID, authz.OpUpdate) {
		fail(c, http.StatusForbidden, "not authorized to update this post")
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid post payload")
		return
	}

	updated, err := h.store.UpdatePost(id, store.PostPatch{Title: req.Title, Content: req.Content})
	if err != nil {
		storeError(c, err, "post")
		return
	}

	c.JSON(http.StatusOK, newPostResponse(*updated))
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	post, err := h.store.GetPost(id)
	if err != nil {
		storeError(c, err, "post")
		return
	}

	actor := middleware.Actor(c)
	if !authz.Can(actor.ID, post.AuthorID, authz.OpDelete) {
		fail(c, http.StatusForbidden, "not authorized to delete this post")
		return
	}

	if err := h.store.DeletePost(id); err != nil {
		storeError(c, err, "post")
		return
	}

	c.Status(http.StatusNoContent)
}
