package handlers

import (
	"time"

	"boardlink/internal/models"
)

type authorResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type userResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type postResponse struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	AuthorID  uint           `json:"author_id"`
	Author    authorResponse `json:"author"`
	Views     int            `json:"views"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// postSummaryResponse is the listing projection: no content body.
type postSummaryResponse struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Author    authorResponse `json:"author"`
	Views     int            `json:"views"`
	CreatedAt time.Time      `json:"created_at"`
}

type commentResponse struct {
	ID        uint           `json:"id"`
	PostID    uint           `json:"post_id"`
	AuthorID  uint           `json:"author_id"`
	Author    authorResponse `json:"author"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func newAuthorResponse(u models.User) authorResponse {
	return authorResponse{ID: u.ID, Username: u.Username}
}

func newUserResponse(u models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newPostResponse(p models.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		Author:    newAuthorResponse(p.Author),
		Views:     p.Views,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newPostSummaries(posts []models.Post) []postSummaryResponse {
	out := make([]postSummaryResponse, len(posts))
	for i, p := range posts {
		out[i] = postSummaryResponse{
			ID:        p.ID,
			Title:     p.Title,
			Author:    newAuthorResponse(p.Author),
			Views:     p.Views,
			CreatedAt: p.CreatedAt,
		}
	}
	return out
}

func newCommentResponse(cm models.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		PostID:    cm.PostID,
		AuthorID:  cm.AuthorID,
		Author:    newAuthorResponse(cm.Author),
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
	}
}

func newCommentResponses(comments []models.Comment) []commentResponse {
	out := make([]commentResponse, len(comments))
	for i, cm := range comments {
		out[i] = newCommentResponse(cm)
	}
	return out
}
