package store

import (
	"boardlink/internal/models"

	"gorm.io/gorm"
)

// CommentPatch carries a partial comment update; nil means untouched.
type CommentPatch struct {
	Content *string
}

func (s *Store) CreateComment(postID, authorID uint, content string) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id").First(&post, postID).Error; err != nil {
			if notFound(err) {
				return ErrNotFound
			}
			return err
		}
		comment = models.Comment{
			PostID:   postID,
			AuthorID: authorID,
			Content:  content,
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetComment(comment.ID, postID)
}

// GetComment looks a comment up by the (id, post id) pair. A comment id
// paired with the wrong post is indistinguishable from a missing one.
func (s *Store) GetComment(id, postID uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Preload("Author").
		Where("id = ? AND post_id = ?", id, postID).
		First(&comment).Error
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// ListComments returns a post's comments oldest first. A missing post is
// NotFound, not an empty list.
func (s *Store) ListComments(postID uint) ([]models.Comment, error) {
	var post models.Post
	if err := s.db.Select("id").First(&post, postID).Error; err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var comments []models.Comment
	err := s.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Store) UpdateComment(id, postID uint, patch CommentPatch) (*models.Comment, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		err := tx.Where("id = ? AND post_id = ?", id, postID).First(&comment).Error
		if err != nil {
			if notFound(err) {
				return ErrNotFound
			}
			return err
		}
		if patch.Content == nil {
			return nil
		}
		return tx.Model(&comment).Update("content", *patch.Content).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetComment(id, postID)
}

func (s *Store) DeleteComment(id, postID uint) error {
	res := s.db.Where("id = ? AND post_id = ?", id, postID).Delete(&models.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
