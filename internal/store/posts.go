package store

import (
	"boardlink/internal/models"

	"gorm.io/gorm"
)

// PostPatch carries a partial update. A nil field is absent and leaves the
// stored value untouched.
type PostPatch struct {
	Title   *string
	Content *string
}

func (s *Store) CreatePost(authorID uint, title, content string) (*models.Post, error) {
	post := models.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return s.GetPost(post.ID)
}

// GetPost fetches a single post with its author. It has no side effects;
// view counting is RecordView's job.
func (s *Store) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("Author").First(&post, id).Error; err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// RecordView bumps the view counter by exactly one in a single SQL
// expression, so concurrent reads never lose an increment.
func (s *Store) RecordView(id uint) (*models.Post, error) {
	res := s.db.Model(&models.Post{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetPost(id)
}

// ListPosts returns posts newest first. Offset/limit bounds are the
// boundary layer's responsibility; this accepts validated integers.
func (s *Store) ListPosts(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("Author").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost applies only the fields present in the patch. Applying any
// field refreshes updated_at; an empty patch leaves the row as is.
func (s *Store) UpdatePost(id uint, patch PostPatch) (*models.Post, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if notFound(err) {
				return ErrNotFound
			}
			return err
		}
		updates := map[string]interface{}{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Content != nil {
			updates["content"] = *patch.Content
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&post).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetPost(id)
}

// DeletePost removes the post and all its comments in one transaction, so
// no orphan comments can be observed.
func (s *Store) DeletePost(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if notFound(err) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
