package store

import (
	"boardlink/internal/models"

	"gorm.io/gorm"
)

func (s *Store) CreateUser(username, email, passwordHash string) (*models.User, error) {
	user := models.User{
		Username: username,
		Email:    email,
		Password: passwordHash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if uniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user together with everything they authored, plus
// other users' comments on the deleted posts, in one transaction.
func (s *Store) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if notFound(err) {
				return ErrNotFound
			}
			return err
		}
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("author_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
