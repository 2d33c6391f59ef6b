package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both a missing resource and a scoped
	// (comment id, post id) pair that does not match. Callers cannot
	// distinguish "never existed" from "was deleted".
	ErrNotFound = errors.New("record not found")
	// ErrConflict signals a unique-constraint violation (username, email).
	ErrConflict = errors.New("record already exists")
)

// Store is the resource graph over the durable store. All mutation goes
// through it; each method is a single transactional interaction.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func uniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers without error translation.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
