package db

import (
	"log"

	"boardlink/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The returned
// handle is built once at startup and shared read-only afterwards.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	log.Println("Database migration completed")

	return gdb, nil
}

// Migrate creates/updates the schema for all persisted models.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	)
}
