package database

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the GORM Postgres connection from DATABASE_URL, falling back
// to the discrete DB_* environment variables.
func Connect() (*gorm.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
