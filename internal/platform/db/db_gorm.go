// Package db opens the application's relational database connection.
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "todo_backend/internal/feature/auth/domain/entity"
	taskentity "todo_backend/internal/feature/tasks/domain/entity"
)

// Opener abstracts gorm.Open so connection retry logic is testable.
type Opener func(dsn string) (*gorm.DB, error)

// PostgresOpener opens a PostgreSQL connection with error translation
// enabled, so unique violations surface as gorm.ErrDuplicatedKey.
func PostgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry keeps trying to open the database until it succeeds or the
// timeout elapses. The database regularly comes up after the application in
// containerized deployments.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Migrate creates or updates the users and tasks tables, including the unique
// email index and the tasks→users foreign key.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&taskentity.Task{},
	)
}

// Open connects to PostgreSQL and optionally runs migrations.
// It fatals on unrecoverable errors since the process cannot serve without a database.
func Open(dsn string, runMigrations bool) *gorm.DB {
	db, err := ConnectWithRetry(dsn, 60*time.Second, PostgresOpener)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if runMigrations {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
