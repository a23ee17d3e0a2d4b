// Package entity defines the domain entities for the tasks feature.
package entity

import (
	"time"

	authentity "todo_backend/internal/feature/auth/domain/entity"
)

// Task is a unit of work owned by exactly one user. Tasks are only ever
// reachable through queries that bind both the task id and the owner id.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey"`

	// Title is a required short description, at most 255 characters.
	Title string `gorm:"size:255;not null"`

	// Description is optional free-form text, at most 1000 characters.
	Description string `gorm:"type:text"`

	// Done marks the task as completed. New tasks start not done.
	Done bool `gorm:"not null;default:false"`

	// UserID is the owning user. A task with no resolvable owner is invalid.
	UserID uint `gorm:"index;not null"`

	// User declares the foreign key to users. No cascade: deleting a user
	// with existing tasks is rejected by the database.
	User authentity.User `gorm:"foreignKey:UserID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION" json:"-"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the task was last updated.
	UpdatedAt time.Time
}
