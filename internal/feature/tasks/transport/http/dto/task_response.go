package dto

import (
	"time"

	"todo_backend/internal/feature/tasks/domain/entity"
)

// TaskRes はタスク1件のJSON表現です。
type TaskRes struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	UserID      uint      `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskResFromEntity はタスクエンティティをJSON表現に変換します。
func TaskResFromEntity(t *entity.Task) TaskRes {
	return TaskRes{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
