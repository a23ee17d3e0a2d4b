package usecase

import (
	"context"
	"errors"
	"testing"

	"todo_backend/internal/feature/tasks/domain/entity"
)

// mockTaskRepository is a mock implementation of the TaskRepository interface.
type mockTaskRepository struct {
	CreateFunc         func(ctx context.Context, task *entity.Task) error
	FindAllByOwnerFunc func(ctx context.Context, ownerID uint) ([]entity.Task, error)
	FindOneByOwnerFunc func(ctx context.Context, id, ownerID uint) (*entity.Task, error)
	UpdateFunc         func(ctx context.Context, id, ownerID uint, patch TaskPatch) (*entity.Task, error)
	DeleteFunc         func(ctx context.Context, id, ownerID uint) (bool, error)
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	if m.FindAllByOwnerFunc != nil {
		return m.FindAllByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTaskRepository) FindOneByOwner(ctx context.Context, id, ownerID uint) (*entity.Task, error) {
	if m.FindOneByOwnerFunc != nil {
		return m.FindOneByOwnerFunc(ctx, id, ownerID)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) Update(ctx context.Context, id, ownerID uint, patch TaskPatch) (*entity.Task, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, ownerID, patch)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) Delete(ctx context.Context, id, ownerID uint) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, ownerID)
	}
	return false, nil
}

func TestTaskUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches owner and defaults done to false", func(t *testing.T) {
		mockRepo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				if task.UserID != 42 {
					t.Errorf("expected owner 42, got %d", task.UserID)
				}
				if task.Done {
					t.Error("new tasks must start not done")
				}
				task.ID = 1
				return nil
			},
		}

		uc := NewTaskUsecase(mockRepo)
		task, err := uc.Create(ctx, "Buy milk", "2 liters", 42)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != 1 || task.Title != "Buy milk" || task.Description != "2 liters" {
			t.Errorf("unexpected task: %+v", task)
		}
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				return expectedErr
			},
		}

		uc := NewTaskUsecase(mockRepo)
		_, err := uc.Create(ctx, "Buy milk", "", 42)

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}

func TestTaskUsecase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes owner id through", func(t *testing.T) {
		mockRepo := &mockTaskRepository{
			FindAllByOwnerFunc: func(ctx context.Context, ownerID uint) ([]entity.Task, error) {
				if ownerID != 42 {
					t.Errorf("expected owner 42, got %d", ownerID)
				}
				return []entity.Task{{ID: 2}, {ID: 1}}, nil
			},
		}

		uc := NewTaskUsecase(mockRepo)
		tasks, err := uc.List(ctx, 42)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 {
			t.Errorf("expected 2 tasks, got %d", len(tasks))
		}
	})
}

func TestTaskUsecase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards id and owner to the repository", func(t *testing.T) {
		mockRepo := &mockTaskRepository{
			FindOneByOwnerFunc: func(ctx context.Context, id, ownerID uint) (*entity.Task, error) {
				if id != 7 || ownerID != 42 {
					t.Errorf("expected (7, 42), got (%d, %d)", id, ownerID)
				}
				return &entity.Task{ID: 7, UserID: 42}, nil
			},
		}

		uc := NewTaskUsecase(mockRepo)
		task, err := uc.Get(ctx, 7, 42)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != 7 {
			t.Errorf("expected task 7, got %d", task.ID)
		}
	})

	t.Run("foreign task is reported as not found", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})
		_, err := uc.Get(ctx, 7, 99)

		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards the patch unchanged", func(t *testing.T) {
		title := "Updated"
		done := true
		mockRepo := &mockTaskRepository{
			UpdateFunc: func(ctx context.Context, id, ownerID uint, patch TaskPatch) (*entity.Task, error) {
				if patch.Title == nil || *patch.Title != "Updated" {
					t.Errorf("expected title patch 'Updated', got %v", patch.Title)
				}
				if patch.Description != nil {
					t.Error("description patch should stay nil")
				}
				if patch.Done == nil || !*patch.Done {
					t.Errorf("expected done patch true, got %v", patch.Done)
				}
				return &entity.Task{ID: id, UserID: ownerID, Title: *patch.Title, Done: *patch.Done}, nil
			},
		}

		uc := NewTaskUsecase(mockRepo)
		task, err := uc.Update(ctx, 7, 42, TaskPatch{Title: &title, Done: &done})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Title != "Updated" || !task.Done {
			t.Errorf("unexpected task: %+v", task)
		}
	})

	t.Run("missing task is reported as not found", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})
		_, err := uc.Update(ctx, 999, 42, TaskPatch{})

		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})
}

func TestTaskUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removed row resolves without error", func(t *testing.T) {
		mockRepo := &mockTaskRepository{
			DeleteFunc: func(ctx context.Context, id, ownerID uint) (bool, error) {
				return true, nil
			},
		}

		uc := NewTaskUsecase(mockRepo)
		if err := uc.Delete(ctx, 7, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no matching row yields ErrTaskNotFound", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})
		err := uc.Delete(ctx, 999, 42)

		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})

	t.Run("store failure is propagated untranslated", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockTaskRepository{
			DeleteFunc: func(ctx context.Context, id, ownerID uint) (bool, error) {
				return false, expectedErr
			},
		}

		uc := NewTaskUsecase(mockRepo)
		err := uc.Delete(ctx, 7, 42)

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
		if errors.Is(err, ErrTaskNotFound) {
			t.Error("store failure must not surface as not found")
		}
	})
}
