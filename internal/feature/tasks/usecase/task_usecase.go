package usecase

import (
	"context"

	"todo_backend/internal/feature/tasks/domain/entity"
)

// TaskPatch is a partial update. Only non-nil fields overwrite stored values;
// nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Done        *bool
}

// TaskRepository abstracts the persistence layer for task entities. Every
// operation takes the owner id as a mandatory predicate; there is no way to
// reach a task by id alone.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TaskRepository interface {
	// Create persists a new task with its owner attached.
	Create(ctx context.Context, task *entity.Task) error

	// FindAllByOwner retrieves all tasks of one owner, newest created first.
	FindAllByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error)

	// FindOneByOwner retrieves the task matching both id and owner in a
	// single query. It returns ErrTaskNotFound when no row matches.
	FindOneByOwner(ctx context.Context, id, ownerID uint) (*entity.Task, error)

	// Update merges the patch into the task matching id and owner and saves
	// it. It returns ErrTaskNotFound when no row matches.
	Update(ctx context.Context, id, ownerID uint, patch TaskPatch) (*entity.Task, error)

	// Delete removes the task matching both predicates and reports whether a
	// row was actually removed.
	Delete(ctx context.Context, id, ownerID uint) (bool, error)
}

// TaskUsecase is a thin pass-through over the repository. Its only job is to
// translate the store's not-found signal into ErrTaskNotFound for handlers.
type TaskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase creates a new TaskUsecase with the given repository.
func NewTaskUsecase(tasks TaskRepository) *TaskUsecase {
	return &TaskUsecase{tasks: tasks}
}

// Create inserts a new task owned by ownerID.
func (u *TaskUsecase) Create(ctx context.Context, title, description string, ownerID uint) (*entity.Task, error) {
	task := &entity.Task{
		Title:       title,
		Description: description,
		UserID:      ownerID,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns all tasks of the owner, newest created first.
func (u *TaskUsecase) List(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	return u.tasks.FindAllByOwner(ctx, ownerID)
}

// Get returns the owner's task with the given id.
func (u *TaskUsecase) Get(ctx context.Context, id, ownerID uint) (*entity.Task, error) {
	return u.tasks.FindOneByOwner(ctx, id, ownerID)
}

// Update applies a partial update to the owner's task with the given id.
func (u *TaskUsecase) Update(ctx context.Context, id, ownerID uint, patch TaskPatch) (*entity.Task, error) {
	return u.tasks.Update(ctx, id, ownerID, patch)
}

// Delete removes the owner's task with the given id. Deleting a task that
// does not exist (or belongs to someone else) returns ErrTaskNotFound.
func (u *TaskUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	deleted, err := u.tasks.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}
