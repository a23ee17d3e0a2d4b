// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/usecase"
)

// CachingTaskRepository decorates a TaskRepository with Redis caching of the
// per-owner task list. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
//
// Only the list query is cached: it is the hot read, and keying it by owner
// makes invalidation exact. Single-task reads and all writes go straight to
// the underlying repository; every write drops the owner's list entry.
type CachingTaskRepository struct {
	inner     usecase.TaskRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure the decorator still satisfies TaskRepository.
var _ usecase.TaskRepository = (*CachingTaskRepository)(nil)

// NewCachingTaskRepository decorates a TaskRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "tasks".
func NewCachingTaskRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TaskRepository, namespace string) *CachingTaskRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tasks"
	}
	return &CachingTaskRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ownerKey generates the cache key holding one owner's task list.
func (c *CachingTaskRepository) ownerKey(ownerID uint) string {
	return fmt.Sprintf("%s:owner:%d", c.namespace, ownerID)
}

// invalidate drops the owner's cached list. Best effort: cache failures never
// fail the write that triggered them.
func (c *CachingTaskRepository) invalidate(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.ownerKey(ownerID)).Err()
}

// Create inserts via the underlying repository and invalidates the owner's list.
func (c *CachingTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if err := c.inner.Create(ctx, task); err != nil {
		return err
	}
	c.invalidate(ctx, task.UserID)
	return nil
}

// FindAllByOwner retrieves the owner's tasks, checking cache first then
// falling back to the database.
func (c *CachingTaskRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAllByOwner(ctx, ownerID)
	}

	key := c.ownerKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Task
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindOneByOwner always reads through to the underlying repository.
func (c *CachingTaskRepository) FindOneByOwner(ctx context.Context, id, ownerID uint) (*entity.Task, error) {
	return c.inner.FindOneByOwner(ctx, id, ownerID)
}

// Update writes through and invalidates the owner's list.
func (c *CachingTaskRepository) Update(ctx context.Context, id, ownerID uint, patch usecase.TaskPatch) (*entity.Task, error) {
	task, err := c.inner.Update(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, ownerID)
	return task, nil
}

// Delete writes through and invalidates the owner's list when a row was removed.
func (c *CachingTaskRepository) Delete(ctx context.Context, id, ownerID uint) (bool, error) {
	deleted, err := c.inner.Delete(ctx, id, ownerID)
	if err != nil {
		return false, err
	}
	if deleted {
		c.invalidate(ctx, ownerID)
	}
	return deleted, nil
}
