// Package adapters はtasksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/usecase"
)

// taskGorm はTaskRepositoryインターフェースのGORM実装です。
// すべてのクエリはタスクIDと所有者IDの両方を同一述語で束縛します。
type taskGorm struct {
	db *gorm.DB
}

// taskGormがTaskRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskRepository は指定されたgorm.DB接続でtaskGormの新しいインスタンスを生成します。
func NewTaskRepository(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// Create はタスクをデータベースに追加します。
func (r *taskGorm) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindAllByOwner は所有者のタスクを作成日時の降順で返します。
// 作成日時が同一の場合はIDの降順で順序を安定させます。
func (r *taskGorm) FindAllByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindOneByOwner はIDと所有者IDの両方に一致するタスクを単一クエリで取得します。
// IDのみで取得して後から所有者を確認することはしません（他ユーザーのタスクの
// 存在がエラー形状やタイミングから漏れるのを防ぐため）。
func (r *taskGorm) FindOneByOwner(ctx context.Context, id, ownerID uint) (*entity.Task, error) {
	var task entity.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Update は取得→マージ→保存のパターンで部分更新を適用します。
// パッチに含まれるフィールドのみ上書きし、nilのフィールドは保持されます。
func (r *taskGorm) Update(ctx context.Context, id, ownerID uint, patch usecase.TaskPatch) (*entity.Task, error) {
	task, err := r.FindOneByOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Done != nil {
		task.Done = *patch.Done
	}

	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Delete は両方の述語に一致する行を削除し、実際に削除されたかを返します。
// 呼び出し側はこれにより「削除済み」と「該当なし」を区別できます。
func (r *taskGorm) Delete(ctx context.Context, id, ownerID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entity.Task{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
