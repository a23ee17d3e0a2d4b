// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/transport/http/dto"
	"todo_backend/internal/feature/tasks/usecase"
	"todo_backend/internal/platform/jwt"
)

// TaskUsecase はタスク操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type TaskUsecase interface {
	Create(ctx context.Context, title, description string, ownerID uint) (*entity.Task, error)
	List(ctx context.Context, ownerID uint) ([]entity.Task, error)
	Get(ctx context.Context, id, ownerID uint) (*entity.Task, error)
	Update(ctx context.Context, id, ownerID uint, patch usecase.TaskPatch) (*entity.Task, error)
	Delete(ctx context.Context, id, ownerID uint) error
}

// TaskHandler はタスクのHTTPリクエストを処理します。
// すべてのエンドポイントはAuthRequiredミドルウェアの背後にあり、
// 解決済みユーザーIDを所有者述語として各操作に渡します。
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler は指定されたusecaseでTaskHandlerの新しいインスタンスを生成します。
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ownerID はミドルウェアが解決したユーザーIDを取得します。
// 未解決の場合は401を書き込みfalseを返します（フェイルクローズ）。
func ownerID(c *gin.Context) (uint, bool) {
	id, ok := jwt.CurrentUserID(c)
	if !ok {
		api.Error(c, http.StatusUnauthorized, "invalid token")
		return 0, false
	}
	return id, true
}

// taskID は:idパスパラメータを解析します。数値でない場合は400を書き込みます。
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		api.Error(c, http.StatusBadRequest, "Validation failed (numeric string is expected)")
		return 0, false
	}
	return uint(id), true
}

// notFoundMessage はNotFound応答のメッセージを組み立てます。
func notFoundMessage(id uint) string {
	return fmt.Sprintf("Task with ID %d not found", id)
}

// Create は POST /api/tasks を処理します。成功時は201で作成されたタスクを返します。
func (h *TaskHandler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), req.Title, req.Description, owner)
	if err != nil {
		slog.Error("task create failed", "error", err, "owner_id", owner)
		api.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, dto.TaskResFromEntity(task))
}

// List は GET /api/tasks を処理します。所有者のタスクを作成日時の降順で返します。
func (h *TaskHandler) List(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), owner)
	if err != nil {
		slog.Error("task list failed", "error", err, "owner_id", owner)
		api.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.TaskRes, 0, len(tasks))
	for i := range tasks {
		out = append(out, dto.TaskResFromEntity(&tasks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は GET /api/tasks/:id を処理します。
// 他ユーザーのタスクは存在しないタスクと区別されず404になります。
func (h *TaskHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), id, owner)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			api.Error(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		slog.Error("task get failed", "error", err, "task_id", id, "owner_id", owner)
		api.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.TaskResFromEntity(task))
}

// Update は PATCH /api/tasks/:id を処理します。
// リクエストに含まれるフィールドのみ上書きされます。
func (h *TaskHandler) Update(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	patch := usecase.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Done:        req.Done,
	}
	task, err := h.tasks.Update(c.Request.Context(), id, owner, patch)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			api.Error(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		slog.Error("task update failed", "error", err, "task_id", id, "owner_id", owner)
		api.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.TaskResFromEntity(task))
}

// Delete は DELETE /api/tasks/:id を処理します。
// 削除はハードデリートで、成功時は204を返します。2回目の削除は404になります。
func (h *TaskHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id, owner); err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			api.Error(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		slog.Error("task delete failed", "error", err, "task_id", id, "owner_id", owner)
		api.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Status(http.StatusNoContent)
}
