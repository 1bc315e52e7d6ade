package handler

import (
	"errors"
	"io"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/middleware"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// GET /me/tasks
func (h *TaskHandler) ListMine(c *gin.Context) {
	tasks, err := h.taskService.ListByUser(middleware.GetCurrentUserID(c), c.Query("status"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, tasks)
}

// GET /me/tasks/:id/items
func (h *TaskHandler) ListItems(c *gin.Context) {
	items, err := h.taskService.ListItems(parseID(c.Param("id")), middleware.GetCurrentUserID(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, items)
}

// POST /me/tasks/:id/items/:item_id/toggle
func (h *TaskHandler) ToggleItem(c *gin.Context) {
	// Omitting is_done marks the item done; the body may be empty entirely.
	var req struct {
		IsDone *bool `json:"is_done"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}
	isDone := true
	if req.IsDone != nil {
		isDone = *req.IsDone
	}

	item, err := h.taskService.ToggleItem(parseID(c.Param("id")), parseID(c.Param("item_id")), middleware.GetCurrentUserID(c), isDone)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"id":      item.ID,
		"task_id": item.TaskID,
		"is_done": item.IsDone,
	})
}

// PATCH /me/tasks/:id/progress
func (h *TaskHandler) UpdateProgress(c *gin.Context) {
	var req struct {
		ProgressPercent *int    `json:"progress_percent"`
		Status          *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	task, err := h.taskService.UpdateProgress(parseID(c.Param("id")), middleware.GetCurrentUserID(c), service.ProgressUpdate{
		ProgressPercent: req.ProgressPercent,
		Status:          req.Status,
	})
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"id":               task.ID,
		"status":           task.Status,
		"progress_percent": task.ProgressPercent,
	})
}
