package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avelinov/go-task-api/internal/models"
	"github.com/avelinov/go-task-api/internal/services"
)

type taskResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:        task.ID,
		UserID:    task.UserID,
		Title:     task.Title,
		Status:    task.Status,
		Priority:  task.Priority,
		CreatedAt: task.CreatedAt,
	}
}

func newTaskListResponse(tasks []*models.Task) []taskResponse {
	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}
	return response
}

// taskRequest is the body schema shared by POST and PUT. It has no
// user_id field on purpose: ownership always comes from the resolved
// identity, so a spoofed value in the payload is dropped during binding.
// Status and priority are free-form labels; the store keeps plain text
// columns and only the defaults are application-defined.
type taskRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Status   string `json:"status" binding:"omitempty,max=50"`
	Priority string `json:"priority" binding:"omitempty,max=50"`
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.GetTasksByUserID(c, userID)
	if err != nil {
		abort(c, newStoreError())
		return
	}

	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newValidationError("invalid request body"))
		return
	}

	task, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		UserID:   userID,
		Title:    req.Title,
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		abort(c, newStoreError())
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newValidationError("invalid request body"))
		return
	}

	task, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		ID:       taskID,
		UserID:   userID,
		Title:    req.Title,
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError())
			return
		}

		abort(c, newStoreError())
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.tasks.DeleteTask(c, services.DeleteTaskParams{
		ID:     taskID,
		UserID: userID,
	})
	if err != nil {
		abort(c, newStoreError())
		return
	}

	c.JSON(http.StatusOK, newTaskListResponse(deleted))
}

// taskIDParam validates the id path parameter. A value that is not a
// uuid cannot name a stored row, so it gets the same answer as a
// nonexistent id instead of reaching the store and failing the cast
// there.
func (h *handlerImpl) taskIDParam(c *gin.Context) (string, bool) {
	taskID := c.Param("id")
	if _, err := uuid.Parse(taskID); err != nil {
		h.logger.Warn().
			Str("task_id", taskID).
			Msg("malformed task id")
		abort(c, newNotFoundError())
		return "", false
	}
	return taskID, true
}
