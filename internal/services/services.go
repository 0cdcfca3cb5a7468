package services

import (
	"context"
	"errors"

	"github.com/avelinov/go-task-api/internal/models"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrConstraintViolation = errors.New("store constraint violation")
)

type TaskService interface {
	// CreateTask inserts a task owned by params.UserID. Status and
	// priority fall back to their defaults when empty. The returned
	// task carries the store-generated ID and CreatedAt.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// GetTasksByUserID returns every task owned by userID, ordered by
	// creation time ascending. An owner with no tasks gets an empty
	// slice, not an error.
	GetTasksByUserID(ctx context.Context, userID string) ([]*models.Task, error)

	// UpdateTask applies the given fields to the task matching both
	// params.ID and params.UserID. It returns ErrTaskNotFound when no
	// row matches, which covers both a nonexistent id and an id owned
	// by someone else.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask removes the task matching both params.ID and
	// params.UserID and returns the deleted rows. Deleting a task that
	// does not match is a no-op returning an empty slice.
	DeleteTask(ctx context.Context, params DeleteTaskParams) ([]*models.Task, error)
}

type CreateTaskParams struct {
	UserID   string
	Title    string
	Status   string
	Priority string
}

type UpdateTaskParams struct {
	ID       string
	UserID   string
	Title    string
	Status   string
	Priority string
}

type DeleteTaskParams struct {
	ID     string
	UserID string
}
