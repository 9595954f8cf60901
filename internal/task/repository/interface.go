package repository

import (
	"context"

	"darkwave-task-manager/internal/model"
)

// TodoistRepository is the interface for Todoist data access operations.
type TodoistRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
