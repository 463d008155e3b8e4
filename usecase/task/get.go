package task

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// GetInput identifies the task to fetch.
type GetInput struct {
	// TaskID is the identifier of the task.
	TaskID int64 `json:"task_id"`
}

// GetOutput wraps the retrieved task.
type GetOutput struct {
	// Task is the fetched entity.
	Task *model.Task `json:"task"`
}

// Get retrieves a task by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.TaskID == 0 {
		return nil, model.ErrTaskInvalid
	}
	t, err := u.Repos.Task.Get(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Task: t}, nil
}
