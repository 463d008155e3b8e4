package task

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// DeleteInput identifies the task to delete.
type DeleteInput struct {
	// TaskID is the task identifier.
	TaskID int64 `json:"task_id"`
}

// DeleteOutput wraps the deleted task's prior shape.
type DeleteOutput struct {
	// Task is the entity as it was before deletion.
	Task *model.Task `json:"task"`
}

// Delete removes a task and returns its prior shape.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.TaskID == 0 {
		return nil, model.ErrTaskInvalid
	}
	t, err := u.Repos.Task.Get(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}
	if err := u.Repos.Task.Delete(ctx, in.TaskID); err != nil {
		return nil, err
	}
	return &DeleteOutput{Task: t}, nil
}
