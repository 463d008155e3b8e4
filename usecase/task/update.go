package task

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/domain/model"
)

// UpdateInput specifies task fields that can be changed. The project
// reference is immutable and cannot be updated.
type UpdateInput struct {
	// TaskID identifies the task.
	TaskID int64 `json:"task_id"`
	// Title optionally updates the title.
	Title *string `json:"title,omitempty"`
	// Description optionally updates the description.
	Description *string `json:"description,omitempty"`
}

// UpdateOutput wraps the updated task.
type UpdateOutput struct {
	// Task is the updated entity.
	Task *model.Task `json:"task"`
}

// Update applies a partial update to a task.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.TaskID == 0 {
		return nil, model.ErrTaskInvalid
	}
	t, err := u.Repos.Task.Get(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	t.UpdatedAt = time.Now().UTC()
	if err := u.Repos.Task.Update(ctx, t); err != nil {
		return nil, err
	}
	return &UpdateOutput{Task: t}, nil
}
