package task

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/domain/model"
)

// CreateInput contains data to create a task under a project.
type CreateInput struct {
	// ProjectID identifies the owning project.
	ProjectID int64 `json:"project_id"`
	// Title is the task title.
	Title string `json:"title"`
	// Description is the task description.
	Description string `json:"description"`
}

// CreateOutput wraps the created task.
type CreateOutput struct {
	// Task is the newly created entity.
	Task *model.Task `json:"task"`
}

// Create persists a new task after verifying the project exists.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.ProjectID == 0 || in.Title == "" {
		return nil, model.ErrTaskInvalid
	}
	if _, err := u.Repos.Project.Get(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.Repos.Task.Create(ctx, t); err != nil {
		return nil, err
	}
	return &CreateOutput{Task: t}, nil
}
