package task

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// ListInput defines optional filters for listing tasks.
type ListInput struct{}

// ListOutput wraps listed tasks.
type ListOutput struct {
	// Tasks is the collection returned.
	Tasks []*model.Task `json:"tasks"`
}

// List returns all tasks.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.Task.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Tasks: items}, nil
}

// ListByProjectInput identifies the project whose tasks to list.
type ListByProjectInput struct {
	// ProjectID is the owning project identifier.
	ProjectID int64 `json:"project_id"`
}

// ListByProjectOutput wraps the project's tasks.
type ListByProjectOutput struct {
	// Tasks is the collection returned.
	Tasks []*model.Task `json:"tasks"`
}

// ListByProject returns the tasks of one project. The project must exist:
// a missing parent fails before children are queried.
func (u *UseCase) ListByProject(ctx context.Context, in *ListByProjectInput) (*ListByProjectOutput, error) {
	if in == nil || in.ProjectID == 0 {
		return nil, model.ErrProjectInvalid
	}
	if _, err := u.Repos.Project.Get(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	items, err := u.Repos.Task.ListByProject(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	return &ListByProjectOutput{Tasks: items}, nil
}
