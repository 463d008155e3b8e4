package project

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// GetInput identifies the project to fetch.
type GetInput struct {
	// ProjectID is the identifier of the project.
	ProjectID int64 `json:"project_id"`
}

// GetOutput wraps the retrieved project.
type GetOutput struct {
	// Project is the fetched entity.
	Project *model.Project `json:"project"`
}

// Get retrieves a project by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.ProjectID == 0 {
		return nil, model.ErrProjectInvalid
	}
	p, err := u.Repos.Project.Get(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Project: p}, nil
}
