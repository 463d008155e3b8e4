package project

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// DeleteInput identifies the project to delete.
type DeleteInput struct {
	// ProjectID is the project identifier.
	ProjectID int64 `json:"project_id"`
}

// DeleteOutput wraps the deleted project's prior shape.
type DeleteOutput struct {
	// Project is the entity as it was before deletion.
	Project *model.Project `json:"project"`
}

// Delete removes a project and returns its prior shape.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.ProjectID == 0 {
		return nil, model.ErrProjectInvalid
	}
	p, err := u.Repos.Project.Get(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := u.Repos.Project.Delete(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	return &DeleteOutput{Project: p}, nil
}
