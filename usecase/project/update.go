package project

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/domain/model"
)

// UpdateInput specifies project fields that can be changed. The workspace
// reference is immutable and cannot be updated.
type UpdateInput struct {
	// ProjectID identifies the project.
	ProjectID int64 `json:"project_id"`
	// Title optionally updates the title.
	Title *string `json:"title,omitempty"`
	// Icon optionally updates the icon.
	Icon *string `json:"icon,omitempty"`
}

// UpdateOutput wraps the updated project.
type UpdateOutput struct {
	// Project is the updated entity.
	Project *model.Project `json:"project"`
}

// Update applies a partial update to a project.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.ProjectID == 0 {
		return nil, model.ErrProjectInvalid
	}
	p, err := u.Repos.Project.Get(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Icon != nil {
		p.Icon = *in.Icon
	}
	p.UpdatedAt = time.Now().UTC()
	if err := u.Repos.Project.Update(ctx, p); err != nil {
		return nil, err
	}
	return &UpdateOutput{Project: p}, nil
}
