package project

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/domain/model"
)

// CreateInput contains data to create a project under a workspace.
type CreateInput struct {
	// WorkspaceID identifies the owning workspace.
	WorkspaceID int64 `json:"workspace_id"`
	// Title is the project title, unique within the workspace.
	Title string `json:"title"`
	// Icon is the project icon.
	Icon string `json:"icon"`
}

// CreateOutput wraps the created project.
type CreateOutput struct {
	// Project is the newly created entity.
	Project *model.Project `json:"project"`
}

// Create persists a new project after verifying the workspace exists and no
// sibling project occupies the same title.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.WorkspaceID == 0 || in.Title == "" {
		return nil, model.ErrProjectInvalid
	}
	if _, err := u.Repos.Workspace.Get(ctx, in.WorkspaceID); err != nil {
		return nil, err
	}
	sibling, err := u.Repos.Project.GetByWorkspaceTitle(ctx, in.WorkspaceID, in.Title)
	if err != nil {
		return nil, err
	}
	if sibling != nil {
		return nil, model.ErrProjectAlreadyExists
	}
	now := time.Now().UTC()
	p := &model.Project{
		Title:       in.Title,
		Icon:        in.Icon,
		WorkspaceID: in.WorkspaceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.Repos.Project.Create(ctx, p); err != nil {
		return nil, err
	}
	return &CreateOutput{Project: p}, nil
}
