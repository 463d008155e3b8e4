package project

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// ListInput defines optional filters for listing projects.
type ListInput struct{}

// ListOutput wraps listed projects.
type ListOutput struct {
	// Projects is the collection returned.
	Projects []*model.Project `json:"projects"`
}

// List returns all projects.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.Project.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Projects: items}, nil
}

// ListByWorkspaceInput identifies the workspace whose projects to list.
type ListByWorkspaceInput struct {
	// WorkspaceID is the owning workspace identifier.
	WorkspaceID int64 `json:"workspace_id"`
}

// ListByWorkspaceOutput wraps the workspace's projects.
type ListByWorkspaceOutput struct {
	// Projects is the collection returned.
	Projects []*model.Project `json:"projects"`
}

// ListByWorkspace returns the projects of one workspace. The workspace must
// exist: a missing parent fails before children are queried.
func (u *UseCase) ListByWorkspace(ctx context.Context, in *ListByWorkspaceInput) (*ListByWorkspaceOutput, error) {
	if in == nil || in.WorkspaceID == 0 {
		return nil, model.ErrWorkspaceInvalid
	}
	if _, err := u.Repos.Workspace.Get(ctx, in.WorkspaceID); err != nil {
		return nil, err
	}
	items, err := u.Repos.Project.ListByWorkspace(ctx, in.WorkspaceID)
	if err != nil {
		return nil, err
	}
	return &ListByWorkspaceOutput{Projects: items}, nil
}
