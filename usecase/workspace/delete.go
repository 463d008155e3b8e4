package workspace

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// DeleteInput identifies the workspace to delete.
type DeleteInput struct {
	// WorkspaceID is the workspace identifier.
	WorkspaceID int64 `json:"workspace_id"`
}

// DeleteOutput wraps the deleted workspace's prior shape.
type DeleteOutput struct {
	// Workspace is the entity as it was before deletion.
	Workspace *model.Workspace `json:"workspace"`
}

// Delete removes a workspace and returns its prior shape.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.WorkspaceID == 0 {
		return nil, model.ErrWorkspaceInvalid
	}
	w, err := u.Repos.Workspace.Get(ctx, in.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if err := u.Repos.Workspace.Delete(ctx, in.WorkspaceID); err != nil {
		return nil, err
	}
	return &DeleteOutput{Workspace: w}, nil
}
