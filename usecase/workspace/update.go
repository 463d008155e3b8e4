package workspace

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/domain/model"
)

// UpdateInput specifies workspace fields that can be changed.
type UpdateInput struct {
	// WorkspaceID identifies the workspace.
	WorkspaceID int64 `json:"workspace_id"`
	// Name optionally updates the name.
	Name *string `json:"name,omitempty"`
}

// UpdateOutput wraps the updated workspace.
type UpdateOutput struct {
	// Workspace is the updated entity.
	Workspace *model.Workspace `json:"workspace"`
}

// Update applies a partial update to a workspace.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.WorkspaceID == 0 {
		return nil, model.ErrWorkspaceInvalid
	}
	w, err := u.Repos.Workspace.Get(ctx, in.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		w.Name = *in.Name
	}
	w.UpdatedAt = time.Now().UTC()
	if err := u.Repos.Workspace.Update(ctx, w); err != nil {
		return nil, err
	}
	return &UpdateOutput{Workspace: w}, nil
}
