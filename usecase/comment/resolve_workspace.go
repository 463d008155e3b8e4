package comment

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// ResolveWorkspaceInput identifies the comment whose owning workspace to
// resolve.
type ResolveWorkspaceInput struct {
	// CommentID is the comment identifier.
	CommentID int64 `json:"comment_id"`
}

// ResolveWorkspaceOutput carries the resolved workspace id. WorkspaceID is
// nil when the comment → task → project → workspace chain is broken at any
// hop, including a missing comment. That is a result, not an error.
type ResolveWorkspaceOutput struct {
	WorkspaceID *int64 `json:"workspace_id"`
}

// ResolveWorkspace walks the relation chain upward from a comment to its
// owning workspace.
func (u *UseCase) ResolveWorkspace(ctx context.Context, in *ResolveWorkspaceInput) (*ResolveWorkspaceOutput, error) {
	if in == nil || in.CommentID == 0 {
		return nil, model.ErrCommentInvalid
	}
	id, err := u.Repos.Comment.WorkspaceID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	return &ResolveWorkspaceOutput{WorkspaceID: id}, nil
}
