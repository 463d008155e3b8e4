package comment

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// GetInput identifies the comment to fetch.
type GetInput struct {
	// CommentID is the identifier of the comment.
	CommentID int64 `json:"comment_id"`
}

// GetOutput wraps the retrieved comment.
type GetOutput struct {
	// Comment is the fetched entity.
	Comment *model.Comment `json:"comment"`
}

// Get retrieves a comment by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.CommentID == 0 {
		return nil, model.ErrCommentInvalid
	}
	c, err := u.Repos.Comment.Get(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Comment: c}, nil
}
