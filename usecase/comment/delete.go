package comment

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// DeleteInput identifies the comment to delete.
type DeleteInput struct {
	// CommentID is the comment identifier.
	CommentID int64 `json:"comment_id"`
}

// DeleteOutput wraps the deleted comment's prior shape.
type DeleteOutput struct {
	// Comment is the entity as it was before deletion.
	Comment *model.Comment `json:"comment"`
}

// Delete removes a comment and returns its prior shape.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.CommentID == 0 {
		return nil, model.ErrCommentInvalid
	}
	c, err := u.Repos.Comment.Get(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if err := u.Repos.Comment.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}
	return &DeleteOutput{Comment: c}, nil
}
