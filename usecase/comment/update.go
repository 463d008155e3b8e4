package comment

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/domain/model"
)

// UpdateInput specifies comment fields that can be changed. The task and
// author references are immutable.
type UpdateInput struct {
	// CommentID identifies the comment.
	CommentID int64 `json:"comment_id"`
	// Content optionally updates the body.
	Content *string `json:"content,omitempty"`
}

// UpdateOutput wraps the updated comment.
type UpdateOutput struct {
	// Comment is the updated entity; Edited is always true.
	Comment *model.Comment `json:"comment"`
}

// Update applies a partial update to a comment. Any update marks the
// comment as edited, permanently.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.CommentID == 0 {
		return nil, model.ErrCommentInvalid
	}
	c, err := u.Repos.Comment.Get(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if in.Content != nil {
		c.Content = *in.Content
	}
	c.UpdatedAt = time.Now().UTC()
	if err := u.Repos.Comment.Update(ctx, c); err != nil {
		return nil, err
	}
	return &UpdateOutput{Comment: c}, nil
}
