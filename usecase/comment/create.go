package comment

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/domain/model"
)

// CreateInput contains data to create a comment. Payload fields come first,
// then the referenced identifiers.
type CreateInput struct {
	// Content is the comment body.
	Content string `json:"content"`
	// AuthorID identifies the authoring user.
	AuthorID int64 `json:"author_id"`
	// TaskID identifies the owning task.
	TaskID int64 `json:"task_id"`
}

// CreateOutput wraps the created comment.
type CreateOutput struct {
	// Comment is the newly created entity, with the author view embedded.
	Comment *model.Comment `json:"comment"`
}

// Create persists a new comment after verifying the task and author exist.
// Edited starts out false.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Content == "" || in.AuthorID == 0 || in.TaskID == 0 {
		return nil, model.ErrCommentInvalid
	}
	if _, err := u.Repos.Task.Get(ctx, in.TaskID); err != nil {
		return nil, err
	}
	if _, err := u.Repos.User.Get(ctx, in.AuthorID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &model.Comment{
		Content:   in.Content,
		AuthorID:  in.AuthorID,
		TaskID:    in.TaskID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Repos.Comment.Create(ctx, c); err != nil {
		return nil, err
	}
	// Re-read to return the shaped record with the author view embedded.
	created, err := u.Repos.Comment.Get(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Comment: created}, nil
}
