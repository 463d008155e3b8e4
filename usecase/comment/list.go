package comment

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// ListInput defines optional filters for listing comments.
type ListInput struct{}

// ListOutput wraps listed comments.
type ListOutput struct {
	// Comments is the collection returned.
	Comments []*model.Comment `json:"comments"`
}

// List returns all comments.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.Comment.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Comments: items}, nil
}

// ListByTaskInput identifies the task whose comments to list.
type ListByTaskInput struct {
	// TaskID is the owning task identifier.
	TaskID int64 `json:"task_id"`
}

// ListByTaskOutput wraps the task's comments.
type ListByTaskOutput struct {
	// Comments is the collection returned.
	Comments []*model.Comment `json:"comments"`
}

// ListByTask returns the comments of one task. The task must exist: a
// missing parent fails before children are queried.
func (u *UseCase) ListByTask(ctx context.Context, in *ListByTaskInput) (*ListByTaskOutput, error) {
	if in == nil || in.TaskID == 0 {
		return nil, model.ErrTaskInvalid
	}
	if _, err := u.Repos.Task.Get(ctx, in.TaskID); err != nil {
		return nil, err
	}
	items, err := u.Repos.Comment.ListByTask(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}
	return &ListByTaskOutput{Comments: items}, nil
}
