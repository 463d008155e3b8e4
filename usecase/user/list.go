package user

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// ListInput defines optional filters for listing users.
type ListInput struct{}

// ListOutput wraps listed users.
type ListOutput struct {
	// Users is the collection returned.
	Users []*model.User `json:"users"`
}

// List returns all users.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.User.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Users: items}, nil
}
