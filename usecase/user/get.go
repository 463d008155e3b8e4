package user

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// GetInput identifies the user to fetch.
type GetInput struct {
	// UserID is the identifier of the user.
	UserID int64 `json:"user_id"`
}

// GetOutput wraps the retrieved user.
type GetOutput struct {
	// User is the fetched entity.
	User *model.User `json:"user"`
}

// Get retrieves a user by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.UserID == 0 {
		return nil, model.ErrUserInvalid
	}
	usr, err := u.Repos.User.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{User: usr}, nil
}
