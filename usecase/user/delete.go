package user

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// DeleteInput identifies the user to delete.
type DeleteInput struct {
	// UserID is the user identifier.
	UserID int64 `json:"user_id"`
}

// DeleteOutput wraps the deleted user's prior shape.
type DeleteOutput struct {
	// User is the entity as it was before deletion.
	User *model.User `json:"user"`
}

// Delete removes a user and returns its prior shape.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.UserID == 0 {
		return nil, model.ErrUserInvalid
	}
	usr, err := u.Repos.User.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := u.Repos.User.Delete(ctx, in.UserID); err != nil {
		return nil, err
	}
	return &DeleteOutput{User: usr}, nil
}
