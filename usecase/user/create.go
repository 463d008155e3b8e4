package user

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/domain/model"
)

// CreateInput contains data to create a user.
type CreateInput struct {
	// Username is the unique account name.
	Username string `json:"username"`
	// Email is the account email address.
	Email string `json:"email"`
	// AvatarURL is the avatar image location.
	AvatarURL string `json:"avatar_url"`
}

// CreateOutput wraps the created user.
type CreateOutput struct {
	// User is the newly created entity.
	User *model.User `json:"user"`
}

// Create persists a new user.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Username == "" {
		return nil, model.ErrUserInvalid
	}
	now := time.Now().UTC()
	usr := &model.User{
		Username:  in.Username,
		Email:     in.Email,
		AvatarURL: in.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Repos.User.Create(ctx, usr); err != nil {
		return nil, err
	}
	return &CreateOutput{User: usr}, nil
}
