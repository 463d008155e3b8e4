package rdb

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
	"gorm.io/gorm"
)

// UserRepository is a GORM-backed implementation of domain.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userToRecord(u *model.User) *UserRecord {
	return &UserRecord{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func userToModel(r *UserRecord) *model.User {
	return &model.User{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		AvatarURL: r.AvatarURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	rec := userToRecord(u)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	u.ID = rec.ID
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	var rec UserRecord
	err := r.db.WithContext(ctx).Select(userColumns).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return userToModel(&rec), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	var recs []UserRecord
	if err := r.db.WithContext(ctx).Select(userColumns).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.User, 0, len(recs))
	for i := range recs {
		out = append(out, userToModel(&recs[i]))
	}
	return out, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&UserRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// Ensure interface satisfaction.
var _ domain.UserRepository = (*UserRepository)(nil)
