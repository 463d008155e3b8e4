package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
)

// UserRepository is a thread-safe in-memory implementation.
type UserRepository struct {
	mu    sync.RWMutex
	users map[int64]*model.User
	seq   int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[int64]*model.User),
	}
}

func (r *UserRepository) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == 0 {
		r.seq++
		u.ID = r.seq
	} else if u.ID > r.seq {
		r.seq = u.ID
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) Get(_ context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) List(_ context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.User, 0, len(r.users))
	for _, v := range r.users {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// view returns the public projection of a user, or nil if absent.
func (r *UserRepository) view(id int64) *model.UserView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	return u.View()
}

// Compile-time assertion.
var _ domain.UserRepository = (*UserRepository)(nil)
