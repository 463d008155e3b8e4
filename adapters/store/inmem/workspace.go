package inmem

import (
	"context"
	"sync"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
)

// WorkspaceRepository is a thread-safe in-memory implementation.
type WorkspaceRepository struct {
	mu         sync.RWMutex
	workspaces map[int64]*model.Workspace
	seq        int64
}

func NewWorkspaceRepository() *WorkspaceRepository {
	return &WorkspaceRepository{
		workspaces: make(map[int64]*model.Workspace),
	}
}

func (r *WorkspaceRepository) Create(_ context.Context, w *model.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == 0 {
		r.seq++
		w.ID = r.seq
	} else if w.ID > r.seq {
		r.seq = w.ID
	}
	// Copy to avoid external mutation.
	cp := *w
	r.workspaces[w.ID] = &cp
	return nil
}

func (r *WorkspaceRepository) Get(_ context.Context, id int64) (*model.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workspaces[id]
	if !ok {
		return nil, model.ErrWorkspaceNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *WorkspaceRepository) List(_ context.Context) ([]*model.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Workspace, 0, len(r.workspaces))
	for _, v := range r.workspaces {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *WorkspaceRepository) Update(_ context.Context, w *model.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.workspaces[w.ID]
	if !ok {
		return model.ErrWorkspaceNotFound
	}
	cp := *w
	// Preserve CreatedAt if caller accidentally changed it.
	cp.CreatedAt = existing.CreatedAt
	r.workspaces[w.ID] = &cp
	return nil
}

func (r *WorkspaceRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workspaces[id]; !ok {
		return model.ErrWorkspaceNotFound
	}
	delete(r.workspaces, id)
	return nil
}

// Compile-time assertion.
var _ domain.WorkspaceRepository = (*WorkspaceRepository)(nil)
