package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
)

// ProjectRepository is a thread-safe in-memory implementation.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[int64]*model.Project
	seq      int64
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		projects: make(map[int64]*model.Project),
	}
}

func (r *ProjectRepository) Create(_ context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		r.seq++
		p.ID = r.seq
	} else if p.ID > r.seq {
		r.seq = p.ID
	}
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *ProjectRepository) Get(_ context.Context, id int64) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, model.ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProjectRepository) List(_ context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Project, 0, len(r.projects))
	for _, v := range r.projects {
		cp := *v
		out = append(out, &cp)
	}
	sortProjects(out)
	return out, nil
}

func (r *ProjectRepository) ListByWorkspace(_ context.Context, workspaceID int64) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Project, 0)
	for _, v := range r.projects {
		if v.WorkspaceID == workspaceID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sortProjects(out)
	return out, nil
}

func (r *ProjectRepository) GetByWorkspaceTitle(_ context.Context, workspaceID int64, title string) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.projects {
		if v.WorkspaceID == workspaceID && v.Title == title {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ProjectRepository) Update(_ context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[p.ID]
	if !ok {
		return model.ErrProjectNotFound
	}
	cp := *p
	cp.CreatedAt = existing.CreatedAt
	// Workspace reference is immutable after creation.
	cp.WorkspaceID = existing.WorkspaceID
	r.projects[p.ID] = &cp
	return nil
}

func (r *ProjectRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return model.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func sortProjects(ps []*model.Project) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}

// Compile-time assertion.
var _ domain.ProjectRepository = (*ProjectRepository)(nil)
