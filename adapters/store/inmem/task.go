package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
)

// TaskRepository is a thread-safe in-memory implementation.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[int64]*model.Task
	seq   int64
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks: make(map[int64]*model.Task),
	}
}

func (r *TaskRepository) Create(_ context.Context, t *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == 0 {
		r.seq++
		t.ID = r.seq
	} else if t.ID > r.seq {
		r.seq = t.ID
	}
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *TaskRepository) Get(_ context.Context, id int64) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, model.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *TaskRepository) List(_ context.Context) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Task, 0, len(r.tasks))
	for _, v := range r.tasks {
		cp := *v
		out = append(out, &cp)
	}
	sortTasks(out)
	return out, nil
}

func (r *TaskRepository) ListByProject(_ context.Context, projectID int64) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Task, 0)
	for _, v := range r.tasks {
		if v.ProjectID == projectID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sortTasks(out)
	return out, nil
}

func (r *TaskRepository) Update(_ context.Context, t *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tasks[t.ID]
	if !ok {
		return model.ErrTaskNotFound
	}
	cp := *t
	cp.CreatedAt = existing.CreatedAt
	cp.ProjectID = existing.ProjectID
	r.tasks[t.ID] = &cp
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return model.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func sortTasks(ts []*model.Task) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].ID < ts[j].ID })
}

// Compile-time assertion.
var _ domain.TaskRepository = (*TaskRepository)(nil)
