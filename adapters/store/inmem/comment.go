package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
)

// CommentRepository is a thread-safe in-memory implementation. It holds
// references to the sibling repositories to embed author views and to walk
// the comment → task → project → workspace relation.
type CommentRepository struct {
	mu       sync.RWMutex
	comments map[int64]*model.Comment
	seq      int64

	users    *UserRepository
	tasks    *TaskRepository
	projects *ProjectRepository
}

func NewCommentRepository(users *UserRepository, tasks *TaskRepository, projects *ProjectRepository) *CommentRepository {
	return &CommentRepository{
		comments: make(map[int64]*model.Comment),
		users:    users,
		tasks:    tasks,
		projects: projects,
	}
}

func (r *CommentRepository) Create(_ context.Context, c *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == 0 {
		r.seq++
		c.ID = r.seq
	} else if c.ID > r.seq {
		r.seq = c.ID
	}
	cp := *c
	cp.Edited = false
	cp.Author = nil
	r.comments[c.ID] = &cp
	c.Edited = false
	c.Author = r.users.view(c.AuthorID)
	return nil
}

func (r *CommentRepository) Get(_ context.Context, id int64) (*model.Comment, error) {
	r.mu.RLock()
	c, ok := r.comments[id]
	if !ok {
		r.mu.RUnlock()
		return nil, model.ErrCommentNotFound
	}
	cp := *c
	r.mu.RUnlock()
	cp.Author = r.users.view(cp.AuthorID)
	return &cp, nil
}

func (r *CommentRepository) List(_ context.Context) ([]*model.Comment, error) {
	return r.collect(func(*model.Comment) bool { return true }), nil
}

func (r *CommentRepository) ListByTask(_ context.Context, taskID int64) ([]*model.Comment, error) {
	return r.collect(func(c *model.Comment) bool { return c.TaskID == taskID }), nil
}

// Update persists content changes and forces Edited true.
func (r *CommentRepository) Update(_ context.Context, c *model.Comment) error {
	r.mu.Lock()
	existing, ok := r.comments[c.ID]
	if !ok {
		r.mu.Unlock()
		return model.ErrCommentNotFound
	}
	cp := *c
	cp.CreatedAt = existing.CreatedAt
	cp.TaskID = existing.TaskID
	cp.AuthorID = existing.AuthorID
	cp.Edited = true
	cp.Author = nil
	r.comments[c.ID] = &cp
	r.mu.Unlock()
	c.Edited = true
	c.Author = r.users.view(cp.AuthorID)
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return model.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

// WorkspaceID walks comment → task → project → workspace, returning
// (nil, nil) when any hop is missing.
func (r *CommentRepository) WorkspaceID(ctx context.Context, commentID int64) (*int64, error) {
	r.mu.RLock()
	c, ok := r.comments[commentID]
	if !ok {
		r.mu.RUnlock()
		return nil, nil
	}
	taskID := c.TaskID
	r.mu.RUnlock()

	task, err := r.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, nil
	}
	project, err := r.projects.Get(ctx, task.ProjectID)
	if err != nil {
		return nil, nil
	}
	id := project.WorkspaceID
	return &id, nil
}

func (r *CommentRepository) collect(keep func(*model.Comment) bool) []*model.Comment {
	r.mu.RLock()
	out := make([]*model.Comment, 0)
	for _, v := range r.comments {
		if keep(v) {
			cp := *v
			out = append(out, &cp)
		}
	}
	r.mu.RUnlock()
	for _, c := range out {
		c.Author = r.users.view(c.AuthorID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Compile-time assertion.
var _ domain.CommentRepository = (*CommentRepository)(nil)
