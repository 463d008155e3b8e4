package domain

import (
	"context"

	"github.com/taskhive/taskhive/domain/model"
)

// WorkspaceRepository stores and retrieves Workspace aggregates.
type WorkspaceRepository interface {
	Create(ctx context.Context, w *model.Workspace) error
	Get(ctx context.Context, id int64) (*model.Workspace, error)
	List(ctx context.Context) ([]*model.Workspace, error)
	Update(ctx context.Context, w *model.Workspace) error
	Delete(ctx context.Context, id int64) error
}

// ProjectRepository stores and retrieves Project aggregates.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) error
	Get(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]*model.Project, error)
	// GetByWorkspaceTitle looks up a sibling project by its unique key.
	// Absence is not an error: it returns (nil, nil).
	GetByWorkspaceTitle(ctx context.Context, workspaceID int64, title string) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id int64) error
}

// TaskRepository stores and retrieves Task aggregates.
type TaskRepository interface {
	Create(ctx context.Context, t *model.Task) error
	Get(ctx context.Context, id int64) (*model.Task, error)
	List(ctx context.Context) ([]*model.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]*model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id int64) error
}

// CommentRepository stores and retrieves Comment aggregates.
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	Get(ctx context.Context, id int64) (*model.Comment, error)
	List(ctx context.Context) ([]*model.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]*model.Comment, error)
	// Update persists content changes and always forces Edited to true.
	Update(ctx context.Context, c *model.Comment) error
	Delete(ctx context.Context, id int64) error
	// WorkspaceID resolves the owning workspace of a comment by walking
	// comment → task → project → workspace. A nil result with nil error
	// means the chain is broken at some hop (including a missing comment).
	WorkspaceID(ctx context.Context, commentID int64) (*int64, error)
}

// UserRepository stores and retrieves User aggregates.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	Get(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Delete(ctx context.Context, id int64) error
}
