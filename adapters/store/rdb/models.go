package rdb

import "time"

// WorkspaceRecord is the RDB persistence model for domain Workspace.
// Table name: workspaces
type WorkspaceRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (WorkspaceRecord) TableName() string { return "workspaces" }

// ProjectRecord persistence model. Title is unique within a workspace.
type ProjectRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:text;not null;uniqueIndex:idx_projects_workspace_title"`
	Icon        string    `gorm:"type:text"`
	WorkspaceID int64     `gorm:"not null;uniqueIndex:idx_projects_workspace_title"` // references Workspace
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ProjectRecord) TableName() string { return "projects" }

// TaskRecord persistence model
type TaskRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	ProjectID   int64     `gorm:"not null;index"` // references Project
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (TaskRecord) TableName() string { return "tasks" }

// CommentRecord persistence model
type CommentRecord struct {
	ID        int64       `gorm:"primaryKey;autoIncrement"`
	Content   string      `gorm:"type:text;not null"`
	AuthorID  int64       `gorm:"not null;index"` // references User
	TaskID    int64       `gorm:"not null;index"` // references Task
	Edited    bool        `gorm:"not null;default:false"`
	CreatedAt time.Time   `gorm:"not null"`
	UpdatedAt time.Time   `gorm:"not null"`
	Author    *UserRecord `gorm:"foreignKey:AuthorID"`
}

func (CommentRecord) TableName() string { return "comments" }

// UserRecord persistence model
type UserRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:text;not null;uniqueIndex"`
	Email     string    `gorm:"type:text;not null"`
	AvatarURL string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (UserRecord) TableName() string { return "users" }

// Named column projections, one per entity kind. Every query for an entity
// selects exactly this shape so callers can rely on which fields are present.
var (
	workspaceColumns = []string{"id", "name", "created_at", "updated_at"}
	projectColumns   = []string{"id", "title", "icon", "workspace_id", "created_at", "updated_at"}
	taskColumns      = []string{"id", "title", "description", "project_id", "created_at", "updated_at"}
	commentColumns   = []string{"id", "content", "author_id", "task_id", "edited", "created_at", "updated_at"}
	userColumns      = []string{"id", "username", "email", "avatar_url", "created_at", "updated_at"}

	// userViewColumns is the public user subset embedded in comments.
	userViewColumns = []string{"id", "username", "email", "avatar_url"}
)
