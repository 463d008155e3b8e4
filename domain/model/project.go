package model

import "time"

// Project belongs to exactly one workspace. The workspace reference is
// immutable after creation, and the title is unique within a workspace.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon"`
	WorkspaceID int64     `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
