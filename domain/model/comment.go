package model

import "time"

// Comment belongs to exactly one task and has exactly one author.
// Edited is false on creation and forced true on any update.
// Author is a denormalized public view of the authoring user.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	TaskID    int64     `json:"task_id"`
	Edited    bool      `json:"edited"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Author    *UserView `json:"author,omitempty"`
}
