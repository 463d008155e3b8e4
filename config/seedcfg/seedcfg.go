// Package seedcfg loads a YAML seed document describing an initial board
// layout (users, workspaces, projects, tasks, comments). Seed files back the
// file: db-url scheme, which serves a fixed dataset from the memory store.
package seedcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Root is the top-level seed document.
type Root struct {
	Version    int         `yaml:"version"`
	Users      []User      `yaml:"users,omitempty"`
	Workspaces []Workspace `yaml:"workspaces,omitempty"`
}

// User seeds one user account. Username must be unique within the document;
// comments reference their author by username.
type User struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email,omitempty"`
	AvatarURL string `yaml:"avatarUrl,omitempty"`
}

// Workspace seeds one workspace and its nested projects.
type Workspace struct {
	Name     string    `yaml:"name"`
	Projects []Project `yaml:"projects,omitempty"`
}

// Project seeds one project and its nested tasks.
type Project struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon,omitempty"`
	Tasks []Task `yaml:"tasks,omitempty"`
}

// Task seeds one task and its nested comments.
type Task struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
	Comments    []Comment `yaml:"comments,omitempty"`
}

// Comment seeds one comment; Author names a user from the Users section.
type Comment struct {
	Content string `yaml:"content"`
	Author  string `yaml:"author"`
}

// Load reads and validates a seed file.
func Load(path string) (*Root, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %q: %w", path, err)
	}
	var root Root
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("parsing seed file %q: %w", path, err)
	}
	if err := root.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed file %q: %w", path, err)
	}
	return &root, nil
}

// Validate checks naming and reference integrity of the document.
func (r *Root) Validate() error {
	users := make(map[string]struct{}, len(r.Users))
	for _, u := range r.Users {
		if u.Username == "" {
			return fmt.Errorf("user with empty username")
		}
		if _, dup := users[u.Username]; dup {
			return fmt.Errorf("duplicate user %q", u.Username)
		}
		users[u.Username] = struct{}{}
	}
	for _, ws := range r.Workspaces {
		if ws.Name == "" {
			return fmt.Errorf("workspace with empty name")
		}
		titles := make(map[string]struct{}, len(ws.Projects))
		for _, p := range ws.Projects {
			if p.Title == "" {
				return fmt.Errorf("workspace %q: project with empty title", ws.Name)
			}
			if _, dup := titles[p.Title]; dup {
				return fmt.Errorf("workspace %q: duplicate project title %q", ws.Name, p.Title)
			}
			titles[p.Title] = struct{}{}
			for _, t := range p.Tasks {
				if t.Title == "" {
					return fmt.Errorf("project %q: task with empty title", p.Title)
				}
				for _, c := range t.Comments {
					if c.Author == "" {
						return fmt.Errorf("task %q: comment with empty author", t.Title)
					}
					if _, ok := users[c.Author]; !ok {
						return fmt.Errorf("task %q: comment author %q not declared in users", t.Title, c.Author)
					}
				}
			}
		}
	}
	return nil
}
