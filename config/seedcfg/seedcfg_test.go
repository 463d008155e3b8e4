package seedcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		root    Root
		wantErr string
	}{
		{
			name: "valid document",
			root: Root{
				Version: 1,
				Users:   []User{{Username: "ann"}},
				Workspaces: []Workspace{{
					Name: "hq",
					Projects: []Project{{
						Title: "Board",
						Tasks: []Task{{
							Title:    "Ship it",
							Comments: []Comment{{Content: "on it", Author: "ann"}},
						}},
					}},
				}},
			},
		},
		{
			name:    "duplicate username",
			root:    Root{Users: []User{{Username: "ann"}, {Username: "ann"}}},
			wantErr: "duplicate user",
		},
		{
			name: "duplicate project title in workspace",
			root: Root{Workspaces: []Workspace{{
				Name:     "hq",
				Projects: []Project{{Title: "Board"}, {Title: "Board"}},
			}}},
			wantErr: "duplicate project title",
		},
		{
			name: "undeclared comment author",
			root: Root{Workspaces: []Workspace{{
				Name: "hq",
				Projects: []Project{{
					Title: "Board",
					Tasks: []Task{{
						Title:    "Ship it",
						Comments: []Comment{{Content: "hi", Author: "ghost"}},
					}},
				}},
			}}},
			wantErr: "not declared",
		},
		{
			name:    "empty workspace name",
			root:    Root{Workspaces: []Workspace{{Name: ""}}},
			wantErr: "empty name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.root.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yml")
	content := `version: 1
users:
  - username: ann
workspaces:
  - name: hq
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if root.Version != 1 || len(root.Users) != 1 || len(root.Workspaces) != 1 {
		t.Fatalf("unexpected document: %+v", root)
	}

	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}
