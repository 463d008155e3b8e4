package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taskhive/taskhive/config/taskhiveenv"
	"gopkg.in/yaml.v3"
)

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetContext(context.Background())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestConfigInitCommand(t *testing.T) {
	tests := []struct {
		name       string
		existing   string // pre-existing taskhive.yml content
		args       []string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name: "new_directory",
			args: []string{"config", "init"},
		},
		{
			name:       "existing_config_no_force",
			existing:   "version: 1\n",
			args:       []string{"config", "init"},
			wantErr:    true,
			wantErrMsg: "already exists",
		},
		{
			name:     "existing_config_with_force",
			existing: "version: 1\n",
			args:     []string{"config", "init", "-f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			chdir(t, tmpDir)
			if tt.existing != "" {
				if err := os.WriteFile(taskhiveenv.ConfigFileName, []byte(tt.existing), 0644); err != nil {
					t.Fatal(err)
				}
			}

			_, err := runCommand(t, tt.args...)
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErrMsg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("command error: %v", err)
			}

			data, err := os.ReadFile(filepath.Join(tmpDir, taskhiveenv.ConfigFileName))
			if err != nil {
				t.Fatalf("reading generated config: %v", err)
			}
			var doc map[string]any
			if err := yaml.Unmarshal(data, &doc); err != nil {
				t.Fatalf("generated config is not valid YAML: %v", err)
			}
			if doc["version"] != 1 {
				t.Fatalf("version = %v, want 1", doc["version"])
			}
		})
	}
}

func TestConfigShowCommand(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	content := `version: 1
server:
  listen: ":9090"
store:
  url: "memory:"
`
	if err := os.WriteFile(taskhiveenv.ConfigFileName, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("command error: %v", err)
	}
	for _, want := range []string{"listen=:9090", "store=memory:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("command error: %v", err)
	}
	if !strings.Contains(out, "taskhive version") {
		t.Errorf("unexpected output: %s", out)
	}
}
