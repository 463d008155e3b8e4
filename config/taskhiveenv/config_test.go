package taskhiveenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolve_NoConfigFile(t *testing.T) {
	workDir := t.TempDir()

	env, err := Resolve("", "", workDir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if env.Path != "" {
		t.Errorf("Path = %q, want empty", env.Path)
	}
	if env.Server.Listen != DefaultListen {
		t.Errorf("Server.Listen = %q, want %q", env.Server.Listen, DefaultListen)
	}
	if env.Store.URL != DefaultDBURL {
		t.Errorf("Store.URL = %q, want %q", env.Store.URL, DefaultDBURL)
	}
	if env.Dir != filepath.Join(workDir, DirName) {
		t.Errorf("Dir = %q, want %q", env.Dir, filepath.Join(workDir, DirName))
	}
}

func TestResolve_ConfigInWorkDir(t *testing.T) {
	workDir := t.TempDir()
	content := `version: 1
server:
  listen: ":9090"
store:
  url: "sqlite:/tmp/boards.db"
logging:
  format: json
  level: DEBUG
`
	if err := os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	env, err := Resolve("", "", workDir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if env.Version != 1 {
		t.Errorf("Version = %d, want 1", env.Version)
	}
	if env.Server.Listen != ":9090" {
		t.Errorf("Server.Listen = %q, want %q", env.Server.Listen, ":9090")
	}
	if env.Store.URL != "sqlite:/tmp/boards.db" {
		t.Errorf("Store.URL = %q, want %q", env.Store.URL, "sqlite:/tmp/boards.db")
	}
	if env.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", env.Logging.Format, "json")
	}
	if env.Logging.Level != "DEBUG" {
		t.Errorf("Logging.Level = %q, want %q", env.Logging.Level, "DEBUG")
	}
}

func TestResolve_ExplicitPath(t *testing.T) {
	workDir := t.TempDir()
	other := filepath.Join(workDir, "custom.yml")
	content := `version: 1
store:
  url: "memory:"
`
	if err := os.WriteFile(other, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	env, err := Resolve(other, "", workDir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if env.Path != other {
		t.Errorf("Path = %q, want %q", env.Path, other)
	}
	if env.Store.URL != "memory:" {
		t.Errorf("Store.URL = %q, want %q", env.Store.URL, "memory:")
	}
	// Omitted fields keep their defaults.
	if env.Server.Listen != DefaultListen {
		t.Errorf("Server.Listen = %q, want %q", env.Server.Listen, DefaultListen)
	}
}

func TestResolve_MalformedConfig(t *testing.T) {
	workDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte("version: [oops"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	if _, err := Resolve("", "", workDir); err == nil {
		t.Fatal("Resolve() should fail on malformed YAML")
	}
}

func TestLogDir(t *testing.T) {
	env := &Env{Dir: "/srv/taskhive/.taskhive"}
	if got := env.LogDir(); got != filepath.Join(env.Dir, "logs") {
		t.Errorf("LogDir() = %q, want %q", got, filepath.Join(env.Dir, "logs"))
	}

	env.Logging.Dir = "$TASKHIVE_DIR/custom-logs"
	if got := env.LogDir(); got != "/srv/taskhive/.taskhive/custom-logs" {
		t.Errorf("LogDir() = %q, want expansion of $TASKHIVE_DIR", got)
	}
}

func TestInitialConfigYAML(t *testing.T) {
	data, err := InitialConfigYAML()
	if err != nil {
		t.Fatalf("InitialConfigYAML() error: %v", err)
	}
	out := string(data)
	for _, want := range []string{"version: 1", DefaultListen, DefaultDBURL} {
		if !strings.Contains(out, want) {
			t.Errorf("generated config missing %q:\n%s", want, out)
		}
	}
}
