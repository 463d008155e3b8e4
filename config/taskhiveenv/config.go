// Package taskhiveenv resolves the taskhive runtime environment: the
// location of the config file and the settings it carries.
package taskhiveenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	ConfigEnvKey = "TASKHIVE_CONFIG"
	DirEnvKey    = "TASKHIVE_DIR"
)

// Directory and file names
const (
	DirName        = ".taskhive"
	ConfigFileName = "taskhive.yml"
)

// Defaults applied when the config file omits a value.
const (
	DefaultListen = ":8080"
	DefaultDBURL  = "sqlite:taskhive.db"
)

// Env holds the resolved taskhive directory and the loaded taskhive.yml
// contents.
type Env struct {
	Dir     string  // Resolved TASKHIVE_DIR (state directory, typically .taskhive)
	Path    string  // Config file path, empty when no file was found
	Version int     // taskhive.yml version
	Server  Server  // taskhive.yml server configuration
	Store   Store   // taskhive.yml store configuration
	Logging Logging // taskhive.yml logging configuration
}

// Server represents the server configuration from taskhive.yml
type Server struct {
	Listen string `yaml:"listen,omitempty"` // Listen address (default: :8080)
}

// Store represents the store configuration from taskhive.yml
type Store struct {
	URL string `yaml:"url,omitempty"` // Store URL: sqlite:<path> | memory: | file:<seed.yml>
}

// Logging represents the logging configuration from taskhive.yml
type Logging struct {
	Dir           string `yaml:"dir,omitempty"`           // Log directory (default: $TASKHIVE_DIR/logs)
	Format        string `yaml:"format,omitempty"`        // Log format: text (default), json
	Level         string `yaml:"level,omitempty"`         // Log level: DEBUG, INFO (default), WARN, ERROR
	RetentionDays int    `yaml:"retentionDays,omitempty"` // Days to retain log files (default: 7)
}

// configFile represents the structure of taskhive.yml for unmarshaling
type configFile struct {
	Version int     `yaml:"version"`
	Server  Server  `yaml:"server,omitempty"`
	Store   Store   `yaml:"store,omitempty"`
	Logging Logging `yaml:"logging,omitempty"`
}

// Resolve locates and loads taskhive.yml.
//
// Resolution order for the config file:
//  1. configPath parameter (from --config flag or TASKHIVE_CONFIG env)
//  2. taskhive.yml in workDir
//  3. No file: defaults only
//
// Resolution order for the state directory:
//  1. dir parameter (from --dir flag or TASKHIVE_DIR env)
//  2. Default: workDir/.taskhive
//
// Parameters can be empty strings to trigger discovery/defaults.
func Resolve(configPath, dir, workDir string) (*Env, error) {
	if dir == "" {
		dir = filepath.Join(workDir, DirName)
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving TASKHIVE_DIR to absolute path: %w", err)
	}
	dir = filepath.Clean(dir)

	env := &Env{
		Dir: dir,
		Server: Server{
			Listen: DefaultListen,
		},
		Store: Store{
			URL: DefaultDBURL,
		},
	}

	if configPath == "" {
		candidate := filepath.Join(workDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			configPath = candidate
		}
	}
	if configPath == "" {
		return env, nil
	}

	configPath, err = filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path to absolute path: %w", err)
	}
	if err := env.loadConfigFile(configPath); err != nil {
		return nil, err
	}
	return env, nil
}

// loadConfigFile loads a taskhive.yml into the Env, overriding defaults for
// every field the file sets.
func (e *Env) loadConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}

	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("parsing config file %q: %w", path, err)
	}

	e.Path = path
	e.Version = cf.Version
	if cf.Server.Listen != "" {
		e.Server.Listen = cf.Server.Listen
	}
	if cf.Store.URL != "" {
		e.Store.URL = cf.Store.URL
	}
	e.Logging = cf.Logging

	return nil
}

// LogDir returns the configured log directory, defaulting to the logs
// subdirectory of the state directory.
func (e *Env) LogDir() string {
	if e.Logging.Dir != "" {
		return e.ExpandVars(e.Logging.Dir)
	}
	return filepath.Join(e.Dir, "logs")
}

// ExpandVars replaces $TASKHIVE_DIR in the given string.
func (e *Env) ExpandVars(s string) string {
	return strings.ReplaceAll(s, "$TASKHIVE_DIR", e.Dir)
}

// InitialConfigYAML generates the initial taskhive.yml content as YAML bytes.
// The generated YAML has proper field ordering and 2-space indentation.
func InitialConfigYAML() ([]byte, error) {
	defaultConfig := configFile{
		Version: 1,
		Server: Server{
			Listen: DefaultListen,
		},
		Store: Store{
			URL: DefaultDBURL,
		},
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&defaultConfig); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("closing yaml encoder: %w", err)
	}

	return []byte(buf.String()), nil
}
