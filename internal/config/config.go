package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the worktree description shared by the staging commands.
type Config struct {
	// Worktree is the root directory all project paths are relative to.
	Worktree string `yaml:"worktree"`
	// BuildConfig is the active build configuration, e.g. "linux64" or "android-arm".
	BuildConfig string `yaml:"build_config"`
	// JavaProject is the project path of the Java bindings receiving the libraries.
	JavaProject string `yaml:"java_project"`
	// Projects maps project names to their paths relative to Worktree.
	Projects map[string]string `yaml:"projects"`
	// Packages maps toolchain package names to their installation roots.
	Packages map[string]string `yaml:"packages"`
}

const (
	// DefaultConfigFilename is the default filename for staging settings.
	DefaultConfigFilename = "jnistage.yaml"

	// DefaultJavaProject is the worktree path of the qimessaging Java project.
	DefaultJavaProject = "sdk/libqi-java/qimessaging"

	// DefaultFilePermissions is the file permission used when saving settings.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNoProjects is returned when the worktree declares no projects.
	errNoProjects = errors.New("at least one project must be declared")
	// errEmptyPath is returned when a project or package has no path.
	errEmptyPath = errors.New("path must not be empty")
)

// Load reads settings from path, resolves a relative worktree against the
// directory of the settings file and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	path = filepath.Clean(path)

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if cfg.Worktree != "" && !filepath.IsAbs(cfg.Worktree) {
		cfg.Worktree = filepath.Join(filepath.Dir(path), cfg.Worktree)
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields and fills in defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Worktree == "" {
		cfg.Worktree = "."
	}

	if cfg.JavaProject == "" {
		cfg.JavaProject = DefaultJavaProject
	}

	if len(cfg.Projects) == 0 {
		return errNoProjects
	}

	for name, path := range cfg.Projects {
		if path == "" {
			return fmt.Errorf("project %s: %w", name, errEmptyPath)
		}
	}

	for name, path := range cfg.Packages {
		if path == "" {
			return fmt.Errorf("package %s: %w", name, errEmptyPath)
		}
	}

	return nil
}
