package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the kgplan home directory.
	DefaultDirName = ".kgplan"

	// TemplatesDirName is the subdirectory for docx templates.
	TemplatesDirName = "templates"

	// OutputDirName is the subdirectory for generated documents.
	OutputDirName = "output"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"

	// DatabaseFileName is the plan database file name.
	DatabaseFileName = "plans.db"
)

// Dir represents the kgplan home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.kgplan).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// DatabasePath returns the path to the plan database.
func (d *Dir) DatabasePath() string {
	return filepath.Join(d.path, DatabaseFileName)
}

// TemplatesDir returns the directory for docx templates.
func (d *Dir) TemplatesDir() string {
	return filepath.Join(d.path, TemplatesDirName)
}

// TemplatePath returns the path to a template by file name.
func (d *Dir) TemplatePath(name string) string {
	return filepath.Join(d.TemplatesDir(), name)
}

// OutputDir returns the directory for generated documents.
func (d *Dir) OutputDir() string {
	return filepath.Join(d.path, OutputDirName)
}

// OutputPath returns the output path for a generated plan document.
func (d *Dir) OutputPath(name string) string {
	return filepath.Join(d.OutputDir(), name)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	for _, dir := range []string{d.TemplatesDir(), d.OutputDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
