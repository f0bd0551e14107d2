// Package plan persists the list of installation roots selected for
// injection.
//
// The plan is a YAML sequence of absolute paths kept in the working
// directory, written with a documentation header so it can be edited by hand
// between 'dk init' and 'dk install'.
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ruby-devkit/dk/internal/fsops"
)

var (
	// ErrNotFound indicates the plan file does not exist.
	ErrNotFound = errors.New("plan file not found")

	// ErrInvalid indicates the plan file is not a YAML list of paths.
	ErrInvalid = errors.New("plan file is not a list of paths")

	// ErrEmpty indicates the plan file lists no installation roots.
	ErrEmpty = errors.New("plan file is empty")
)

const fileHeader = `# This configuration file lists the Ruby installations that 'dk install'
# will enhance to build native gems with the DevKit. Each entry is the
# absolute path to one installation root. Add or remove entries as needed,
# one per line, then re-run 'dk install'.
#
# Example:
#
# ---
# - C:/ruby193
# - C:/ruby200-x64
#
`

// FileStore reads and writes the plan file on disk.
type FileStore struct {
	fs   fsops.FS
	path string
}

// NewFileStore creates a new FileStore for the plan file at path.
func NewFileStore(fs fsops.FS, path string) *FileStore {
	return &FileStore{
		fs:   fs,
		path: path,
	}
}

// Path returns the location of the plan file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the plan and returns the listed installation roots.
//
// A missing file, a file that is not a YAML list of strings, and a file
// listing no roots are reported as ErrNotFound, ErrInvalid and ErrEmpty
// respectively.
func (s *FileStore) Load() ([]string, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var roots []string
	if err := yaml.Unmarshal(data, &roots); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	// Drop blank entries left behind by hand-editing
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		if strings.TrimSpace(root) != "" {
			cleaned = append(cleaned, root)
		}
	}

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, s.path)
	}

	return cleaned, nil
}

// Save writes the plan file with its documentation header.
func (s *FileStore) Save(roots []string) error {
	var b bytes.Buffer
	b.WriteString(fileHeader)
	b.WriteString("---\n")

	if len(roots) == 0 {
		b.WriteString("[]\n")
	} else {
		data, err := yaml.Marshal(roots)
		if err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		b.Write(data)
	}

	if err := s.fs.WriteFile(s.path, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}

	return nil
}
