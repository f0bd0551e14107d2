// Package config resolves the filesystem paths dk operates with.
//
// The DevKit root is the toolchain's own installation directory; it gets
// embedded into every generated artifact. The plan file lives in the
// working directory so it can be reviewed and edited between runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// PlanFileName is the name of the plan file written by 'dk init'.
const PlanFileName = "config.yml"

// Paths contains the filesystem paths used by dk.
type Paths struct {
	// DevKitRoot is the absolute path to the DevKit installation directory.
	DevKitRoot string

	// PlanFile is the absolute path to the plan file in the working directory.
	PlanFile string
}

// DefaultPaths returns the default paths for dk.
//
// The DevKit root can be overridden with the DEVKIT_ROOT environment
// variable; otherwise it is the directory containing the running executable,
// since dk ships inside the DevKit tree.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("DEVKIT_ROOT")
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to locate the dk executable: %w", err)
		}
		root = filepath.Dir(exe)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve the DevKit root: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return &Paths{
		DevKitRoot: root,
		PlanFile:   filepath.Join(cwd, PlanFileName),
	}, nil
}
