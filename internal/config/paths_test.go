package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths_EnvOverride(t *testing.T) {
	kit := t.TempDir()
	t.Setenv("DEVKIT_ROOT", kit)

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}

	if paths.DevKitRoot != kit {
		t.Errorf("DevKitRoot = %q, want %q", paths.DevKitRoot, kit)
	}
}

func TestDefaultPaths_ExecutableFallback(t *testing.T) {
	t.Setenv("DEVKIT_ROOT", "")

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}

	if !filepath.IsAbs(paths.DevKitRoot) {
		t.Errorf("DevKitRoot = %q, want an absolute path", paths.DevKitRoot)
	}
}

func TestDefaultPaths_PlanFileInWorkingDirectory(t *testing.T) {
	t.Setenv("DEVKIT_ROOT", t.TempDir())

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	want := filepath.Join(cwd, PlanFileName)
	if paths.PlanFile != want {
		t.Errorf("PlanFile = %q, want %q", paths.PlanFile, want)
	}
}
