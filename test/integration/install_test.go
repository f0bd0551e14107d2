// Package integration exercises the full plan-then-install flow over real
// temporary directories, the way the dk binary drives it.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ruby-devkit/dk/internal/clock"
	"github.com/ruby-devkit/dk/internal/config"
	"github.com/ruby-devkit/dk/internal/fsops"
	"github.com/ruby-devkit/dk/internal/inject"
	"github.com/ruby-devkit/dk/internal/plan"
)

var fixedTime = time.Date(2013, 2, 27, 13, 14, 15, 0, time.UTC)

func makeTree(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
}

func TestInstallFlow(t *testing.T) {
	tmp := t.TempDir()
	devkit := filepath.Join(tmp, "devkit")
	makeTree(t, devkit, "bin", "mingw/bin")

	// One pre-RubyGems installation, one with a site rubygems tree
	oldRuby := filepath.Join(tmp, "ruby187")
	makeTree(t, oldRuby, "bin", "lib/ruby/site_ruby")
	newRuby := filepath.Join(tmp, "ruby193")
	makeTree(t, newRuby, "bin", "lib/ruby/site_ruby/1.9.1/rubygems")

	// Plan phase
	store := plan.NewFileStore(fsops.NewRealFS(), filepath.Join(tmp, "config.yml"))
	if err := store.Save([]string{oldRuby, newRuby}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	roots, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Install phase
	paths := config.Paths{DevKitRoot: devkit, PlanFile: store.Path()}
	injector := inject.New(fsops.NewRealFS(), clock.NewFakeClock(fixedTime), paths)
	result := injector.Run(roots, false)

	if failed := result.Failed(); failed != 0 {
		t.Fatalf("Failed() = %d, want 0: %+v", failed, result.Roots)
	}

	// The old installation gets command stubs
	for _, command := range []string{"gcc", "g++", "make", "sh"} {
		stub := filepath.Join(oldRuby, "bin", command+".bat")
		data, err := os.ReadFile(stub)
		if err != nil {
			t.Fatalf("stub %s not written: %v", command, err)
		}
		if !strings.Contains(string(data), "RI_DEVKIT") {
			t.Errorf("stub %s does not set RI_DEVKIT:\n%s", command, data)
		}
	}

	// The new installation gets the rubygems override instead
	override := filepath.Join(newRuby, "lib", "ruby", "site_ruby", "1.9.1", "rubygems", "defaults", "operating_system.rb")
	if _, err := os.Stat(override); err != nil {
		t.Errorf("override not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(newRuby, "bin", "gcc.bat")); !os.IsNotExist(err) {
		t.Errorf("stub written to an installation with rubygems")
	}

	// Both receive the helper library
	for _, root := range []string{oldRuby, newRuby} {
		helper := filepath.Join(root, "lib", "ruby", "site_ruby", "devkit.rb")
		if _, err := os.Stat(helper); err != nil {
			t.Errorf("helper not written under %s: %v", root, err)
		}
	}
}

func TestInstallFlow_RepeatAndForce(t *testing.T) {
	tmp := t.TempDir()
	devkit := filepath.Join(tmp, "devkit")
	makeTree(t, devkit, "bin", "mingw/bin")

	ruby := filepath.Join(tmp, "ruby193")
	makeTree(t, ruby, "lib/ruby/site_ruby/1.9.1/rubygems")

	paths := config.Paths{DevKitRoot: devkit}
	clk := clock.NewFakeClock(fixedTime)
	injector := inject.New(fsops.NewRealFS(), clk, paths)

	if failed := injector.Run([]string{ruby}, false).Failed(); failed != 0 {
		t.Fatalf("first run failed %d roots", failed)
	}

	// A repeated run without force only reports skips
	second := injector.Run([]string{ruby}, false)
	for _, art := range second.Roots[0].Artifacts {
		if art.Action != inject.ActionSkipped {
			t.Errorf("second run action for %s = %v, want %v", art.Path, art.Action, inject.ActionSkipped)
		}
	}

	// A forced run backs everything up with the current timestamp
	later := time.Date(2013, 3, 1, 8, 30, 0, 0, time.UTC)
	clk.Set(later)
	third := injector.Run([]string{ruby}, true)

	stamp := clock.BackupStamp(later)
	for _, art := range third.Roots[0].Artifacts {
		if art.Action != inject.ActionReplaced {
			t.Errorf("forced run action for %s = %v, want %v", art.Path, art.Action, inject.ActionReplaced)
			continue
		}
		if art.Backup != art.Path+"."+stamp {
			t.Errorf("backup for %s = %q, want timestamp %s", art.Path, art.Backup, stamp)
		}
		if _, err := os.Stat(art.Backup); err != nil {
			t.Errorf("backup %s missing: %v", art.Backup, err)
		}
	}
}

func TestInstallFlow_HandEditedPlan(t *testing.T) {
	tmp := t.TempDir()
	ruby := filepath.Join(tmp, "ruby193")
	makeTree(t, ruby, "bin")

	// Simulate a user editing the generated plan by hand
	planFile := filepath.Join(tmp, "config.yml")
	content := "# my rubies\n---\n- " + filepath.ToSlash(ruby) + "\n- " + filepath.ToSlash(filepath.Join(tmp, "gone")) + "\n"
	if err := os.WriteFile(planFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write plan: %v", err)
	}

	store := plan.NewFileStore(fsops.NewRealFS(), planFile)
	roots, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	paths := config.Paths{DevKitRoot: filepath.Join(tmp, "devkit")}
	injector := inject.New(fsops.NewRealFS(), clock.NewFakeClock(fixedTime), paths)
	result := injector.Run(roots, false)

	if len(result.Roots) != 2 {
		t.Fatalf("got %d root results, want 2", len(result.Roots))
	}
	if result.Roots[0].Err != nil {
		t.Errorf("existing root failed: %v", result.Roots[0].Err)
	}
	if result.Roots[1].Err == nil {
		t.Errorf("missing root did not fail")
	}
	if got := result.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
}
