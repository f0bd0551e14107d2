// Package layout classifies the on-disk structure of a Ruby installation to
// decide which injection strategy applies.
//
// Classification is a pure function over the fsops.FS abstraction: it probes
// for RubyGems directories under two known subtree patterns and never
// mutates anything.
package layout

import (
	"fmt"
	"path/filepath"

	"github.com/ruby-devkit/dk/internal/fsops"
)

// Kind identifies the injection strategy for an installation root.
type Kind int

const (
	// Stub means RubyGems is absent: forwarding command stubs go into bin/.
	Stub Kind = iota

	// Override means RubyGems is present: a pre-install override file goes
	// into each matched rubygems directory.
	Override
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Stub:
		return "stub"
	case Override:
		return "override"
	default:
		return "unknown"
	}
}

// Layout describes how one installation root will be injected.
type Layout struct {
	// Kind selects the strategy. Exactly one strategy applies per root.
	Kind Kind

	// GemDirs lists the rubygems directories to inject into. Only set for
	// Override.
	GemDirs []string

	// HelperDir is the directory that receives the devkit helper library.
	HelperDir string
}

// Relative patterns probed under an installation root. Site-level matches
// shadow core-level matches.
var (
	siteGemPattern = filepath.Join("lib", "ruby", "site_ruby", "*", "rubygems")
	coreGemPattern = filepath.Join("lib", "ruby", "*", "rubygems")
)

// Classify inspects root and reports the applicable injection strategy.
func Classify(fs fsops.FS, root string) (*Layout, error) {
	site, err := matchDirs(fs, filepath.Join(root, siteGemPattern))
	if err != nil {
		return nil, err
	}
	core, err := matchDirs(fs, filepath.Join(root, coreGemPattern))
	if err != nil {
		return nil, err
	}

	l := &Layout{HelperDir: helperDir(fs, root)}
	switch {
	case len(site) > 0:
		l.Kind = Override
		l.GemDirs = site
	case len(core) > 0:
		l.Kind = Override
		l.GemDirs = core
	default:
		l.Kind = Stub
	}
	return l, nil
}

// matchDirs returns the directories matching pattern.
func matchDirs(fs fsops.FS, pattern string) ([]string, error) {
	matches, err := fs.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to probe %s: %w", pattern, err)
	}

	var dirs []string
	for _, match := range matches {
		if ok, err := fs.IsDir(match); err == nil && ok {
			dirs = append(dirs, match)
		}
	}
	return dirs, nil
}

// helperDir picks the library directory for the helper script: site_ruby
// when present, else the shared tree of an alternate implementation such as
// JRuby, identified by its launcher script next to the installation's bin
// directory.
func helperDir(fs fsops.FS, root string) string {
	site := filepath.Join(root, "lib", "ruby", "site_ruby")
	if ok, _ := fs.IsDir(site); ok {
		return site
	}

	shared := filepath.Join(root, "lib", "ruby", "shared")
	launcher := filepath.Join(root, "bin", "jruby.bat")
	sharedOK, _ := fs.IsDir(shared)
	launcherOK, _ := fs.Exists(launcher)
	if sharedOK && launcherOK {
		return shared
	}

	return site
}
