// Package inject mutates Ruby installations so that native gem builds can
// find the DevKit toolchain.
//
// Each installation root receives exactly one of two strategies, decided by
// layout.Classify:
//   - Stub: forwarding command stubs written into bin/ when RubyGems is
//     absent from the installation
//   - Override: a RubyGems pre-install override written into each matched
//     rubygems directory
//
// Every root additionally receives the standalone helper library. Existing
// files are renamed to <name>.<timestamp> before any destructive rewrite, so
// no user content is ever lost.
package inject

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ruby-devkit/dk/internal/clock"
	"github.com/ruby-devkit/dk/internal/config"
	"github.com/ruby-devkit/dk/internal/fsops"
	"github.com/ruby-devkit/dk/internal/layout"
	"github.com/ruby-devkit/dk/internal/logging"
)

// Injector performs the per-root injections.
// It is the main API surface called by the CLI.
type Injector struct {
	fs     fsops.FS
	clock  clock.Clock
	paths  config.Paths
	marker Marker
	log    zerolog.Logger
}

// New creates a new Injector with the given dependencies.
func New(fs fsops.FS, clk clock.Clock, paths config.Paths) *Injector {
	return &Injector{
		fs:     fs,
		clock:  clk,
		paths:  paths,
		marker: DefaultMarker,
		log:    logging.GetLogger("inject"),
	}
}

// Run injects every root in order. Failures are recorded per root and never
// stop the remaining entries; the processing of one root does not depend on
// the outcome of another.
func (in *Injector) Run(roots []string, force bool) *Result {
	res := &Result{}
	for _, root := range roots {
		res.Roots = append(res.Roots, in.injectRoot(root, force))
	}
	return res
}

// injectRoot applies all applicable injections to a single installation
// root.
func (in *Injector) injectRoot(root string, force bool) RootResult {
	rr := RootResult{Root: root}

	abs, err := filepath.Abs(root)
	if err != nil {
		rr.Err = fmt.Errorf("failed to resolve %s: %w", root, err)
		return rr
	}
	if ok, err := in.fs.IsDir(abs); err != nil || !ok {
		rr.Err = fmt.Errorf("%w: %s", ErrInvalidRoot, root)
		return rr
	}

	lay, err := layout.Classify(in.fs, abs)
	if err != nil {
		rr.Err = fmt.Errorf("failed to classify %s: %w", root, err)
		return rr
	}

	switch lay.Kind {
	case layout.Stub:
		in.log.Debug().Str("root", abs).Msg("rubygems not found, installing command stubs")
		in.installStubs(abs, &rr)
	case layout.Override:
		in.log.Debug().Str("root", abs).Strs("gemDirs", lay.GemDirs).Msg("installing rubygems override")
		in.installOverrides(lay.GemDirs, force, &rr)
	}

	in.installHelper(lay.HelperDir, force, &rr)
	return rr
}

// backup renames path to path.<timestamp> and returns the backup path.
func (in *Injector) backup(path string) (string, error) {
	bak := path + "." + clock.BackupStamp(in.clock.Now())
	if err := in.fs.Rename(path, bak); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", path, err)
	}
	in.log.Debug().Str("path", path).Str("backup", bak).Msg("existing file backed up")
	return bak, nil
}
