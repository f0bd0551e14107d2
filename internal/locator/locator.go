// Package locator discovers installed Ruby runtimes on the host.
//
// Discovery reads the RubyInstaller registry keys on Windows. The scan is
// injectable so the normalization logic can be tested anywhere.
package locator

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ruby-devkit/dk/internal/logging"
)

// ScanFunc returns candidate installation roots reported by the platform.
type ScanFunc func() ([]string, error)

// Locator discovers installed Ruby runtimes.
type Locator struct {
	scan ScanFunc
	log  zerolog.Logger
}

// New creates a Locator backed by the platform registry scan.
func New() *Locator {
	return &Locator{
		scan: scanRegistry,
		log:  logging.GetLogger("locator"),
	}
}

// NewWithScan creates a Locator with a custom scan. Used in tests.
func NewWithScan(scan ScanFunc) *Locator {
	return &Locator{
		scan: scan,
		log:  logging.GetLogger("locator"),
	}
}

// Locate returns the deduplicated installation roots reported by the scan,
// in first-seen order. Windows paths compare case-insensitively.
func (l *Locator) Locate() ([]string, error) {
	candidates, err := l.scan()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(candidates))
	roots := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		candidate = filepath.Clean(candidate)

		key := strings.ToLower(filepath.ToSlash(candidate))
		if _, dup := seen[key]; dup {
			l.log.Debug().Str("root", candidate).Msg("duplicate installation root ignored")
			continue
		}
		seen[key] = struct{}{}
		roots = append(roots, candidate)
	}

	l.log.Debug().Int("count", len(roots)).Msg("installation roots located")
	return roots, nil
}
