//go:build !windows

package locator

import "errors"

// scanRegistry is a stub for non-Windows builds. Runtime discovery reads the
// Windows registry and has no equivalent elsewhere; add installation roots
// to the plan file by hand instead.
func scanRegistry() ([]string, error) {
	return nil, errors.New("ruby discovery requires the Windows registry")
}
