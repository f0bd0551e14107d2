package cli

import (
	"fmt"

	"github.com/ruby-devkit/dk/internal/clock"
	"github.com/ruby-devkit/dk/internal/config"
	"github.com/ruby-devkit/dk/internal/fsops"
	"github.com/ruby-devkit/dk/internal/inject"
	"github.com/ruby-devkit/dk/internal/plan"
)

// newPlanStore creates a plan store over the real filesystem.
func newPlanStore(paths *config.Paths) *plan.FileStore {
	return plan.NewFileStore(fsops.NewRealFS(), paths.PlanFile)
}

// newInjector creates an Injector with real implementations of all
// dependencies.
func newInjector(paths *config.Paths) *inject.Injector {
	return inject.New(fsops.NewRealFS(), &clock.RealClock{}, *paths)
}

// planError decorates plan-store failures with the re-init directive while
// keeping the sentinel in the error chain for exit-code classification.
func planError(err error) error {
	return fmt.Errorf("%w - run 'dk init' to (re)generate %s", err, config.PlanFileName)
}
