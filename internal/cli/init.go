package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruby-devkit/dk/internal/config"
	"github.com/ruby-devkit/dk/internal/locator"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Discover installed Rubies and write the installation plan",
	Long: `Scan the registry for installed Ruby runtimes and write the list of their
installation roots to ` + config.PlanFileName + ` in the current directory.

Review and edit the generated file before running 'dk install'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.DefaultPaths()
		if err != nil {
			return err
		}

		roots, err := locator.New().Locate()
		if err != nil {
			return fmt.Errorf("failed to locate installed rubies: %w", err)
		}

		if len(roots) == 0 {
			PrintWarning("No installed Rubies found in the registry.")
			PrintInfo("Add installation paths to " + config.PlanFileName + " by hand.")
		} else {
			PrintSection("Installed Rubies")
			PrintNumberedList(roots, 1)
		}

		if err := newPlanStore(paths).Save(roots); err != nil {
			return err
		}

		PrintSuccess("Initialized installation plan at " + paths.PlanFile)
		PrintInfo("Review it with 'dk review', then run 'dk install'.")
		return nil
	},
}
