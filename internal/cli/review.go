package cli

import (
	"github.com/spf13/cobra"

	"github.com/ruby-devkit/dk/internal/config"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Show the installation plan",
	Long: `Print the Ruby installations listed in ` + config.PlanFileName + ` that a
subsequent 'dk install' will enhance.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.DefaultPaths()
		if err != nil {
			return err
		}

		roots, err := newPlanStore(paths).Load()
		if err != nil {
			return planError(err)
		}

		PrintSection("Installation plan")
		PrintNumberedList(roots, 1)
		PrintInfo("")
		PrintInfo("'dk install' will enhance " + PrintCount(len(roots), "installation", "installations") + ".")
		return nil
	},
}
