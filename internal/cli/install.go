package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruby-devkit/dk/internal/config"
	"github.com/ruby-devkit/dk/internal/inject"
)

var installForce bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Inject the DevKit helpers into every planned installation",
	Long: `Enhance each Ruby installation listed in ` + config.PlanFileName + ` so that
native gems build against the DevKit toolchain.

Installations that already carry DevKit configuration are skipped unless
--force is given, in which case the existing files are backed up with a
timestamp suffix and rewritten.`,
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

		result := newInjector(paths).Run(roots, installForce)
		printResult(result)

		processed := len(result.Roots) - result.Failed()
		PrintInfo("")
		PrintSuccess(fmt.Sprintf("Processed %s", PrintCount(processed, "installation", "installations")))
		if failed := result.Failed(); failed > 0 {
			PrintWarning(fmt.Sprintf("Skipped %s", PrintCount(failed, "invalid entry", "invalid entries")))
		}
		return nil
	},
}

// printResult renders the per-root outcomes of an install run.
func printResult(result *inject.Result) {
	for _, rr := range result.Roots {
		PrintSection(rr.Root)

		if rr.Err != nil {
			PrintError(fmt.Sprintf("%v - entry skipped", rr.Err))
			continue
		}

		for _, art := range rr.Artifacts {
			switch art.Action {
			case inject.ActionCreated:
				PrintSuccess("created " + art.Path)
			case inject.ActionAppended:
				PrintSuccess("updated " + art.Path)
				PrintDetail("existing content preserved, DevKit hook appended")
			case inject.ActionReplaced:
				PrintSuccess("replaced " + art.Path)
				PrintDetail("backup: " + art.Backup)
				if art.Note != "" {
					PrintWarning(art.Note)
				}
			case inject.ActionSkipped:
				PrintWarning("skipped " + art.Path + ": " + art.Note)
			case inject.ActionFailed:
				PrintError("failed " + art.Path + ": " + art.Note)
			}
		}
	}
}

func init() {
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false, "Back up and rewrite artifacts that already exist")
}
