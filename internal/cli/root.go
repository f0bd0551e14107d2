package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ruby-devkit/dk/internal/logging"
)

var (
	// Global flags
	verbosity int

	// helpRequested tracks whether usage text was shown; per the command
	// contract, a plain help invocation is still a usage failure.
	helpRequested bool
)

// rootCmd is the root command for dk.
var rootCmd = &cobra.Command{
	Use:     "dk",
	Version: "dev",
	Short:   "Configure installed Rubies to build native gems with the DevKit",
	Long: `dk wires the DevKit build toolchain into installed Ruby runtimes so that
RubyGems can compile native extensions.

Run 'dk init' to discover installed Rubies and write the installation plan,
review and edit the generated ` + "config.yml" + `, then run 'dk install'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return ErrUsage
	},
}

// SetVersion sets the version reported by 'dk version' and --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase diagnostic verbosity (repeatable)")

	// Record help invocations so Execute can report them as usage failures
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpRequested = true
		defaultHelp(cmd, args)
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the dk version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(installCmd)
}

// Execute executes the root command and classifies the outcome.
func Execute() error {
	helpRequested = false

	err := rootCmd.Execute()
	if err == nil {
		if helpRequested {
			return ErrUsage
		}
		return nil
	}

	// Cobra suppresses usage output on errors (SilenceUsage); print it
	// ourselves for malformed invocations so the user sees what to fix.
	if isUsageError(err) && !helpRequested {
		fmt.Fprint(os.Stderr, rootCmd.UsageString())
	}
	return err
}
