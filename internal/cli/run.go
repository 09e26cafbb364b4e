package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/osmodel/internal/logging"
	"github.com/vvka-141/osmodel/internal/system"
	"github.com/vvka-141/osmodel/internal/tui"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

var runFlags struct {
	systemFlags
	ops string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the operating system menu",
	Long: `Start the operating system menu.

On a terminal, run shows an interactive menu. When --kind is not given the
operating system is chosen first. Without a terminal (CI, pipes, or
OSMODEL_NON_INTERACTIVE=1) the operations must be listed with --ops and are
executed in order until shutdown.

Operations:
  create    Create Files
  display   Display All Files
  print     Print to File
  send      Send Data to Network Port
  shutdown  Shutdown

Examples:
  # Interactive menu
  osmodel run

  # Scripted session on the NT backend
  osmodel run --kind nt --ops create,display,print,shutdown`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addSystemFlags(runCmd, &runFlags.systemFlags)
	runCmd.Flags().StringVar(&runFlags.ops, "ops", "", "Comma-separated operations to run without the menu")
	_ = runCmd.RegisterFlagCompletionFunc("ops", completeOperations)
}

func runRun(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, runFlags.systemFlags)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	if runFlags.ops != "" {
		ops, err := system.ParseOperations(runFlags.ops)
		if err != nil {
			return err
		}
		osys, err := newSystem(settings, logging.NewConsoleLoggerTo(cmd.OutOrStdout(), settings.Verbose))
		if err != nil {
			return err
		}
		return osys.RunScript(ctx, ops, inputsFrom(settings))
	}

	if !tui.IsInteractive() {
		return fmt.Errorf("run without --ops: %w", osmodel.ErrNotInteractive)
	}
	askKind := !cmd.Flags().Changed("kind")
	return tui.NewMenu(tui.NewTeaPicker(), cmd.OutOrStdout(), settings, askKind).Run(ctx)
}
