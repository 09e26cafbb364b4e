package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/osmodel/internal/logging"
	"github.com/vvka-141/osmodel/internal/system"
)

var demoFlags systemFlags

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every menu operation once",
	Long: `Run every menu operation once, in menu order: create files, display
them, print to a new file, send data to a network port, and shut down.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	addSystemFlags(demoCmd, &demoFlags)
}

func runDemo(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, demoFlags)
	if err != nil {
		return err
	}
	osys, err := newSystem(settings, logging.NewConsoleLoggerTo(cmd.OutOrStdout(), settings.Verbose))
	if err != nil {
		return err
	}
	return osys.RunScript(commandContext(cmd), system.Operations, inputsFrom(settings))
}
