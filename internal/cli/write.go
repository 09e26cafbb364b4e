package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/osmodel/internal/logging"
)

var writeFlags systemFlags

var writeCmd = &cobra.Command{
	Use:   "write <text>",
	Short: "Print text to a new file",
	Long: `Create "my-file" on the chosen backend and write text into it through the
backend's own write call.

Examples:
  osmodel write "hello" --kind bsd`,
	Args: cobra.ExactArgs(1),
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)
	addSystemFlags(writeCmd, &writeFlags)
}

func runWrite(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, writeFlags)
	if err != nil {
		return err
	}
	osys, err := newSystem(settings, logging.NewConsoleLoggerTo(cmd.OutOrStdout(), settings.Verbose))
	if err != nil {
		return err
	}
	_, err = osys.PrintToFile(args[0])
	return err
}
