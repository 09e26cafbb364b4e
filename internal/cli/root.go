package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

const asciiLogo = `  ____  ____  __  __  ___  ____  ____  __
 / __ \/ ___||  \/  |/ _ \|  _ \| ___|| |
| |  | \___ \| |\/| | | | | | | |  _| | |
| |__| |___) | |  | | |_| | |_| | |___| |___
 \____/|____/|_|  |_|\___/|____/|_____|_____|`

var rootCmd = &cobra.Command{
	Use:   "osmodel",
	Short: "Model operating system with pluggable file system backends",
	Long: asciiLogo + `

osmodel builds a file-element tree on one of three backends (linux, bsd, nt),
writes into it through the backend's own write call, and shuts down a set of
devices that are reset one after the other.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags, no terminal for the menu)
  3  - Panic or unexpected system error
  10 - Invalid configuration or backend kind
  20 - Element kind does not match the directory kind
  21 - Child or root index out of range
  22 - Write against an absent file`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for osmodel")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", ".", "Directory holding osmodel.yaml and .env")
	_ = rootCmd.MarkPersistentFlagDirname("config")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getConfigDir(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("config")
	if err != nil || dir == "" {
		return "."
	}
	return dir
}
