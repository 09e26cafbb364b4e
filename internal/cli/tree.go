package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/osmodel/internal/logging"
)

var treeFlags systemFlags

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Create the example files and display them",
	Args:  cobra.NoArgs,
	RunE:  runTree,
}

var pathsFlags systemFlags

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the paths of the example files",
	Long: `Create the example files, mirror them into an in-memory file system and
print one path per line, sorted. Directories end with their directory suffix.`,
	Args: cobra.NoArgs,
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(pathsCmd)
	addSystemFlags(treeCmd, &treeFlags)
	addSystemFlags(pathsCmd, &pathsFlags)
}

func runTree(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, treeFlags)
	if err != nil {
		return err
	}
	osys, err := newSystem(settings, logging.NewConsoleLoggerTo(cmd.OutOrStdout(), settings.Verbose))
	if err != nil {
		return err
	}
	if err := osys.CreateExampleFiles(); err != nil {
		return err
	}
	osys.DisplayAllFiles()
	return nil
}

func runPaths(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, pathsFlags)
	if err != nil {
		return err
	}
	// Scenario output goes to stderr so stdout stays one path per line.
	osys, err := newSystem(settings, logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), settings.Verbose))
	if err != nil {
		return err
	}
	if err := osys.CreateExampleFiles(); err != nil {
		return err
	}
	paths, err := osys.FileSystem().Paths()
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
