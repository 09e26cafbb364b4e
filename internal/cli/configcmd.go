package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/osmodel/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the osmodel.yaml project file",
}

var (
	configInitFlags systemFlags
	configInitForce bool
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write osmodel.yaml into the config directory",
	Long: `Write osmodel.yaml with the effective settings: defaults, overridden by
the environment and by --kind and --consume-policy. An existing file is kept
unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowFlags systemFlags

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	addSystemFlags(configInitCmd, &configInitFlags)
	addSystemFlags(configShowCmd, &configShowFlags)
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Replace an existing osmodel.yaml")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir := getConfigDir(cmd)
	if err := config.LoadEnvFile(dir); err != nil {
		return err
	}
	// The existing file is not consulted: init starts from defaults.
	settings, err := config.Resolve(nil, config.Overrides{
		Kind:          configInitFlags.kind,
		ConsumePolicy: configInitFlags.consumePolicy,
		Verbose:       getVerboseFlag(cmd),
	})
	if err != nil {
		return err
	}
	path, err := config.Create(dir, config.FromSettings(settings), configInitForce)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, configShowFlags)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(config.FromSettings(settings))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
