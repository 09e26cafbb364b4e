package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/vvka-141/osmodel/internal/config"
	"github.com/vvka-141/osmodel/internal/device"
	"github.com/vvka-141/osmodel/internal/factory"
	"github.com/vvka-141/osmodel/internal/system"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// systemFlags are the flags shared by every command that builds a system.
type systemFlags struct {
	kind          string
	consumePolicy string
}

func addSystemFlags(cmd *cobra.Command, f *systemFlags) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "Backend kind: linux, bsd or nt (env: OSMODEL_KIND)")
	cmd.Flags().StringVar(&f.consumePolicy, "consume-policy", "",
		"Who may consume network data: single-consumer-global or per-observer (env: OSMODEL_CONSUME_POLICY)")
	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)
	_ = cmd.RegisterFlagCompletionFunc("consume-policy", completeConsumePolicies)
}

// resolveSettings loads .env and osmodel.yaml from the config directory and
// applies the command line on top.
func resolveSettings(cmd *cobra.Command, f systemFlags) (config.Settings, error) {
	dir := getConfigDir(cmd)
	if err := config.LoadEnvFile(dir); err != nil {
		return config.Settings{}, err
	}

	cfg, err := config.Load(dir)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return config.Settings{}, err
	}

	return config.Resolve(cfg, config.Overrides{
		Kind:          f.kind,
		ConsumePolicy: f.consumePolicy,
		Verbose:       getVerboseFlag(cmd),
	})
}

// newSystem builds an operating system from resolved settings.
func newSystem(s config.Settings, log osmodel.Logger) (*system.OS, error) {
	reg, err := factory.NewRegistry()
	if err != nil {
		return nil, err
	}
	opts := []system.Option{
		system.WithLogger(log),
		system.WithRegistry(reg),
		system.WithConsumeTracker(device.NewConsumeTracker(s.ConsumePolicy)),
	}
	if len(s.Applications) > 0 {
		opts = append(opts, system.WithApplications(s.Applications...))
	}
	return system.New(s.Kind, opts...)
}

func inputsFrom(s config.Settings) system.Inputs {
	return system.Inputs{PrintText: s.PrintText, NetworkData: s.NetworkData}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
