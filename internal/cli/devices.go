package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/osmodel/internal/logging"
	"github.com/vvka-141/osmodel/internal/tui"
	"github.com/vvka-141/osmodel/internal/ui"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

var devicesFlags struct {
	systemFlags
	data  string
	force bool
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Send data to a network port and shut the devices down",
	Long: `Attach the configured applications to a new network port, send data to
it, then reset every device in order.

With the default single-consumer-global policy only the first application
consumes the value. With per-observer every application consumes its first
value.

On a terminal the shutdown has to be confirmed by typing the backend kind.
--force replaces the prompt with a short countdown. Without a terminal the
shutdown proceeds unconfirmed.`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
	addSystemFlags(devicesCmd, &devicesFlags.systemFlags)
	devicesCmd.Flags().StringVar(&devicesFlags.data, "data", "", "Value sent to the network port")
	devicesCmd.Flags().BoolVarP(&devicesFlags.force, "force", "f", false, "Skip the shutdown prompt after a countdown")
}

// selectApprover returns nil when the shutdown needs no confirmation.
func selectApprover(force, interactive, verbose bool) osmodel.Approver {
	switch {
	case force:
		return ui.NewForcedApprover(verbose)
	case interactive:
		return ui.NewInteractiveApprover(verbose)
	default:
		return nil
	}
}

func runDevices(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, devicesFlags.systemFlags)
	if err != nil {
		return err
	}
	osys, err := newSystem(settings, logging.NewConsoleLoggerTo(cmd.OutOrStdout(), settings.Verbose))
	if err != nil {
		return err
	}
	data := settings.NetworkData
	if devicesFlags.data != "" {
		data = devicesFlags.data
	}
	osys.SendData(data)

	ctx := commandContext(cmd)
	if approver := selectApprover(devicesFlags.force, tui.IsInteractive(), settings.Verbose); approver != nil {
		approved, err := approver.RequestApproval(ctx, osys.Name(), osys.Kind().String())
		if err != nil {
			return err
		}
		if !approved {
			return fmt.Errorf("shutdown of %s: %w", osys.Name(), osmodel.ErrApprovalDenied)
		}
	}
	return osys.Shutdown(ctx)
}
