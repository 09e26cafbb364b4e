package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval. It displays a countdown and automatically approves after the countdown,
// used when the --force flag is provided.
type ForcedApprover struct {
	verbose   bool
	output    io.Writer
	countdown time.Duration
	sleepFn   func(time.Duration)
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) osmodel.Approver {
	return &ForcedApprover{
		verbose:   verbose,
		output:    os.Stderr,
		countdown: osmodel.DefaultForceApprovalCountdown,
		sleepFn:   time.Sleep,
	}
}

// RequestApproval displays a countdown and automatically approves after the countdown.
func (a *ForcedApprover) RequestApproval(ctx context.Context, systemName, confirmation string) (bool, error) {
	fmt.Fprintln(a.output)
	fmt.Fprintf(a.output, "DANGER: %s will terminate all processes and reset every device.\n", systemName)
	fmt.Fprintln(a.output)

	seconds := int(a.countdown.Seconds())
	for i := seconds; i > 0; i-- {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprintf(a.output, "\rShutting down in: %d seconds... (Press Ctrl+C to cancel)", i)
		a.sleepFn(time.Second)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(a.output, "\r✓ Proceeding with shutdown...                              \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ osmodel.Approver = (*ForcedApprover)(nil)
