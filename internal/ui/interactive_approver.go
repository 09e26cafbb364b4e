package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. The user has to type the confirmation word.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(verbose bool) osmodel.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval prompts the user to type confirmation.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, systemName, confirmation string) (bool, error) {
	fmt.Fprintf(a.output, "\n⚠️  WARNING: You are about to shut down %s\n", systemName)
	fmt.Fprintln(a.output, "All processes will be terminated and device buffers discarded!")
	fmt.Fprintf(a.output, "\nTo confirm, type '%s' and press Enter: ", confirmation)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == confirmation {
			fmt.Fprintln(a.output, "✓ Confirmed. Proceeding with shutdown...")
			return true, nil
		}
		fmt.Fprintf(a.output, "✗ Input '%s' does not match '%s'. Shutdown cancelled.\n", input, confirmation)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ osmodel.Approver = (*InteractiveApprover)(nil)
