// Package command wraps operating system requests as executable commands.
package command

import (
	"context"
	"errors"
	"fmt"
)

// Command is a request that can be executed later by an invoker.
type Command interface {
	Execute(ctx context.Context) error
}

// Resetter is anything that can reset all of its devices.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Shutdown resets every device of its target.
type Shutdown struct {
	target Resetter
}

func NewShutdown(target Resetter) *Shutdown {
	return &Shutdown{target: target}
}

func (c *Shutdown) Execute(ctx context.Context) error {
	if err := c.target.Reset(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Invoker triggers the commands it was configured with.
type Invoker struct {
	shutdown Command
}

func NewInvoker(shutdown Command) *Invoker {
	return &Invoker{shutdown: shutdown}
}

// ErrNoCommand is returned when an invoker has no command for a request.
var ErrNoCommand = errors.New("no command configured")

// Shutdown runs the shutdown command.
func (i *Invoker) Shutdown(ctx context.Context) error {
	if i.shutdown == nil {
		return fmt.Errorf("shutdown: %w", ErrNoCommand)
	}
	return i.shutdown.Execute(ctx)
}
