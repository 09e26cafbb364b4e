package tui

import (
	"os"

	"golang.org/x/term"

	"github.com/vvka-141/osmodel/internal/config"
)

// Mode represents the interaction mode for osmodel.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// environment is what mode detection looks at.
type environment struct {
	getenv    func(string) string
	stdinTTY  bool
	stdoutTTY bool
}

func currentEnvironment() environment {
	return environment{
		getenv:    os.Getenv,
		stdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (e environment) mode() Mode {
	switch {
	case e.getenv(config.EnvNonInteractive) == "1",
		e.getenv("CI") != "",
		e.getenv("NO_COLOR") != "":
		return ModeNonInteractive
	case !e.stdinTTY, !e.stdoutTTY:
		// The menu reads keys from stdin and renders to stdout
		return ModeNonInteractive
	}
	return ModeInteractive
}

// DetectMode reports ModeNonInteractive when OSMODEL_NON_INTERACTIVE=1, CI or
// NO_COLOR is set, or when stdin or stdout is not a terminal.
func DetectMode() Mode {
	return currentEnvironment().mode()
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
