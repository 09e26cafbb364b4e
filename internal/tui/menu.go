package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vvka-141/osmodel/internal/backend"
	"github.com/vvka-141/osmodel/internal/config"
	"github.com/vvka-141/osmodel/internal/device"
	"github.com/vvka-141/osmodel/internal/element"
	"github.com/vvka-141/osmodel/internal/factory"
	"github.com/vvka-141/osmodel/internal/logging"
	"github.com/vvka-141/osmodel/internal/system"
	"github.com/vvka-141/osmodel/internal/tui/components"
)

// Menu is the interactive operating system loop.
type Menu struct {
	picker   Picker
	out      io.Writer
	settings config.Settings
	askKind  bool
}

// NewMenu creates a menu. When askKind is set the user chooses the operating
// system first, starting from settings.Kind.
func NewMenu(picker Picker, out io.Writer, settings config.Settings, askKind bool) *Menu {
	return &Menu{picker: picker, out: out, settings: settings, askKind: askKind}
}

func kindOptions() []components.Option {
	opts := make([]components.Option, 0, len(element.Kinds()))
	for _, k := range element.Kinds() {
		label := k.String()
		if p, err := backend.PolicyFor(k); err == nil {
			label = p.OSName
		}
		opts = append(opts, components.Option{Label: label, Value: k.String()})
	}
	return opts
}

func operationOptions() []components.Option {
	opts := make([]components.Option, 0, len(system.Operations))
	for _, op := range system.Operations {
		opts = append(opts, components.Option{Label: op.Label(), Value: string(op)})
	}
	return opts
}

func (m *Menu) chooseKind() (element.Kind, error) {
	if !m.askKind {
		return m.settings.Kind, nil
	}
	value, err := m.picker.Select("Choose Operating System", kindOptions(), m.settings.Kind.String())
	if err != nil {
		return 0, err
	}
	return element.ParseKind(value)
}

// Run loops until the user shuts the system down or cancels. Operation errors
// are shown and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	kind, err := m.chooseKind()
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	reg, err := factory.NewRegistry()
	if err != nil {
		return err
	}
	log := logging.NewMemoryLogger(m.settings.Verbose)
	opts := []system.Option{
		system.WithLogger(log),
		system.WithRegistry(reg),
		system.WithConsumeTracker(device.NewConsumeTracker(m.settings.ConsumePolicy)),
	}
	if len(m.settings.Applications) > 0 {
		opts = append(opts, system.WithApplications(m.settings.Applications...))
	}
	osys, err := system.New(kind, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, TitleStyle.Render(osys.Name()))

	in := system.Inputs{PrintText: m.settings.PrintText, NetworkData: m.settings.NetworkData}
	last := string(system.OpCreate)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		value, err := m.picker.Select(osys.Name(), operationOptions(), last)
		if errors.Is(err, ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		op := system.Operation(value)
		last = value

		if op == system.OpPrint {
			text, err := m.picker.Prompt("Text to print", in.PrintText)
			if errors.Is(err, ErrCancelled) {
				continue
			}
			if err != nil {
				return err
			}
			in.PrintText = text
		}

		done, opErr := osys.Perform(ctx, op, in)
		m.flush(log)
		if opErr != nil {
			fmt.Fprintln(m.out, ErrorStyle.Render(SymbolCross+" "+opErr.Error()))
			if done {
				return opErr
			}
			continue
		}
		if done {
			fmt.Fprintln(m.out, SuccessStyle.Render(SymbolCheck+" "+osys.Name()+" is shut down"))
			return nil
		}
	}
}

func (m *Menu) flush(log *logging.MemoryLogger) {
	for _, line := range log.Drain() {
		fmt.Fprintln(m.out, RenderLine(line))
	}
}
