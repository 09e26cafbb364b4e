package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// Operation is one entry of the operating system menu.
type Operation string

const (
	OpCreate   Operation = "create"
	OpDisplay  Operation = "display"
	OpPrint    Operation = "print"
	OpSend     Operation = "send"
	OpShutdown Operation = "shutdown"
)

// Operations lists the menu entries in menu order.
var Operations = []Operation{OpCreate, OpDisplay, OpPrint, OpSend, OpShutdown}

var operationLabels = map[Operation]string{
	OpCreate:   "Create Files",
	OpDisplay:  "Display All Files",
	OpPrint:    "Print to File",
	OpSend:     "Send Data to Network Port",
	OpShutdown: "Shutdown",
}

// Label returns the menu text of op.
func (op Operation) Label() string {
	if l, ok := operationLabels[op]; ok {
		return l
	}
	return string(op)
}

// ParseOperations parses a comma-separated operation list.
func ParseOperations(s string) ([]Operation, error) {
	var ops []Operation
	for _, part := range strings.Split(s, ",") {
		name := Operation(strings.ToLower(strings.TrimSpace(part)))
		if name == "" {
			continue
		}
		if _, ok := operationLabels[name]; !ok {
			return nil, fmt.Errorf("operation %q (expected one of create, display, print, send, shutdown): %w",
				part, osmodel.ErrInvalidConfig)
		}
		ops = append(ops, name)
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("no operations given: %w", osmodel.ErrInvalidConfig)
	}
	return ops, nil
}

// Inputs are the values the scenarios write and send.
type Inputs struct {
	PrintText   string
	NetworkData string
}

// Perform runs op. It reports done once the system has shut down.
func (o *OS) Perform(ctx context.Context, op Operation, in Inputs) (done bool, err error) {
	o.log.Verbose("operation %s on %s", op, o.name)
	switch op {
	case OpCreate:
		return false, o.CreateExampleFiles()
	case OpDisplay:
		o.DisplayAllFiles()
		return false, nil
	case OpPrint:
		_, err := o.PrintToFile(orDefault(in.PrintText, osmodel.DefaultPrintText))
		return false, err
	case OpSend:
		o.SendData(orDefault(in.NetworkData, osmodel.DefaultNetworkData))
		return false, nil
	case OpShutdown:
		return true, o.Shutdown(ctx)
	default:
		return false, fmt.Errorf("operation %q: %w", op, osmodel.ErrInvalidConfig)
	}
}

// RunScript performs ops in order and stops after a shutdown or the first error.
func (o *OS) RunScript(ctx context.Context, ops []Operation, in Inputs) error {
	for _, op := range ops {
		done, err := o.Perform(ctx, op, in)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if done {
			return nil
		}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
