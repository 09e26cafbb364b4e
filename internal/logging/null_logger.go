package logging

import "github.com/vvka-141/osmodel/pkg/osmodel"

// NullLogger discards everything. It is the logger a system gets when none
// is configured.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}
func (*NullLogger) Info(string, ...interface{})    {}
func (*NullLogger) Error(string, ...interface{})   {}

var (
	_ osmodel.Logger = (*NullLogger)(nil)
	_ osmodel.Logger = (*ConsoleLogger)(nil)
	_ osmodel.Logger = (*MemoryLogger)(nil)
)
