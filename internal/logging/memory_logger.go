package logging

import (
	"fmt"
	"sync"
)

// MemoryLogger records every message as a formatted line.
// Verbose lines are kept only when verbose is enabled.
type MemoryLogger struct {
	verbose bool
	mu      sync.Mutex
	lines   []string
}

func NewMemoryLogger(verbose bool) *MemoryLogger {
	return &MemoryLogger{verbose: verbose}
}

func (l *MemoryLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.add("[VERBOSE] ", format, args)
}

func (l *MemoryLogger) Info(format string, args ...interface{}) {
	l.add("", format, args)
}

func (l *MemoryLogger) Error(format string, args ...interface{}) {
	l.add("[ERROR] ", format, args)
}

// Lines returns a copy of the recorded lines.
func (l *MemoryLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Drain returns the recorded lines and clears them.
func (l *MemoryLogger) Drain() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.lines
	l.lines = nil
	return out
}

func (l *MemoryLogger) add(prefix, format string, args []interface{}) {
	line := prefix + format
	if len(args) > 0 {
		line = prefix + fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	l.lines = append(l.lines, line)
	l.mu.Unlock()
}
