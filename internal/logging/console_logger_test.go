package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)
	logger.Verbose("test message: %s", "value")

	assert.Equal(t, "[VERBOSE] test message: value\n", buf.String())
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)
	logger.Verbose("test message: %s", "value")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)
	logger.Info("info message: %s", "value")
	logger.Info("100% literal")

	assert.Equal(t, "info message: value\n100% literal\n", buf.String())
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)
	logger.Error("error message: %s", "value")

	assert.Equal(t, "[ERROR] error message: value\n", buf.String())
}

func TestConsoleLogger_DefaultsToStderr(t *testing.T) {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	logger := NewConsoleLogger(false)
	logger.Info("to stderr")

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	assert.Equal(t, "to stderr\n", buf.String())
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 30 {
		t.Errorf("Expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestMemoryLogger(t *testing.T) {
	logger := NewMemoryLogger(false)
	logger.Info("a %d", 1)
	logger.Verbose("hidden")
	logger.Error("b")

	assert.Equal(t, []string{"a 1", "[ERROR] b"}, logger.Lines())
	assert.Equal(t, []string{"a 1", "[ERROR] b"}, logger.Drain())
	assert.Empty(t, logger.Lines())

	verbose := NewMemoryLogger(true)
	verbose.Verbose("shown %s", "x")
	assert.Equal(t, []string{"[VERBOSE] shown x"}, verbose.Lines())
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}

	// Should complete without panic
	wg.Wait()
}

// BenchmarkConsoleLogger_VerboseDisabled measures performance when verbose is disabled
func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLoggerTo(io.Discard, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

func ExampleConsoleLogger() {
	logger := NewConsoleLoggerTo(os.Stdout, true)
	logger.Info("Starting operation")
	logger.Verbose("Debug details")
	logger.Error("Operation failed")
	// Output:
	// Starting operation
	// [VERBOSE] Debug details
	// [ERROR] Operation failed
}

func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	logger.Verbose("This too")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
