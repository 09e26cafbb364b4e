package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

func forced(out io.Writer, countdown time.Duration, sleep func(time.Duration)) *ForcedApprover {
	return &ForcedApprover{output: out, countdown: countdown, sleepFn: sleep}
}

func TestForcedApprover_ApprovesAfterCountdown(t *testing.T) {
	var out bytes.Buffer
	sleeps := 0

	approved, err := forced(&out, 3*time.Second, func(time.Duration) { sleeps++ }).
		RequestApproval(context.Background(), "BSD Operating System", "bsd")

	require.NoError(t, err)
	assert.True(t, approved)
	assert.Equal(t, 3, sleeps)
	assert.Contains(t, out.String(), "DANGER: BSD Operating System")
	assert.Contains(t, out.String(), "Proceeding with shutdown")
}

func TestForcedApprover_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sleeps := 0
	a := forced(io.Discard, 5*time.Second, func(time.Duration) {
		sleeps++
		if sleeps == 2 {
			cancel()
		}
	})

	approved, err := a.RequestApproval(ctx, "Linux Operating System", "linux")

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, approved)
	assert.Equal(t, 2, sleeps)
}

func TestNewForcedApprover(t *testing.T) {
	fa, ok := NewForcedApprover(true).(*ForcedApprover)
	require.True(t, ok)
	assert.True(t, fa.verbose)
	assert.NotNil(t, fa.output)
	assert.NotNil(t, fa.sleepFn)
	assert.Equal(t, osmodel.DefaultForceApprovalCountdown, fa.countdown)
}

func TestInteractiveApprover(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		approved bool
		output   string
	}{
		{"matching", "nt\n", true, "Confirmed"},
		{"surrounding whitespace", "  nt  \n", true, "Confirmed"},
		{"wrong word", "bsd\n", false, "Input 'bsd' does not match 'nt'"},
		{"empty", "\n", false, "does not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			a := &InteractiveApprover{input: strings.NewReader(tt.input), output: &out}

			approved, err := a.RequestApproval(context.Background(), "NT Operating System", "nt")

			require.NoError(t, err)
			assert.Equal(t, tt.approved, approved)
			assert.Contains(t, out.String(), "WARNING: You are about to shut down NT Operating System")
			assert.Contains(t, out.String(), "type 'nt'")
			assert.Contains(t, out.String(), tt.output)
		})
	}
}

func TestInteractiveApprover_ReadError(t *testing.T) {
	a := &InteractiveApprover{input: &errorReader{err: io.ErrUnexpectedEOF}, output: io.Discard}

	approved, err := a.RequestApproval(context.Background(), "NT Operating System", "nt")

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "failed to read input")
	assert.False(t, approved)
}

func TestInteractiveApprover_ContextCancellation(t *testing.T) {
	input := newBlockingReader()
	t.Cleanup(func() { input.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approved, err := (&InteractiveApprover{input: input, output: io.Discard}).
		RequestApproval(ctx, "NT Operating System", "nt")

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, approved)
}

func TestNewInteractiveApprover(t *testing.T) {
	ia, ok := NewInteractiveApprover(false).(*InteractiveApprover)
	require.True(t, ok)
	assert.False(t, ia.verbose)
	assert.NotNil(t, ia.input)
	assert.NotNil(t, ia.output)
}

type errorReader struct {
	err error
}

func (r *errorReader) Read([]byte) (int, error) {
	return 0, r.err
}

type blockingReader struct {
	done chan struct{}
}

func newBlockingReader() *blockingReader {
	return &blockingReader{done: make(chan struct{})}
}

func (r *blockingReader) Read([]byte) (int, error) {
	<-r.done
	return 0, io.EOF
}

func (r *blockingReader) Close() error {
	select {
	case <-r.done:
	default:
		close(r.done)
	}
	return nil
}
