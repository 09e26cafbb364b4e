package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResetter struct {
	calls int
	err   error
}

func (f *fakeResetter) Reset(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestInvoker_Shutdown(t *testing.T) {
	target := &fakeResetter{}
	inv := NewInvoker(NewShutdown(target))

	require.NoError(t, inv.Shutdown(context.Background()))
	assert.Equal(t, 1, target.calls)
}

func TestInvoker_ShutdownPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	inv := NewInvoker(NewShutdown(&fakeResetter{err: boom}))

	err := inv.Shutdown(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "shutdown")
}

func TestInvoker_NoCommand(t *testing.T) {
	err := NewInvoker(nil).Shutdown(context.Background())
	assert.ErrorIs(t, err, ErrNoCommand)
}
