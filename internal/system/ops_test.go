package system

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/osmodel/internal/element"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

func TestParseOperations(t *testing.T) {
	ops, err := ParseOperations(" create, DISPLAY,,print ")
	require.NoError(t, err)
	assert.Equal(t, []Operation{OpCreate, OpDisplay, OpPrint}, ops)

	_, err = ParseOperations("create,format")
	assert.True(t, errors.Is(err, osmodel.ErrInvalidConfig))

	_, err = ParseOperations(" , ")
	assert.True(t, errors.Is(err, osmodel.ErrInvalidConfig))
}

func TestOperation_Label(t *testing.T) {
	assert.Equal(t, "Send Data to Network Port", OpSend.Label())
	assert.Equal(t, "mystery", Operation("mystery").Label())
	assert.Len(t, Operations, 5)
}

func TestPerform_UnknownOperation(t *testing.T) {
	o, _ := newOS(t, element.KindLinux)
	done, err := o.Perform(context.Background(), Operation("format"), Inputs{})
	assert.False(t, done)
	assert.True(t, errors.Is(err, osmodel.ErrInvalidConfig))
}

func TestRunScript_StopsAfterShutdown(t *testing.T) {
	o, log := newOS(t, element.KindNT)
	ops := []Operation{OpCreate, OpPrint, OpShutdown, OpCreate}

	require.NoError(t, o.RunScript(context.Background(), ops, Inputs{PrintText: "custom"}))

	assert.Equal(t, 4, o.FileSystem().Len(), "create after shutdown must not run")
	last, err := o.FileSystem().Get(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"  my-file.nt content => custom"}, last.Display(0))
	assert.Contains(t, log.Lines(), "CPU has been reset.")
}

func TestRunScript_Defaults(t *testing.T) {
	o, log := newOS(t, element.KindBSD)
	require.NoError(t, o.RunScript(context.Background(), []Operation{OpPrint, OpSend}, Inputs{}))

	assert.Contains(t, log.Lines(), "New Content: "+osmodel.DefaultPrintText)
	assert.Contains(t, log.Lines(), "Network Port Data (new): "+osmodel.DefaultNetworkData)
}

func TestRunScript_ShutdownError(t *testing.T) {
	o, _ := newOS(t, element.KindLinux)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := o.RunScript(ctx, []Operation{OpShutdown}, Inputs{})
	assert.ErrorIs(t, err, context.Canceled)
}
