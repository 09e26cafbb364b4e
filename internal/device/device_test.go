package device

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/osmodel/internal/logging"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

func TestResetDevice_Framing(t *testing.T) {
	tests := []struct {
		name   string
		device Device
		inner  string
	}{
		{"cpu", NewCPU(), "All Processes are terminated..."},
		{"disk", NewHardDisk(), "The data in buffer: buffer-data"},
		{"port", NewNetworkPort(logging.NewNullLogger()), "The data in network port: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logging.NewMemoryLogger(false)
			ResetDevice(tt.device, log)

			assert.Equal(t, []string{
				osmodel.DeviceSeparator,
				tt.inner,
				tt.device.Name() + " has been reset.",
				osmodel.DeviceSeparator,
			}, log.Lines())
		})
	}
}

func TestDeviceNames(t *testing.T) {
	assert.Equal(t, "CPU", NewCPU().Name())
	assert.Equal(t, "Hard Disk", NewHardDisk().Name())
	assert.Equal(t, "I/O Device", NewNetworkPort(logging.NewNullLogger()).Name())
	assert.Equal(t, "buffer-data", NewHardDisk().Buffer())
}

func TestNetworkPort_ResetReportsData(t *testing.T) {
	port := NewNetworkPort(logging.NewNullLogger())
	port.SetData("payload")

	log := logging.NewMemoryLogger(false)
	port.Reset(log)
	assert.Equal(t, []string{"The data in network port: payload"}, log.Lines())
}
