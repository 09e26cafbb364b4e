package device

import (
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// Device is a piece of simulated hardware with a device-specific reset step.
type Device interface {
	Name() string
	Reset(log osmodel.Logger)
}

// ResetDevice runs the full reset sequence of d.
func ResetDevice(d Device, log osmodel.Logger) {
	log.Info(osmodel.DeviceSeparator)
	d.Reset(log)
	log.Info("%s has been reset.", d.Name())
	log.Info(osmodel.DeviceSeparator)
}

// CPU terminates all processes on reset.
type CPU struct{}

func NewCPU() *CPU { return &CPU{} }

func (c *CPU) Name() string { return "CPU" }

func (c *CPU) Reset(log osmodel.Logger) {
	log.Info("All Processes are terminated...")
}

// HardDisk reports its buffer on reset.
type HardDisk struct {
	buffer string
}

func NewHardDisk() *HardDisk {
	return &HardDisk{buffer: "buffer-data"}
}

func (h *HardDisk) Name() string { return "Hard Disk" }

// Buffer returns the data held in the disk buffer.
func (h *HardDisk) Buffer() string { return h.buffer }

func (h *HardDisk) Reset(log osmodel.Logger) {
	log.Info("The data in buffer: %s", h.buffer)
}
