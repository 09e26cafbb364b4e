// Package system assembles an operating system for one backend kind: its
// file system, devices, write adapter and the demo scenarios that drive them.
//
// There is no per-kind singleton. Build one OS per process context with New
// and pass it to whoever needs it.
package system

import (
	"context"
	"fmt"
	"sync"

	"github.com/vvka-141/osmodel/internal/adapter"
	"github.com/vvka-141/osmodel/internal/backend"
	"github.com/vvka-141/osmodel/internal/command"
	"github.com/vvka-141/osmodel/internal/device"
	"github.com/vvka-141/osmodel/internal/element"
	"github.com/vvka-141/osmodel/internal/factory"
	"github.com/vvka-141/osmodel/internal/logging"
	"github.com/vvka-141/osmodel/internal/vfs"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// OS is a simulated operating system.
type OS struct {
	name     string
	kind     element.Kind
	fs       *vfs.FileSystem
	writer   adapter.Writer
	log      osmodel.Logger
	tracker  *device.ConsumeTracker
	registry *factory.Registry
	apps     []string

	mu      sync.Mutex
	devices []device.Device
}

// Option configures an OS built by New.
type Option func(*OS)

// WithLogger sets the logger for scenario and device output.
func WithLogger(log osmodel.Logger) Option {
	return func(o *OS) { o.log = log }
}

// WithConsumeTracker sets the tracker shared by the applications of SendData.
func WithConsumeTracker(t *device.ConsumeTracker) Option {
	return func(o *OS) { o.tracker = t }
}

// WithRegistry sets the element factory registry shared by the systems of
// one process context.
func WithRegistry(r *factory.Registry) Option {
	return func(o *OS) { o.registry = r }
}

// WithApplications sets the application names attached by SendData.
func WithApplications(names ...string) Option {
	return func(o *OS) { o.apps = names }
}

// DefaultApplications are attached by SendData unless overridden.
var DefaultApplications = []string{"Application A", "Application B"}

// New builds the OS of kind with a CPU, a hard disk and a network port.
func New(kind element.Kind, opts ...Option) (*OS, error) {
	p, err := backend.PolicyFor(kind)
	if err != nil {
		return nil, err
	}
	w, err := adapter.ForKind(kind)
	if err != nil {
		return nil, err
	}

	o := &OS{
		name:   p.OSName,
		kind:   kind,
		writer: w,
		apps:   DefaultApplications,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		if o.registry, err = factory.NewRegistry(); err != nil {
			return nil, err
		}
	}
	if o.fs, err = vfs.NewForKind(o.registry, kind); err != nil {
		return nil, err
	}
	if o.log == nil {
		o.log = logging.NewNullLogger()
	}
	if o.tracker == nil {
		o.tracker = device.NewConsumeTracker(device.DefaultConsumePolicy)
	}
	o.devices = []device.Device{
		device.NewCPU(),
		device.NewHardDisk(),
		device.NewNetworkPort(o.log),
	}
	return o, nil
}

func (o *OS) Name() string                    { return o.name }
func (o *OS) Kind() element.Kind              { return o.kind }
func (o *OS) FileSystem() *vfs.FileSystem     { return o.fs }
func (o *OS) Writer() adapter.Writer          { return o.writer }
func (o *OS) Tracker() *device.ConsumeTracker { return o.tracker }
func (o *OS) Registry() *factory.Registry     { return o.registry }

// Devices returns a copy of the device list in reset order.
func (o *OS) Devices() []device.Device {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]device.Device, len(o.devices))
	copy(out, o.devices)
	return out
}

// AddDevice appends d to the device list.
func (o *OS) AddDevice(d device.Device) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.devices = append(o.devices, d)
}

// Reset resets every device in order. It stops before the next device once
// ctx is done.
func (o *OS) Reset(ctx context.Context) error {
	for _, d := range o.Devices() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("reset %s: %w", d.Name(), err)
		}
		o.log.Verbose("resetting %s", d.Name())
		device.ResetDevice(d, o.log)
	}
	return nil
}

// Shutdown issues the shutdown command through an invoker.
func (o *OS) Shutdown(ctx context.Context) error {
	return command.NewInvoker(command.NewShutdown(o)).Shutdown(ctx)
}

// Write replaces handle's content through the write adapter while holding
// the file system's write lock.
func (o *OS) Write(handle *element.File, text string) error {
	return o.fs.Update(func() error {
		return o.writer.WriteToElement(handle, text)
	})
}
