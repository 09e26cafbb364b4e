package device

import (
	"sync"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// Observer receives the network port's data on every change.
type Observer interface {
	Update(data string)
}

// NetworkPort is an I/O device that publishes its data to observers.
type NetworkPort struct {
	mu        sync.Mutex
	data      string
	observers []Observer
	log       osmodel.Logger
}

// NewNetworkPort creates a port with no data and no observers.
func NewNetworkPort(log osmodel.Logger) *NetworkPort {
	return &NetworkPort{log: log}
}

func (p *NetworkPort) Name() string { return "I/O Device" }

func (p *NetworkPort) Reset(log osmodel.Logger) {
	log.Info("The data in network port: %s", p.Data())
}

// Attach appends o to the observer list.
func (p *NetworkPort) Attach(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, o)
}

// Detach removes the first occurrence of o.
func (p *NetworkPort) Detach(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.observers {
		if existing == o {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

// Observers returns the number of attached observers.
func (p *NetworkPort) Observers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.observers)
}

// Data returns the current data.
func (p *NetworkPort) Data() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

// SetData replaces the data and notifies every observer before returning.
func (p *NetworkPort) SetData(data string) {
	p.mu.Lock()
	old := p.data
	p.data = data
	p.mu.Unlock()

	p.log.Info("Network Port Data (old): %s", old)
	p.log.Info("Network Port Data (new): %s", data)
	p.Notify()
}

// Notify sends the current data to the observers attached at call time,
// in attachment order.
func (p *NetworkPort) Notify() {
	p.mu.Lock()
	data := p.data
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.Unlock()

	for _, o := range observers {
		o.Update(data)
	}
}
