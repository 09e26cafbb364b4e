package device

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// Application is an Observer that keeps the last value it saw and consumes
// values as its tracker allows.
type Application struct {
	id      uuid.UUID
	name    string
	tracker *ConsumeTracker
	log     osmodel.Logger

	mu       sync.Mutex
	data     string
	consumed []string
}

// NewApplication creates an application that consults tracker before consuming.
func NewApplication(name string, tracker *ConsumeTracker, log osmodel.Logger) *Application {
	return &Application{
		id:      uuid.New(),
		name:    name,
		tracker: tracker,
		log:     log,
	}
}

func (a *Application) ID() uuid.UUID { return a.id }
func (a *Application) Name() string  { return a.name }

// Data returns the last value received.
func (a *Application) Data() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.data
}

// Consumed returns the values this application consumed, oldest first.
func (a *Application) Consumed() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.consumed))
	copy(out, a.consumed)
	return out
}

func (a *Application) Update(data string) {
	a.mu.Lock()
	a.data = data
	a.mu.Unlock()
	a.log.Info("%s's data is updated: %s", a.name, data)

	if a.tracker.TryConsume(a.id) {
		a.consume(data)
	}
}

func (a *Application) consume(data string) {
	a.mu.Lock()
	a.consumed = append(a.consumed, data)
	a.mu.Unlock()
	a.log.Info("(Consumed %s from %s)", data, a.name)
}
