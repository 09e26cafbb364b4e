package device

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// ConsumePolicy decides which applications may consume notified data.
type ConsumePolicy string

const (
	PolicySingleConsumerGlobal ConsumePolicy = "single-consumer-global"
	PolicyPerObserver          ConsumePolicy = "per-observer"

	DefaultConsumePolicy = PolicySingleConsumerGlobal
)

// ParseConsumePolicy parses a policy name. The empty string yields the default.
func ParseConsumePolicy(s string) (ConsumePolicy, error) {
	switch p := ConsumePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DefaultConsumePolicy, nil
	case PolicySingleConsumerGlobal, PolicyPerObserver:
		return p, nil
	default:
		return "", fmt.Errorf("consume policy %q (expected %s or %s): %w",
			s, PolicySingleConsumerGlobal, PolicyPerObserver, osmodel.ErrInvalidConfig)
	}
}

// ConsumeTracker records consumption for the applications that share it.
// Safe for concurrent use.
type ConsumeTracker struct {
	policy   ConsumePolicy
	mu       sync.Mutex
	anyone   bool
	consumed map[uuid.UUID]bool
}

// NewConsumeTracker creates a tracker with no consumption recorded.
func NewConsumeTracker(policy ConsumePolicy) *ConsumeTracker {
	return &ConsumeTracker{
		policy:   policy,
		consumed: make(map[uuid.UUID]bool),
	}
}

func (t *ConsumeTracker) Policy() ConsumePolicy { return t.policy }

// TryConsume reports whether observer may consume now, and if so records it.
func (t *ConsumeTracker) TryConsume(observer uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.policy == PolicyPerObserver {
		if t.consumed[observer] {
			return false
		}
		t.consumed[observer] = true
		return true
	}
	if t.anyone {
		return false
	}
	t.anyone = true
	t.consumed[observer] = true
	return true
}

// Consumed reports whether observer has consumed anything.
func (t *ConsumeTracker) Consumed(observer uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.consumed[observer]
}
