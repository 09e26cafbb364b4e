// Package factory creates correctly tagged and named file elements for one
// backend kind.
package factory

import (
	"fmt"

	"github.com/vvka-141/osmodel/internal/backend"
	"github.com/vvka-141/osmodel/internal/element"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// ElementFactory produces files and directories bound to one backend kind.
type ElementFactory interface {
	Kind() element.Kind
	CreateFile(name string) *element.File
	CreateDirectory(name string) *element.Directory
}

// Factory is the ElementFactory of one backend policy.
type Factory struct {
	policy backend.Policy
}

// New returns the factory for kind.
func New(kind element.Kind) (*Factory, error) {
	p, err := backend.PolicyFor(kind)
	if err != nil {
		return nil, err
	}
	return &Factory{policy: p}, nil
}

func (f *Factory) Kind() element.Kind { return f.policy.Kind }

// CreateFile returns a file named name plus the kind's file suffix.
func (f *Factory) CreateFile(name string) *element.File {
	return element.NewFile(f.policy.Kind, f.policy.FileName(name))
}

// CreateDirectory returns a directory named name plus the kind's directory suffix.
func (f *Factory) CreateDirectory(name string) *element.Directory {
	return element.NewDirectory(f.policy.Kind, f.policy.DirectoryName(name))
}

// Registry maps every backend kind to its factory. Build one per process
// context and pass it to whoever needs to create elements.
type Registry struct {
	factories map[element.Kind]*Factory
}

// NewRegistry builds factories for all known kinds.
func NewRegistry() (*Registry, error) {
	r := &Registry{factories: make(map[element.Kind]*Factory, len(element.Kinds()))}
	for _, kind := range element.Kinds() {
		f, err := New(kind)
		if err != nil {
			return nil, err
		}
		r.factories[kind] = f
	}
	return r, nil
}

// Get returns the factory for kind.
func (r *Registry) Get(kind element.Kind) (*Factory, error) {
	f, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("factory for %s: %w", kind, osmodel.ErrUnknownKind)
	}
	return f, nil
}
