// Package adapter exposes one backend-independent write call on top of the
// per-kind write primitives.
package adapter

import (
	"fmt"

	"github.com/vvka-141/osmodel/internal/backend"
	"github.com/vvka-141/osmodel/internal/element"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// Writer writes text into a file regardless of the backend behind it.
type Writer interface {
	WriteToElement(handle *element.File, text string) error
}

// textAdapter routes to a TextWriter and turns its Result into an error.
type textAdapter struct {
	kind element.Kind
	w    backend.TextWriter
}

func (a textAdapter) WriteToElement(handle *element.File, text string) error {
	switch res := a.w.Uprintf(text, handle); res {
	case backend.ResultSuccess:
		return nil
	case backend.ResultNoTarget:
		return fmt.Errorf("%s write: %w", a.kind, osmodel.ErrNoTarget)
	default:
		return fmt.Errorf("%s write: unexpected result %s", a.kind, res)
	}
}

// byteAdapter encodes text as UTF-8 for a ByteWriter.
type byteAdapter struct {
	w backend.ByteWriter
}

func (a byteAdapter) WriteToElement(handle *element.File, text string) error {
	return a.w.Printf([]byte(text), handle)
}

// New returns the adapter for b, chosen by the write capability b implements.
func New(b backend.Backend) (Writer, error) {
	switch w := b.(type) {
	case backend.TextWriter:
		return textAdapter{kind: b.Describe().Kind, w: w}, nil
	case backend.ByteWriter:
		return byteAdapter{w: w}, nil
	default:
		return nil, fmt.Errorf("backend %s has no write capability", b.Describe().Kind)
	}
}

// ForKind looks up the backend of kind and returns its adapter.
func ForKind(kind element.Kind) (Writer, error) {
	b, err := backend.For(kind)
	if err != nil {
		return nil, err
	}
	return New(b)
}
