// Package backend holds the per-kind backend policy table: the naming
// convention of each backend and its native write primitive.
package backend

import (
	"bytes"
	"fmt"

	"github.com/vvka-141/osmodel/internal/element"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// Result is the status code returned by text-oriented write primitives.
type Result int

const (
	// ResultNoTarget means the write had no file to act on. Nothing changed.
	ResultNoTarget Result = 0
	// ResultSuccess means the file content was replaced.
	ResultSuccess Result = 1
)

func (r Result) String() string {
	switch r {
	case ResultNoTarget:
		return "no-target"
	case ResultSuccess:
		return "success"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// TextWriter is the write capability of backends that take a string and
// report a Result.
type TextWriter interface {
	Uprintf(text string, target *element.File) Result
}

// ByteWriter is the write capability of backends that take raw bytes.
type ByteWriter interface {
	Printf(data []byte, target *element.File) error
}

// Policy describes one backend kind.
type Policy struct {
	Kind            element.Kind
	SystemName      string
	OSName          string
	FileSuffix      string
	DirectorySuffix string
}

// FileName applies the file suffix to name.
func (p Policy) FileName(name string) string { return name + p.FileSuffix }

// DirectoryName applies the directory suffix to name.
func (p Policy) DirectoryName(name string) string { return name + p.DirectorySuffix }

// textBackend serves the kinds whose primitive checks for an absent target.
type textBackend struct {
	Policy
}

func (b textBackend) Uprintf(text string, target *element.File) Result {
	if target == nil {
		return ResultNoTarget
	}
	target.SetContent(text)
	return ResultSuccess
}

// byteBackend serves the kinds whose primitive takes raw bytes.
type byteBackend struct {
	Policy
}

func (b byteBackend) Printf(data []byte, target *element.File) error {
	if target == nil {
		return fmt.Errorf("%s printf: %w", b.Kind, osmodel.ErrNilTarget)
	}
	// Each invalid byte decodes to its own U+FFFD.
	target.SetContent(string(bytes.Runes(data)))
	return nil
}

// Backend is a policy together with exactly one write capability
// (TextWriter or ByteWriter).
type Backend interface {
	Describe() Policy
}

func (p Policy) Describe() Policy { return p }

var table = map[element.Kind]Backend{
	element.KindLinux: textBackend{Policy{
		Kind:            element.KindLinux,
		SystemName:      "Linux File System",
		OSName:          "Linux Operating System",
		FileSuffix:      ".lnx",
		DirectorySuffix: ".lnxd",
	}},
	element.KindBSD: textBackend{Policy{
		Kind:            element.KindBSD,
		SystemName:      "BSD File System",
		OSName:          "BSD Operating System",
		FileSuffix:      ".bsd",
		DirectorySuffix: ".bsdir",
	}},
	element.KindNT: byteBackend{Policy{
		Kind:            element.KindNT,
		SystemName:      "NT File System",
		OSName:          "NT Operating System",
		FileSuffix:      ".nt",
		DirectorySuffix: ".ntdir",
	}},
}

// For returns the backend registered for kind.
func For(kind element.Kind) (Backend, error) {
	b, ok := table[kind]
	if !ok {
		return nil, fmt.Errorf("backend for %s: %w", kind, osmodel.ErrUnknownKind)
	}
	return b, nil
}

// PolicyFor is For followed by Describe.
func PolicyFor(kind element.Kind) (Policy, error) {
	b, err := For(kind)
	if err != nil {
		return Policy{}, err
	}
	return b.Describe(), nil
}
