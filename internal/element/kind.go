package element

import (
	"fmt"
	"strings"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// Kind identifies which backend's naming and write semantics apply to an element.
type Kind int

const (
	// KindLinux is the Linux-style backend.
	KindLinux Kind = iota + 1
	// KindBSD is the BSD-style backend.
	KindBSD
	// KindNT is the NT-style backend. It writes raw bytes.
	KindNT
)

var kindNames = map[Kind]string{
	KindLinux: "linux",
	KindBSD:   "bsd",
	KindNT:    "nt",
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindLinux, KindBSD, KindNT}
}

// String returns the lower-case name used in flags and config files.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q (expected linux, bsd or nt): %w", s, osmodel.ErrUnknownKind)
}
