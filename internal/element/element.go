package element

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// Element is a node of the file-element tree.
type Element interface {
	// ID returns the element's identity, assigned at construction.
	ID() uuid.UUID

	// Kind returns the backend kind the element was created for.
	Kind() Kind

	// Name returns the element name including its backend suffix.
	Name() string

	// Display renders the element at the given indent. Directories render
	// their children depth-first at indent+IndentStep. Display never mutates.
	Display(indent int) []string

	// Add appends child. Files ignore it. Directories reject children of a
	// different kind with ErrTypeMismatch.
	Add(child Element) error

	// Remove deletes target from the subtree and reports whether it was found.
	Remove(target Element) bool

	// GetChild returns the child at index or ErrIndexOutOfRange.
	GetChild(index int) (Element, error)

	// Parent returns the directory holding the element, or nil.
	Parent() *Directory

	base() *node
}

// node is the identity and ownership state shared by files and directories.
type node struct {
	id     uuid.UUID
	kind   Kind
	name   string
	parent *Directory
	rooted bool
}

func newNode(kind Kind, name string) node {
	return node{id: uuid.New(), kind: kind, name: name}
}

func (n *node) ID() uuid.UUID      { return n.id }
func (n *node) Kind() Kind         { return n.kind }
func (n *node) Name() string       { return n.name }
func (n *node) Parent() *Directory { return n.parent }
func (n *node) base() *node        { return n }

// owner describes where the element currently lives, or "" when detached.
func (n *node) owner() string {
	switch {
	case n.parent != nil:
		return fmt.Sprintf("%s [%s]", n.parent.name, n.parent.id)
	case n.rooted:
		return "a root list"
	}
	return ""
}

func (n *node) label() string {
	return fmt.Sprintf("%s [%s]", n.name, n.id)
}

// Claim marks e as held by a root list. It fails with ErrInvalidParent when
// e is already held by a directory or a root list.
func Claim(e Element) error {
	if IsNil(e) {
		return osmodel.ErrNilElement
	}
	n := e.base()
	if owner := n.owner(); owner != "" {
		return fmt.Errorf("%s is already held by %s: %w", n.label(), owner, osmodel.ErrInvalidParent)
	}
	n.rooted = true
	return nil
}

// Release detaches e from its root list so it can be added elsewhere.
func Release(e Element) {
	if !IsNil(e) {
		e.base().rooted = false
	}
}

// File is a terminal node holding text content.
type File struct {
	node
	content string
}

// NewFile creates a file with the default content.
func NewFile(kind Kind, name string) *File {
	return &File{
		node:    newNode(kind, name),
		content: osmodel.DefaultContent,
	}
}

// Content returns the current file content.
func (f *File) Content() string { return f.content }

// SetContent overwrites the file content.
func (f *File) SetContent(content string) { f.content = content }

func (f *File) Display(indent int) []string {
	return []string{indentPrefix(indent) + "  " + f.name + " content => " + f.content}
}

// Add is a no-op: files accept no children.
func (f *File) Add(Element) error { return nil }

// Remove always reports false: files have no children.
func (f *File) Remove(Element) bool { return false }

func (f *File) GetChild(index int) (Element, error) {
	return nil, fmt.Errorf("file %s has no child %d: %w", f.name, index, osmodel.ErrIndexOutOfRange)
}

// Directory is an ordered container of elements of its own kind.
type Directory struct {
	node
	children []Element
}

// NewDirectory creates an empty directory.
func NewDirectory(kind Kind, name string) *Directory {
	return &Directory{node: newNode(kind, name)}
}

// Len returns the number of direct children.
func (d *Directory) Len() int { return len(d.children) }

// Children returns a copy of the direct children in insertion order.
func (d *Directory) Children() []Element {
	out := make([]Element, len(d.children))
	copy(out, d.children)
	return out
}

func (d *Directory) Display(indent int) []string {
	lines := []string{indentPrefix(indent) + "+ " + d.name}
	for _, child := range d.children {
		lines = append(lines, child.Display(indent+osmodel.IndentStep)...)
	}
	return lines
}

// Add checks the child's kind and ownership and appends it. A child that
// already has a parent or a root list, or that is d or one of d's ancestors,
// is rejected with ErrInvalidParent.
func (d *Directory) Add(child Element) error {
	if IsNil(child) {
		return fmt.Errorf("add to %s: %w", d.name, osmodel.ErrNilElement)
	}
	if !d.accepts(child) {
		return fmt.Errorf("add %s (%s) to %s (%s): %w",
			child.Name(), child.Kind(), d.name, d.kind, osmodel.ErrTypeMismatch)
	}
	n := child.base()
	if owner := n.owner(); owner != "" {
		return fmt.Errorf("add %s to %s: already held by %s: %w",
			n.label(), d.label(), owner, osmodel.ErrInvalidParent)
	}
	for p := d; p != nil; p = p.parent {
		if Element(p) == child {
			return fmt.Errorf("add %s to %s: would contain itself: %w",
				n.label(), d.label(), osmodel.ErrInvalidParent)
		}
	}
	n.parent = d
	d.children = append(d.children, child)
	return nil
}

// accepts is the per-directory admission rule.
func (d *Directory) accepts(child Element) bool {
	return child.Kind() == d.kind
}

// Remove deletes target from the direct children, or failing that from the
// first sub-directory that contains it.
func (d *Directory) Remove(target Element) bool {
	if IsNil(target) {
		return false
	}
	for i, child := range d.children {
		if child == target {
			d.children = append(d.children[:i], d.children[i+1:]...)
			target.base().parent = nil
			return true
		}
	}
	for _, child := range d.children {
		if child.Remove(target) {
			return true
		}
	}
	return false
}

func (d *Directory) GetChild(index int) (Element, error) {
	if index < 0 || index >= len(d.children) {
		return nil, fmt.Errorf("directory %s child %d of %d: %w",
			d.name, index, len(d.children), osmodel.ErrIndexOutOfRange)
	}
	return d.children[index], nil
}

// IsNil reports whether e is nil, including typed nil pointers.
func IsNil(e Element) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *File:
		return v == nil
	case *Directory:
		return v == nil
	}
	return false
}

func indentPrefix(indent int) string {
	if indent <= 0 {
		return ""
	}
	return strings.Repeat("-", indent)
}
