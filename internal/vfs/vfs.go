package vfs

import (
	"fmt"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/vvka-141/osmodel/internal/backend"
	"github.com/vvka-141/osmodel/internal/element"
	"github.com/vvka-141/osmodel/internal/factory"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// FileSystem is the virtual file system of one backend kind.
type FileSystem struct {
	mu      sync.RWMutex
	name    string
	factory factory.ElementFactory
	roots   []element.Element
}

// New creates an empty file system that creates elements with f.
func New(name string, f factory.ElementFactory) *FileSystem {
	return &FileSystem{
		name:    name,
		factory: f,
	}
}

// NewForKind creates an empty file system named after the kind's backend,
// creating elements with the registry's factory for kind.
func NewForKind(reg *factory.Registry, kind element.Kind) (*FileSystem, error) {
	p, err := backend.PolicyFor(kind)
	if err != nil {
		return nil, err
	}
	f, err := reg.Get(kind)
	if err != nil {
		return nil, err
	}
	return New(p.SystemName, f), nil
}

func (fs *FileSystem) Name() string { return fs.name }

// Kind returns the kind of the bound factory.
func (fs *FileSystem) Kind() element.Kind { return fs.factory.Kind() }

// CreateFile delegates to the bound factory. The file is not added to the roots.
func (fs *FileSystem) CreateFile(name string) *element.File {
	return fs.factory.CreateFile(name)
}

// CreateDirectory delegates to the bound factory. The directory is not added to the roots.
func (fs *FileSystem) CreateDirectory(name string) *element.Directory {
	return fs.factory.CreateDirectory(name)
}

// Add appends e to the root list. An element already held by a directory or
// a root list is rejected with ErrInvalidParent.
func (fs *FileSystem) Add(e element.Element) error {
	if element.IsNil(e) {
		return fmt.Errorf("add to %s: %w", fs.name, osmodel.ErrNilElement)
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := element.Claim(e); err != nil {
		return fmt.Errorf("add to %s: %w", fs.name, err)
	}
	fs.roots = append(fs.roots, e)
	return nil
}

// Remove deletes e from the root list only. It does not search subtrees.
func (fs *FileSystem) Remove(e element.Element) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i, root := range fs.roots {
		if root == e {
			fs.roots = append(fs.roots[:i], fs.roots[i+1:]...)
			element.Release(e)
			return true
		}
	}
	return false
}

// Get returns the root element at index.
func (fs *FileSystem) Get(index int) (element.Element, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if index < 0 || index >= len(fs.roots) {
		return nil, fmt.Errorf("%s root %d of %d: %w", fs.name, index, len(fs.roots), osmodel.ErrIndexOutOfRange)
	}
	return fs.roots[index], nil
}

// Len returns the number of root elements.
func (fs *FileSystem) Len() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.roots)
}

// Roots returns a copy of the root list.
func (fs *FileSystem) Roots() []element.Element {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]element.Element, len(fs.roots))
	copy(out, fs.roots)
	return out
}

// DisplayAll renders every root at indent 0, each framed by RootSeparator.
func (fs *FileSystem) DisplayAll() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	var lines []string
	for _, root := range fs.roots {
		lines = append(lines, osmodel.RootSeparator)
		lines = append(lines, root.Display(0)...)
		lines = append(lines, osmodel.RootSeparator)
	}
	return lines
}

// Update runs fn with the exclusive lock held. Use it for any mutation of
// elements already owned by the file system.
func (fs *FileSystem) Update(fn func() error) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fn()
}

// View runs fn with the shared lock held.
func (fs *FileSystem) View(fn func() error) error {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fn()
}

// Snapshot writes the tree into target under "/". Directories become
// directories and files become regular files holding their content.
// Names may repeat in the tree but paths may not: an element whose path was
// already written, or already exists in target, fails with ErrPathConflict
// and nothing is overwritten.
func (fs *FileSystem) Snapshot(target afero.Fs) error {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	written := make(map[string]uuid.UUID)
	for _, root := range fs.roots {
		err := element.Walk(root, func(p string, e element.Element) error {
			if prev, ok := written[p]; ok {
				return fmt.Errorf("%s: element %s collides with element %s: %w",
					p, e.ID(), prev, osmodel.ErrPathConflict)
			}
			exists, err := afero.Exists(target, p)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%s: element %s: path exists in target: %w",
					p, e.ID(), osmodel.ErrPathConflict)
			}
			written[p] = e.ID()

			switch v := e.(type) {
			case *element.Directory:
				return target.MkdirAll(p, 0o755)
			case *element.File:
				if err := target.MkdirAll(path.Dir(p), 0o755); err != nil {
					return err
				}
				return afero.WriteFile(target, p, []byte(v.Content()), 0o644)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("snapshot %s: %w", root.Name(), err)
		}
	}
	return nil
}

// Paths returns the sorted paths of every element, taken from an in-memory
// snapshot.
func (fs *FileSystem) Paths() ([]string, error) {
	mem := afero.NewMemMapFs()
	if err := fs.Snapshot(mem); err != nil {
		return nil, err
	}
	var paths []string
	err := afero.Walk(mem, "/", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if p == "/" {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk snapshot: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}
