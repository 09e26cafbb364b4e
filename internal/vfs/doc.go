// Package vfs provides the virtual file system: the owner of a root list of
// file elements for one backend kind.
//
// Element creation is delegated to the factory the Registry holds for the
// kind, so every element the file system creates already carries the
// system's kind and name suffix.
// The root list itself is not kind-checked; only directories enforce kind
// homogeneity.
//
// Add claims its element: an element already held by a directory or by a
// root list fails with ErrInvalidParent. Remove releases the claim.
//
// A FileSystem is safe for concurrent use. Root mutations and Update take an
// exclusive lock; DisplayAll, Get, View, Snapshot and Paths share a read lock.
// Elements reached through Get or Roots are not locked by themselves: mutate
// them inside Update.
//
// Snapshot mirrors the tree into an afero.Fs so it can be inspected with
// the afero helpers. Paths uses an in-memory afero filesystem and never
// touches the disk.
package vfs
