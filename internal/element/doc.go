// Package element implements the typed file-element tree.
//
// A tree is built from two node types that share the Element interface:
//   - File: a terminal node holding text content (defaults to "-")
//   - Directory: an ordered list of child elements
//
// Every element is tagged with a backend Kind at construction. A directory
// only accepts children of its own kind, so every element reachable from a
// directory of kind K is itself of kind K. The check happens at insertion
// time; a rejected Add leaves the directory untouched.
//
// Elements are identified by reference, not by name: two files named
// "a.lnx" are different elements, and Remove matches the exact element
// that was added. Each element also carries a random UUID that error
// messages and snapshot conflicts report, since names repeat.
//
// A directory owns its children exclusively. An element holds at most one
// parent (or one root list, see Claim); Add rejects an element that is
// already held, the directory itself, or any of its ancestors, so a tree
// never contains a cycle. Remove clears the parent again.
//
// The tree is not safe for concurrent mutation. Callers that share a tree
// across goroutines must serialize Add and Remove against Display and Walk
// (see package vfs).
package element
