// Package logging provides concrete implementations of the osmodel.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr (or any io.Writer) with thread-safe output
//   - MemoryLogger: Keeps formatted lines in memory, for tests and for rendering in the TUI
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
