package osmodel

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := dir.Add(file)
//	if errors.Is(err, osmodel.ErrTypeMismatch) {
//	    // skip the element, the tree is unchanged
//	}
var (
	// ErrTypeMismatch indicates an element of one backend kind was added to a
	// directory of another kind.
	ErrTypeMismatch = errors.New("file type and file system type do not match")

	// ErrIndexOutOfRange indicates a child or root index outside [0, len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoTarget indicates a write was attempted against an absent file handle.
	ErrNoTarget = errors.New("no target file")

	// ErrNilTarget indicates a byte-oriented backend was handed an absent file.
	// Such backends have no soft failure result, so the write is rejected.
	ErrNilTarget = errors.New("nil target file")

	// ErrInvalidParent indicates an Add that would break exclusive tree
	// ownership: the element already has a parent or root list, or adding it
	// would make a directory contain itself.
	ErrInvalidParent = errors.New("invalid parent")

	// ErrPathConflict indicates two elements map to the same snapshot path.
	ErrPathConflict = errors.New("path conflict")

	// ErrNilElement indicates a nil element was passed to Add.
	ErrNilElement = errors.New("nil element")

	// ErrUnknownKind indicates a backend kind name that is not registered.
	ErrUnknownKind = errors.New("unknown backend kind")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotInteractive indicates an interactive-only operation was requested
	// without a terminal.
	ErrNotInteractive = errors.New("interactive terminal required")

	// ErrApprovalDenied indicates the user denied approval for a shutdown.
	ErrApprovalDenied = errors.New("approval denied")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnknownKind):
		return ExitConfigError
	case errors.Is(err, ErrTypeMismatch):
		return ExitTypeMismatch
	case errors.Is(err, ErrInvalidParent):
		return ExitInvalidParent
	case errors.Is(err, ErrPathConflict):
		return ExitPathConflict
	case errors.Is(err, ErrIndexOutOfRange):
		return ExitIndexOutOfRange
	case errors.Is(err, ErrNoTarget), errors.Is(err, ErrNilTarget):
		return ExitNoTarget
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrNotInteractive):
		return ExitUsageError
	}

	if isUsageError(err.Error()) {
		return ExitUsageError
	}

	return ExitGeneralError
}

// isUsageError recognizes the argument and flag errors produced by cobra.
func isUsageError(msg string) bool {
	for _, prefix := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts ",
		"requires at least",
		"requires at most",
		"required flag",
		"invalid argument",
	} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
