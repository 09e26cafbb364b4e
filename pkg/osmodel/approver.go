package osmodel

import "context"

// Approver asks for confirmation before a system shuts its devices down.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the backend kind for confirmation
type Approver interface {
	// RequestApproval blocks until the shutdown of the named system is
	// approved, denied, or ctx is cancelled.
	RequestApproval(ctx context.Context, systemName, confirmation string) (bool, error)
}
