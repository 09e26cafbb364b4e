package osmodel

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // All requested operations completed
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or backend kind
	ExitApprovalDenied  = 12 // User denied shutdown approval
	ExitTypeMismatch    = 20 // Element kind does not match directory kind
	ExitIndexOutOfRange = 21 // Child or root index out of range
	ExitNoTarget        = 22 // Write against an absent file
	ExitInvalidParent   = 23 // Element already owned, or add would create a cycle
	ExitPathConflict    = 24 // Two elements share one snapshot path
)

const (
	// DefaultContent is the content of a freshly created file.
	DefaultContent = "-"

	// IndentStep is how far each directory level shifts its children in Display.
	IndentStep = 2

	// RootSeparator frames every root element in a full file system listing.
	RootSeparator = "----------------------"

	// DeviceSeparator frames every device reset.
	DeviceSeparator = "---------------------------------------"

	// DefaultPrintText is written by the print-to-file scenario.
	DefaultPrintText = "-new content-"

	// DefaultNetworkData is sent to the network port by the send-data scenario.
	DefaultNetworkData = "value"

	// DefaultForceApprovalCountdown is the countdown before a forced shutdown proceeds.
	DefaultForceApprovalCountdown = 3 * time.Second
)
