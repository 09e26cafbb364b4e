// Package device models the simulated hardware of an operating system.
//
// Every device is reset through ResetDevice, which frames the device's own
// Reset step with the same separator and confirmation lines. The network
// port is also a subject: SetData notifies attached observers synchronously,
// in attachment order, before returning.
//
// Whether a notified Application consumes the value is decided by a
// ConsumeTracker shared by the applications of one process context:
//   - PolicySingleConsumerGlobal: the first consumption wins for the lifetime
//     of the tracker; no application consumes again.
//   - PolicyPerObserver: every application consumes once, the first value it
//     receives.
package device
