// Package notify defines the user-facing notification sink. Notices are
// fire-and-forget: nothing in the core waits on, or hears back from, the
// sink.
package notify

// Severity classifies a notice.
type Severity string

const (
	// Success confirms a completed mutation.
	Success Severity = "success"
	// Warning flags a rejected input with no state change.
	Warning Severity = "warning"
	// Error flags a failed credential check or other hard rejection.
	Error Severity = "error"
	// Info carries neutral status messages.
	Info Severity = "info"
)

// Notifier is the sink for user-facing notices.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Func adapts a function to the Notifier interface.
type Func func(message string, severity Severity)

// Notify calls the wrapped function.
func (f Func) Notify(message string, severity Severity) {
	f(message, severity)
}

// Discard drops every notice. Useful as a default when no sink is wired.
var Discard Notifier = Func(func(string, Severity) {})
