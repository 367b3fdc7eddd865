// Package tui provides a Bubble Tea terminal UI that follows stack synthesis.
package tui

// PhaseMsg reports progress of a provisioning phase.
type PhaseMsg struct {
	Phase string
	Done  bool
	Err   error
}

// ResourceMsg reports a construct added to the stack.
type ResourceMsg struct {
	Phase string
	Type  string
	ID    string
}

// WarningMsg carries a non-fatal configuration finding.
type WarningMsg struct {
	Field   string
	Message string
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the cloud assembly was written to Dir.
type DoneMsg struct{ Dir string }
