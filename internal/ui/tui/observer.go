package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// Observer forwards provisioning events to a running program.
type Observer struct {
	send func(tea.Msg)
}

// NewObserver creates an observer delivering messages through send,
// typically (*tea.Program).Send.
func NewObserver(send func(tea.Msg)) *Observer {
	return &Observer{send: send}
}

// Printf implements provisioning.Logger. Free-form lines are not shown.
func (o *Observer) Printf(string, ...interface{}) {}

// Event implements provisioning.Observer.
func (o *Observer) Event(event provisioning.Event) {
	phase := phaseName(event.Phase)

	switch event.Type {
	case provisioning.EventPhaseStarted:
		o.send(PhaseMsg{Phase: phase})
	case provisioning.EventPhaseCompleted:
		o.send(PhaseMsg{Phase: phase, Done: true})
	case provisioning.EventPhaseFailed:
		o.send(PhaseMsg{Phase: phase, Err: errors.New(strings.TrimPrefix(event.Message, "failed: "))})
	case provisioning.EventResourceDeclared:
		o.send(ResourceMsg{Phase: phase, Type: event.Fields["type"], ID: event.Resource})
	case provisioning.EventValidationWarning:
		o.send(WarningMsg{Field: event.Fields["field"], Message: event.Message})
	}
}

// WithFields implements provisioning.Observer. Context fields are not shown.
func (o *Observer) WithFields(map[string]string) provisioning.Observer {
	return o
}

// phaseName strips the "(i/n)" position the pipeline appends to phase names.
func phaseName(phase string) string {
	name, _, _ := strings.Cut(phase, " (")
	return name
}
