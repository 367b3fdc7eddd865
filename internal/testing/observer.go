package testing

import (
	"fmt"

	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// RecordingObserver is a provisioning.Observer that records events and messages.
type RecordingObserver struct {
	Events   []provisioning.Event
	Messages []string
	Fields   map[string]string
}

// NewRecordingObserver creates an empty RecordingObserver.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{Fields: make(map[string]string)}
}

// Printf implements provisioning.Logger.
func (r *RecordingObserver) Printf(format string, v ...interface{}) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, v...))
}

// Event implements provisioning.Observer.
func (r *RecordingObserver) Event(event provisioning.Event) {
	r.Events = append(r.Events, event)
}

// WithFields implements provisioning.Observer. The returned observer shares
// the event log with its parent.
func (r *RecordingObserver) WithFields(fields map[string]string) provisioning.Observer {
	for k, v := range fields {
		r.Fields[k] = v
	}
	return r
}

// EventsOfType returns recorded events with the given type.
func (r *RecordingObserver) EventsOfType(t provisioning.EventType) []provisioning.Event {
	var out []provisioning.Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// DeclaredResources returns the construct IDs of every resource.declared event in order.
func (r *RecordingObserver) DeclaredResources() []string {
	var ids []string
	for _, e := range r.EventsOfType(provisioning.EventResourceDeclared) {
		ids = append(ids, e.Resource)
	}
	return ids
}
