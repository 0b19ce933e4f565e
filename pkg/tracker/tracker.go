package tracker

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-ltixml/pkg/validation"
)

// Tracker accumulates validation failures keyed by form field. It is a value:
// Add and Fold return a new Tracker and never modify the receiver, so a
// request can build its tracker by folding validator results without sharing
// mutable state.
type Tracker struct {
	fields   []string
	messages map[string][]string
}

// New returns an empty tracker seeded with the known field names. Seeded
// fields always appear in snapshots, with a nil message while valid.
func New(fields ...string) Tracker {
	t := Tracker{}
	for _, field := range fields {
		t.fields = appendField(t.fields, field)
	}
	return t
}

// Add records result for field. Failures are kept (repeat failures for the
// same field are appended); successful results never clear an earlier
// failure.
func (t Tracker) Add(field string, result validation.Result) Tracker {
	field = strings.TrimSpace(field)
	if field == "" || !result.Failed() {
		return t
	}

	next := t.clone()
	next.fields = appendField(next.fields, field)
	message := strings.TrimSpace(result.Message)
	if message == "" {
		message = field + " is invalid"
	}
	if !contains(next.messages[field], message) {
		next.messages[field] = append(next.messages[field], message)
	}
	return next
}

// Fold adds every result in order.
func (t Tracker) Fold(results ...validation.FieldResult) Tracker {
	out := t
	for _, result := range results {
		out = out.Add(result.Field, result.Result)
	}
	return out
}

// HasErrors reports whether any field recorded a failure.
func (t Tracker) HasErrors() bool {
	return len(t.messages) > 0
}

// Message returns the combined failure message for field.
func (t Tracker) Message(field string) (string, bool) {
	messages, ok := t.messages[field]
	if !ok {
		return "", false
	}
	return strings.Join(messages, " "), true
}

// Text concatenates every recorded failure message, one per line, following
// field order. It is empty when there are no errors.
func (t Tracker) Text() string {
	if !t.HasErrors() {
		return ""
	}
	var lines []string
	for _, field := range t.fields {
		lines = append(lines, t.messages[field]...)
	}
	return strings.Join(lines, "\n")
}

// Fields returns the tracked field names in order.
func (t Tracker) Fields() []string {
	return append([]string(nil), t.fields...)
}

// Snapshot is the serialisable view of a tracker handed to renderers. Its shape
// does not depend on whether errors exist: every tracked field is present in
// Errors, mapped to nil while valid.
type Snapshot struct {
	Errors    map[string]*string `json:"errors"`
	HasErrors bool               `json:"hasErrors"`
	Text      string             `json:"text"`
}

// Snapshot captures the tracker state.
func (t Tracker) Snapshot() Snapshot {
	errs := make(map[string]*string, len(t.fields))
	for _, field := range t.fields {
		if message, ok := t.Message(field); ok {
			errs[field] = &message
			continue
		}
		errs[field] = nil
	}
	return Snapshot{
		Errors:    errs,
		HasErrors: t.HasErrors(),
		Text:      t.Text(),
	}
}

// MarshalJSON encodes the tracker as its Snapshot.
func (t Tracker) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Snapshot())
}

// Message returns the error recorded for field in the snapshot, or "" when the
// field is valid or unknown.
func (s Snapshot) Message(field string) string {
	if message := s.Errors[field]; message != nil {
		return *message
	}
	return ""
}

func (t Tracker) clone() Tracker {
	out := Tracker{
		fields:   append([]string(nil), t.fields...),
		messages: make(map[string][]string, len(t.messages)+1),
	}
	for field, messages := range t.messages {
		out.messages[field] = append([]string(nil), messages...)
	}
	return out
}

func appendField(fields []string, field string) []string {
	field = strings.TrimSpace(field)
	if field == "" || contains(fields, field) {
		return fields
	}
	return append(fields, field)
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
