// Package event decodes verified webhook payloads into structured events.
// Parsing makes no trust decision; callers must verify the payload signature
// before handing the body to Parse.
package event

import (
	"encoding/json"

	"loansign/internal/common/errors"
)

// Type discriminates webhook event kinds
type Type string

// Document event types delivered by the e-signature provider.
const (
	TypeSent      Type = "Sent"
	TypeViewed    Type = "Viewed"
	TypeSigned    Type = "Signed"
	TypeCompleted Type = "Completed"
	TypeDeclined  Type = "Declined"
	TypeRevoked   Type = "Revoked"
	TypeExpired   Type = "Expired"

	// TypeOther covers event types this service does not recognize.
	// Providers add new types over time; unknown discriminators are not an error.
	TypeOther Type = "Other"
)

var knownTypes = map[Type]bool{
	TypeSent:      true,
	TypeViewed:    true,
	TypeSigned:    true,
	TypeCompleted: true,
	TypeDeclined:  true,
	TypeRevoked:   true,
	TypeExpired:   true,
}

// DocumentData is the payload of a document event
type DocumentData struct {
	DocumentID  string `json:"documentId"`
	Status      string `json:"status,omitempty"`
	SignerEmail string `json:"signerEmail,omitempty"`
}

// Event is a decoded webhook event. Document is populated for recognized
// document event types; Raw always carries the data payload as received.
type Event struct {
	Type     Type
	Document *DocumentData
	Raw      json.RawMessage
}

// envelope is the provider's wire format:
// {"event":{"eventType":"Completed"},"data":{"documentId":"..."}}
type envelope struct {
	Event struct {
		EventType string `json:"eventType"`
	} `json:"event"`
	Data json.RawMessage `json:"data"`
}

// Parse decodes a webhook body into an Event. Structurally invalid payloads
// fail with a malformed-payload error; unrecognized event types succeed as
// TypeOther.
func Parse(body []byte) (*Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.MalformedPayloadError("webhook body is not a valid event envelope", err)
	}

	if env.Event.EventType == "" {
		return nil, errors.MalformedPayloadError("event envelope is missing the eventType discriminator", nil)
	}

	ev := &Event{
		Type: Type(env.Event.EventType),
		Raw:  env.Data,
	}

	if !knownTypes[ev.Type] {
		ev.Type = TypeOther
		return ev, nil
	}

	if len(env.Data) > 0 {
		var doc DocumentData
		if err := json.Unmarshal(env.Data, &doc); err != nil {
			return nil, errors.MalformedPayloadError("document event data is malformed", err)
		}
		ev.Document = &doc
	}

	return ev, nil
}
