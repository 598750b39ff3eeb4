package model

import (
	"encoding/json"
	"time"
)

type EventKind string

const (
	EventMessageReceived EventKind = "message-received"
	EventMessageAck      EventKind = "message-sent"
	EventMessageEdited   EventKind = "message-edited"
	EventTypingStart     EventKind = "typing-start"
	EventTypingStop      EventKind = "typing-stop"

	// Transport lifecycle, surfaced by the realtime adapter rather than
	// carried on the wire.
	EventConnected    EventKind = "connected"
	EventReconnected  EventKind = "reconnected"
	EventDisconnected EventKind = "disconnected"
)

// Envelope is the wire format of every inbound realtime frame.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// MessagePayload carries a server-side message for both remote arrivals and
// own-send echoes. ClientToken is present on echoes when the backend managed
// to round-trip it; reconciliation must not rely on it.
type MessagePayload struct {
	ID          string    `json:"id"`
	ClientToken string    `json:"client_token,omitempty"`
	SenderID    string    `json:"sender_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

type EditPayload struct {
	MessageID string    `json:"message_id"`
	Content   string    `json:"content"`
	EditedAt  time.Time `json:"edited_at"`
}

// Event is the tagged variant handed to the sync engine. Exactly one of the
// payload pointers is set for message kinds; typing kinds carry SenderID only.
type Event struct {
	Kind           EventKind
	ConversationID string
	Message        *MessagePayload
	Edit           *EditPayload
	SenderID       string
}
