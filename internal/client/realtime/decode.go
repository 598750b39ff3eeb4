package realtime

import (
	"encoding/json"

	"github.com/s21platform/chat-sync/internal/model"
)

type typingPayload struct {
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
}

type messageFrame struct {
	ConversationID string `json:"conversation_id"`
	model.MessagePayload
}

type editFrame struct {
	ConversationID string `json:"conversation_id"`
	model.EditPayload
}

// decodeEvent turns one wire frame into a tagged event. Unknown event names
// and undecodable payloads report !ok so the read loop can drop them without
// breaking event processing.
func decodeEvent(data []byte) (model.Event, bool) {
	var env model.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return model.Event{}, false
	}

	switch model.EventKind(env.Event) {
	case model.EventMessageReceived, model.EventMessageAck:
		var frame messageFrame
		if err := json.Unmarshal(env.Payload, &frame); err != nil {
			return model.Event{}, false
		}
		payload := frame.MessagePayload
		return model.Event{
			Kind:           model.EventKind(env.Event),
			ConversationID: frame.ConversationID,
			Message:        &payload,
			SenderID:       payload.SenderID,
		}, true

	case model.EventMessageEdited:
		var frame editFrame
		if err := json.Unmarshal(env.Payload, &frame); err != nil {
			return model.Event{}, false
		}
		payload := frame.EditPayload
		return model.Event{
			Kind:           model.EventMessageEdited,
			ConversationID: frame.ConversationID,
			Edit:           &payload,
		}, true

	case model.EventTypingStart, model.EventTypingStop:
		var frame typingPayload
		if err := json.Unmarshal(env.Payload, &frame); err != nil {
			return model.Event{}, false
		}
		return model.Event{
			Kind:           model.EventKind(env.Event),
			ConversationID: frame.ConversationID,
			SenderID:       frame.SenderID,
		}, true
	}

	return model.Event{}, false
}
