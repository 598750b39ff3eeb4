package model

import (
	"time"
)

type DeliveryState string

const (
	DeliveryPending   DeliveryState = "pending"
	DeliveryConfirmed DeliveryState = "confirmed"
	DeliveryFailed    DeliveryState = "failed"
)

type MessageList []Message

// Message is one entry of a conversation's ordered view. ID is assigned by
// the chat backend and stays empty while the message is an optimistic local
// send; ClientToken is set only on locally originated messages and is used to
// correlate the eventual server echo.
type Message struct {
	ID          string        `json:"id,omitempty"`
	ClientToken string        `json:"client_token,omitempty"`
	SenderID    string        `json:"sender_id"`
	Content     string        `json:"content"`
	CreatedAt   time.Time     `json:"created_at"`
	EditedAt    *time.Time    `json:"edited_at,omitempty"`
	Delivery    DeliveryState `json:"delivery"`
}

// IndexByID returns the position of the message with the given server id,
// or -1 when it is not part of the list.
func (ml MessageList) IndexByID(id string) int {
	if id == "" {
		return -1
	}
	for i := range ml {
		if ml[i].ID == id {
			return i
		}
	}
	return -1
}

// IndexPendingByToken returns the position of a still-pending message with
// the given client token, or -1.
func (ml MessageList) IndexPendingByToken(token string) int {
	if token == "" {
		return -1
	}
	for i := range ml {
		if ml[i].Delivery == DeliveryPending && ml[i].ClientToken == token {
			return i
		}
	}
	return -1
}
