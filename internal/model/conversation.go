package model

import (
	"time"
)

type Conversation struct {
	ID           string        `json:"id"`
	IsGroup      bool          `json:"is_group"`
	Participants []Participant `json:"participants"`
	Messages     MessageList   `json:"messages"`
}

type ConversationPreviewList []ConversationPreview

type ConversationPreview struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	AvatarURL          string     `json:"avatar_url"`
	IsGroup            bool       `json:"is_group"`
	LastMessageContent *string    `json:"last_message_content,omitempty"`
	LastMessageAt      *time.Time `json:"last_message_at,omitempty"`
	Unread             int        `json:"unread"`
}
