package rest

import (
	"github.com/s21platform/chat-sync/internal/model"
)

type Error struct {
	Error string `json:"error"`
}

type SubmitMessageRequest struct {
	Content string `json:"content"`
}

type SubmitMessageResponse struct {
	Message model.Message `json:"message"`
}

type EditMessageRequest struct {
	Content string `json:"content"`
}

type GetConversationsResponse struct {
	Conversations model.ConversationPreviewList `json:"conversations"`
}
