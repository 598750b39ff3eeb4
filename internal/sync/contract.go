//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package sync

import (
	"context"

	"github.com/s21platform/chat-sync/internal/model"
)

type Transport interface {
	SendMessage(ctx context.Context, conversationID, content, clientToken string) error
	SendEdit(ctx context.Context, conversationID, messageID, content string) error
	EmitTypingStart(ctx context.Context, conversationID string) error
	EmitTypingStop(ctx context.Context, conversationID string) error
	JoinRoom(ctx context.Context, conversationID string) error
	LeaveRoom(ctx context.Context, conversationID string) error
}

type HistoryClient interface {
	ListConversations(ctx context.Context) (model.ConversationPreviewList, error)
	GetConversationHistory(ctx context.Context, conversationID string) (*model.Conversation, error)
}

type MetricsClient interface {
	Increment(metric string)
}
