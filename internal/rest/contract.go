//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/chat-sync/internal/model"
	"github.com/s21platform/chat-sync/internal/sync"
)

type SyncEngine interface {
	Select(ctx context.Context, conversationID string) error
	Deselect(ctx context.Context)
	Submit(ctx context.Context, content string) (model.Message, error)
	SubmitEdit(ctx context.Context, messageID, content string) error
	Keystroke(ctx context.Context)
	Snapshot() (sync.View, bool)
	Conversations(ctx context.Context) (model.ConversationPreviewList, error)
}

type Validator interface {
	ValidateSubmitMessage(content string) error
	ValidateEditMessage(messageID, content string) error
}
