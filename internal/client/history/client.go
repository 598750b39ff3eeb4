package history

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/s21platform/chat-sync/internal/config"
	"github.com/s21platform/chat-sync/internal/model"
)

// Client fetches conversation snapshots from the chat backend's REST API.
// It only seeds the store on selection and reconnect resync; it is never
// consulted once live events are flowing.
type Client struct {
	baseURL      string
	sessionToken string
	httpClient   *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:      cfg.ChatAPI.BaseURL,
		sessionToken: cfg.ChatAPI.SessionToken,
		httpClient: &http.Client{
			Timeout: cfg.ChatAPI.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type conversationRow struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	AvatarURL          string     `json:"avatar_url"`
	IsGroup            bool       `json:"is_group"`
	LastMessageContent *string    `json:"last_message_content,omitempty"`
	LastMessageAt      *time.Time `json:"last_message_at,omitempty"`
}

type listConversationsResponse struct {
	Conversations []conversationRow `json:"conversations"`
}

type messageRow struct {
	ID        string     `json:"id"`
	SenderID  string     `json:"sender_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}

type historyResponse struct {
	IsGroup      bool                `json:"is_group"`
	Participants []model.Participant `json:"participants"`
	Messages     []messageRow        `json:"messages"`
}

type connectTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

func (c *Client) ListConversations(ctx context.Context) (model.ConversationPreviewList, error) {
	var resp listConversationsResponse
	if err := c.get(ctx, "/api/chat/conversations", &resp); err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	previews := make(model.ConversationPreviewList, len(resp.Conversations))
	for i, row := range resp.Conversations {
		previews[i] = model.ConversationPreview{
			ID:                 row.ID,
			Name:               row.Name,
			AvatarURL:          row.AvatarURL,
			IsGroup:            row.IsGroup,
			LastMessageContent: row.LastMessageContent,
			LastMessageAt:      row.LastMessageAt,
		}
	}
	return previews, nil
}

func (c *Client) GetConversationHistory(ctx context.Context, conversationID string) (*model.Conversation, error) {
	var resp historyResponse
	path := fmt.Sprintf("/api/chat/conversations/%s/messages", conversationID)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", conversationID, err)
	}

	conv := &model.Conversation{
		ID:           conversationID,
		IsGroup:      resp.IsGroup,
		Participants: resp.Participants,
		Messages:     make(model.MessageList, len(resp.Messages)),
	}

	// The backend returns newest first; the store keeps display order.
	for i, row := range resp.Messages {
		conv.Messages[len(resp.Messages)-1-i] = model.Message{
			ID:        row.ID,
			SenderID:  row.SenderID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			EditedAt:  row.EditedAt,
			Delivery:  model.DeliveryConfirmed,
		}
	}
	return conv, nil
}

// GetConnectToken fetches a short-lived realtime connect token.
func (c *Client) GetConnectToken(ctx context.Context) (string, error) {
	var resp connectTokenResponse
	if err := c.get(ctx, "/api/chat/access-token", &resp); err != nil {
		return "", fmt.Errorf("failed to fetch connect token: %w", err)
	}
	return resp.Token, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.sessionToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
