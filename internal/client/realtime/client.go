package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-sync/internal/config"
	"github.com/s21platform/chat-sync/internal/model"
	"github.com/s21platform/chat-sync/internal/pkg/token"
)

const (
	cmdSendMessage = "send-message"
	cmdEditMessage = "edit-message"
	cmdTypingStart = "typing-start"
	cmdTypingStop  = "typing-stop"
	cmdJoinRoom    = "join-room"
	cmdLeaveRoom   = "leave-room"
)

// tokenRefreshMargin is how long before connect-token expiry the session is
// recycled so the redial path picks up a fresh token.
const tokenRefreshMargin = time.Minute

// Handler consumes decoded inbound events in delivery order.
type Handler func(ctx context.Context, ev model.Event)

// TokenFunc supplies a fresh connect token for each (re)connect attempt.
type TokenFunc func(ctx context.Context) (string, error)

type MetricsClient interface {
	Increment(metric string)
}

// Client is the bidirectional event channel to the realtime broker: it emits
// named commands and dispatches inbound envelopes to a single handler,
// reconnecting with exponential backoff when the socket drops.
type Client struct {
	url     string
	dialer  *websocket.Dialer
	tokenFn TokenFunc
	handler Handler
	logger  logger_lib.LoggerInterface
	metrics MetricsClient
	recon   *reconnector

	mu           sync.Mutex
	writeMu      sync.Mutex
	conn         *websocket.Conn
	refreshTimer *time.Timer
}

func New(cfg *config.Config, tokenFn TokenFunc, handler Handler, logger logger_lib.LoggerInterface, metrics MetricsClient) *Client {
	return &Client{
		url: cfg.Realtime.URL,
		dialer: &websocket.Dialer{
			HandshakeTimeout: cfg.Realtime.HandshakeTimeout,
		},
		tokenFn: tokenFn,
		handler: handler,
		logger:  logger,
		metrics: metrics,
		recon: newReconnector(
			cfg.Realtime.ReconnectBase,
			cfg.Realtime.ReconnectMax,
			cfg.Realtime.MaxReconnectTries,
		),
	}
}

// Run connects and keeps the session alive until ctx is cancelled or the
// reconnect budget is exhausted. Each successful connect after the first one
// surfaces a reconnected event so the engine can repair room membership and
// resync.
func (c *Client) Run(ctx context.Context) error {
	connects := 0

	for {
		if err := c.connect(ctx); err != nil {
			c.logger.Error(fmt.Sprintf("failed to connect realtime channel: %v", err))
		} else {
			connects++
			c.recon.markConnected()

			kind := model.EventConnected
			if connects > 1 {
				kind = model.EventReconnected
				c.metrics.Increment("realtime.reconnect")
			}
			c.handler(ctx, model.Event{Kind: kind})

			c.readLoop(ctx)
			c.handler(ctx, model.Event{Kind: model.EventDisconnected})
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !c.recon.shouldRetry() {
			return fmt.Errorf("realtime reconnect attempts exhausted")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.recon.nextDelay()):
		}
	}
}

func (c *Client) connect(ctx context.Context) error {
	connectToken, err := c.tokenFn(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain connect token: %w", err)
	}

	conn, _, err := c.dialer.DialContext(ctx, c.url+"?token="+connectToken, nil)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", c.url, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.scheduleTokenRefresh(conn, connectToken)

	return nil
}

// scheduleTokenRefresh drops the connection shortly before its connect token
// expires; the redial path then fetches a fresh token and the engine resyncs
// through the ordinary reconnect flow. Tokens without a readable expiry are
// only refreshed on connection loss.
func (c *Client) scheduleTokenRefresh(conn *websocket.Conn, connectToken string) {
	_, expiresAt, err := token.Inspect(connectToken)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("connect token is not inspectable, skipping refresh schedule: %v", err))
		return
	}

	delay, ok := refreshDelay(expiresAt, time.Now())
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.refreshTimer != nil {
		c.refreshTimer.Stop()
	}
	c.refreshTimer = time.AfterFunc(delay, func() {
		// Closing only the captured conn keeps a stale timer from touching a
		// newer session.
		_ = conn.Close()
	})
}

// refreshDelay picks when to recycle a session whose token expires at
// expiresAt: a margin before expiry, or half the remaining lifetime when the
// token is shorter-lived than two margins.
func refreshDelay(expiresAt, now time.Time) (time.Duration, bool) {
	if expiresAt.IsZero() {
		return 0, false
	}

	remaining := expiresAt.Sub(now)
	if remaining <= 0 {
		return 0, false
	}
	if remaining > 2*tokenRefreshMargin {
		return remaining - tokenRefreshMargin, true
	}
	return remaining / 2, true
}

func (c *Client) readLoop(ctx context.Context) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	defer func() {
		_ = conn.Close()
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				c.logger.Warn(fmt.Sprintf("realtime read failed: %v", err))
			}
			return
		}

		ev, ok := decodeEvent(data)
		if !ok {
			c.logger.Warn(fmt.Sprintf("dropping malformed realtime frame: %.120s", data))
			continue
		}

		c.handler(ctx, ev)
	}
}

// Close tears the connection down; Run exits through its context.
func (c *Client) Close() {
	c.mu.Lock()
	conn := c.conn
	if c.refreshTimer != nil {
		c.refreshTimer.Stop()
		c.refreshTimer = nil
	}
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

type sendMessagePayload struct {
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
	ClientToken    string `json:"client_token"`
}

type editMessagePayload struct {
	ConversationID string `json:"conversation_id"`
	MessageID      string `json:"message_id"`
	Content        string `json:"content"`
}

type roomPayload struct {
	ConversationID string `json:"conversation_id"`
}

func (c *Client) SendMessage(ctx context.Context, conversationID, content, clientToken string) error {
	return c.emit(cmdSendMessage, sendMessagePayload{
		ConversationID: conversationID,
		Content:        content,
		ClientToken:    clientToken,
	})
}

func (c *Client) SendEdit(ctx context.Context, conversationID, messageID, content string) error {
	return c.emit(cmdEditMessage, editMessagePayload{
		ConversationID: conversationID,
		MessageID:      messageID,
		Content:        content,
	})
}

func (c *Client) EmitTypingStart(ctx context.Context, conversationID string) error {
	return c.emit(cmdTypingStart, roomPayload{ConversationID: conversationID})
}

func (c *Client) EmitTypingStop(ctx context.Context, conversationID string) error {
	return c.emit(cmdTypingStop, roomPayload{ConversationID: conversationID})
}

func (c *Client) JoinRoom(ctx context.Context, conversationID string) error {
	return c.emit(cmdJoinRoom, roomPayload{ConversationID: conversationID})
}

func (c *Client) LeaveRoom(ctx context.Context, conversationID string) error {
	return c.emit(cmdLeaveRoom, roomPayload{ConversationID: conversationID})
}

func (c *Client) emit(event string, payload interface{}) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return fmt.Errorf("realtime channel is not connected")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.WriteJSON(model.Envelope{Event: event, Payload: raw}); err != nil {
		return fmt.Errorf("failed to emit %s: %w", event, err)
	}
	return nil
}
