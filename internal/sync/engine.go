package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-sync/internal/ledger"
	"github.com/s21platform/chat-sync/internal/model"
	"github.com/s21platform/chat-sync/internal/presence"
	"github.com/s21platform/chat-sync/internal/room"
)

const DefaultSendTimeout = 15 * time.Second

type Options struct {
	AckRecencyWindow time.Duration
	SendTimeout      time.Duration
	TypingDebounce   time.Duration
}

// View is the read-only state handed to the UI surface: the always-current
// ordered message list of the active conversation plus the remote typing flag.
type View struct {
	ConversationID string            `json:"conversation_id"`
	Messages       model.MessageList `json:"messages"`
	RemoteTyping   bool              `json:"remote_typing"`
}

type previewDelta struct {
	unread      int
	lastContent string
	lastAt      time.Time
}

// Engine holds the conversation store for the active conversation and routes
// every inbound transport event through the reconciler. All mutation is
// serialized behind one mutex and events are applied in the order the
// transport delivers them, so the merged view never depends on timer or
// closure races.
type Engine struct {
	transport  Transport
	history    HistoryClient
	logger     logger_lib.LoggerInterface
	metrics    MetricsClient
	reconciler *Reconciler
	pending    *ledger.Ledger
	typing     *presence.Controller
	rooms      *room.Manager
	selfID     string

	sendTimeout time.Duration

	mu       sync.Mutex
	active   *model.Conversation
	previews map[string]previewDelta
}

func NewEngine(transport Transport, history HistoryClient, logger logger_lib.LoggerInterface, metrics MetricsClient, selfID string, opts Options) *Engine {
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = DefaultSendTimeout
	}

	return &Engine{
		transport:   transport,
		history:     history,
		logger:      logger,
		metrics:     metrics,
		reconciler:  NewReconciler(Policy{AckRecencyWindow: opts.AckRecencyWindow}),
		pending:     ledger.New(),
		typing:      presence.NewController(transport, logger, opts.TypingDebounce),
		rooms:       room.NewManager(transport, logger),
		selfID:      selfID,
		sendTimeout: opts.SendTimeout,
		previews:    make(map[string]previewDelta),
	}
}

// Select makes conversationID the active conversation: joins its room, resets
// typing state and seeds the store from a history snapshot. State of the
// previously active conversation is evicted.
func (e *Engine) Select(ctx context.Context, conversationID string) error {
	e.typing.Reset(conversationID)
	e.rooms.Select(ctx, conversationID)

	conv, err := e.history.GetConversationHistory(ctx, conversationID)
	if err != nil {
		// Live events still flow into an empty store; the caller may retry
		// the snapshot.
		e.mu.Lock()
		e.active = &model.Conversation{ID: conversationID}
		delete(e.previews, conversationID)
		e.mu.Unlock()
		return fmt.Errorf("failed to load conversation history: %w", err)
	}

	e.mu.Lock()
	e.active = conv
	delete(e.previews, conversationID)
	e.mu.Unlock()

	return nil
}

// Deselect leaves the active room and evicts the conversation state.
func (e *Engine) Deselect(ctx context.Context) {
	e.typing.Reset("")
	e.rooms.Clear(ctx)

	e.mu.Lock()
	e.active = nil
	e.mu.Unlock()
}

// Submit registers an optimistic send and emits it on the transport. The
// returned message is already part of the view with delivery "pending"; it
// converges to "confirmed" when the echo arrives, or to "failed" via the
// send-timeout sweep. A transport-level emit failure marks it failed at once.
func (e *Engine) Submit(ctx context.Context, content string) (model.Message, error) {
	e.mu.Lock()
	if e.active == nil {
		e.mu.Unlock()
		return model.Message{}, fmt.Errorf("no active conversation")
	}

	conversationID := e.active.ID
	now := time.Now()
	token := e.pending.Submit(conversationID, content, now)

	msg := model.Message{
		ClientToken: token,
		SenderID:    e.selfID,
		Content:     content,
		CreatedAt:   now,
		Delivery:    model.DeliveryPending,
	}
	e.active.Messages = append(e.active.Messages, msg)
	e.mu.Unlock()

	e.typing.MessageSent(ctx)

	if err := e.transport.SendMessage(ctx, conversationID, content, token); err != nil {
		e.logger.Error(fmt.Sprintf("failed to emit message: %v", err))
		e.failPending(token)
		msg.Delivery = model.DeliveryFailed
		return msg, fmt.Errorf("failed to send message: %w", err)
	}

	return msg, nil
}

// SubmitEdit emits an edit for a confirmed message; the store is updated when
// the edit echo arrives, keeping a single mutation path through the
// reconciler.
func (e *Engine) SubmitEdit(ctx context.Context, messageID, content string) error {
	e.mu.Lock()
	if e.active == nil {
		e.mu.Unlock()
		return fmt.Errorf("no active conversation")
	}
	conversationID := e.active.ID
	if e.active.Messages.IndexByID(messageID) < 0 {
		e.mu.Unlock()
		return fmt.Errorf("message %s is not part of the active conversation", messageID)
	}
	e.mu.Unlock()

	if err := e.transport.SendEdit(ctx, conversationID, messageID, content); err != nil {
		return fmt.Errorf("failed to send edit: %w", err)
	}
	return nil
}

// Keystroke feeds the typing debounce for the active conversation.
func (e *Engine) Keystroke(ctx context.Context) {
	e.typing.Keystroke(ctx)
}

// HandleEvent consumes one inbound transport event. It never returns an
// error: a malformed or irrelevant event is a logged no-op, so one bad frame
// cannot stop event processing.
func (e *Engine) HandleEvent(ctx context.Context, ev model.Event) {
	switch ev.Kind {
	case model.EventTypingStart:
		if ev.SenderID != e.selfID {
			e.typing.HandleRemoteStart(ev.ConversationID)
		}
	case model.EventTypingStop:
		if ev.SenderID != e.selfID {
			e.typing.HandleRemoteStop(ev.ConversationID)
		}
	case model.EventReconnected:
		e.rooms.HandleReconnect(ctx)
		e.resync(ctx)
	case model.EventConnected, model.EventDisconnected:
		// Lifecycle only; membership repair happens on reconnect.
	case model.EventMessageReceived, model.EventMessageAck, model.EventMessageEdited:
		e.applyMessageEvent(ev)
	default:
		e.logger.Warn(fmt.Sprintf("ignoring unknown event kind %q", ev.Kind))
	}
}

func (e *Engine) applyMessageEvent(ev model.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil && ev.ConversationID == e.active.ID {
		outcome := e.reconciler.Apply(e.active, e.pending, ev)
		e.metrics.Increment("sync.merge." + string(outcome))
		if outcome == OutcomeIgnored {
			e.logger.Warn(fmt.Sprintf("ignored %s event for conversation %s", ev.Kind, ev.ConversationID))
		}
		return
	}

	// Inactive conversation: never merge into an unmounted message list,
	// only keep counters and previews current.
	switch ev.Kind {
	case model.EventMessageAck:
		if ev.Message != nil {
			e.pending.Resolve(ev.Message.ClientToken)
		}
	case model.EventMessageReceived:
		if ev.Message == nil || ev.Message.SenderID == e.selfID {
			return
		}
		delta := e.previews[ev.ConversationID]
		delta.unread++
		delta.lastContent = ev.Message.Content
		delta.lastAt = ev.Message.CreatedAt
		e.previews[ev.ConversationID] = delta
	}
}

// FailTimedOut transitions pending sends older than the send timeout to
// "failed" and drops their ledger entries. It is driven by the caller's
// ticker: the reconciler itself owns no timers.
func (e *Engine) FailTimedOut(now time.Time) int {
	expired := e.pending.EntriesOlderThan(now, e.sendTimeout)
	for _, entry := range expired {
		e.failPending(entry.ClientToken)
	}
	return len(expired)
}

func (e *Engine) failPending(token string) {
	if _, ok := e.pending.Resolve(token); !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return
	}
	if idx := e.active.Messages.IndexPendingByToken(token); idx >= 0 {
		e.active.Messages[idx].Delivery = model.DeliveryFailed
	}
}

// Snapshot returns a copy of the active conversation's ordered view.
func (e *Engine) Snapshot() (View, bool) {
	e.mu.Lock()
	if e.active == nil {
		e.mu.Unlock()
		return View{}, false
	}

	view := View{
		ConversationID: e.active.ID,
		Messages:       append(model.MessageList{}, e.active.Messages...),
	}
	e.mu.Unlock()

	view.RemoteTyping = e.typing.RemoteTyping()
	return view, true
}

// Conversations returns the conversation list with locally tracked unread
// counters and preview updates overlaid on the fetched snapshot.
func (e *Engine) Conversations(ctx context.Context) (model.ConversationPreviewList, error) {
	previews, err := e.history.ListConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range previews {
		delta, ok := e.previews[previews[i].ID]
		if !ok {
			continue
		}
		previews[i].Unread += delta.unread
		if !delta.lastAt.IsZero() {
			content := delta.lastContent
			at := delta.lastAt
			previews[i].LastMessageContent = &content
			previews[i].LastMessageAt = &at
		}
	}

	return previews, nil
}

// resync re-seeds the active conversation from a fresh snapshot after a
// reconnect, then re-appends local sends that are still awaiting their ack.
// Events replayed by the server afterwards dedupe against the snapshot.
func (e *Engine) resync(ctx context.Context) {
	e.mu.Lock()
	if e.active == nil {
		e.mu.Unlock()
		return
	}
	conversationID := e.active.ID
	e.mu.Unlock()

	conv, err := e.history.GetConversationHistory(ctx, conversationID)
	if err != nil {
		e.logger.Error(fmt.Sprintf("failed to resync conversation %s: %v", conversationID, err))
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil || e.active.ID != conversationID {
		return
	}

	for _, entry := range e.pending.Entries(conversationID) {
		conv.Messages = append(conv.Messages, model.Message{
			ClientToken: entry.ClientToken,
			SenderID:    e.selfID,
			Content:     entry.Content,
			CreatedAt:   entry.SubmittedAt,
			Delivery:    model.DeliveryPending,
		})
	}
	e.active = conv
}
