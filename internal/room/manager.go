package room

import (
	"context"
	"fmt"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"
)

type Transport interface {
	JoinRoom(ctx context.Context, conversationID string) error
	LeaveRoom(ctx context.Context, conversationID string) error
}

// Manager keeps the server-side channel membership consistent with the
// active conversation, across navigation and transport reconnects. Join and
// leave failures are logged and retried on the next reconnect signal; they
// are never fatal.
type Manager struct {
	transport Transport
	logger    logger_lib.LoggerInterface

	mu     sync.Mutex
	active string
}

func NewManager(transport Transport, logger logger_lib.LoggerInterface) *Manager {
	return &Manager{
		transport: transport,
		logger:    logger,
	}
}

// Select leaves the previous room, if any, and joins the new one. The new
// room becomes active even when the join fails, so the reconnect path can
// repair membership.
func (m *Manager) Select(ctx context.Context, conversationID string) {
	m.mu.Lock()
	previous := m.active
	m.active = conversationID
	m.mu.Unlock()

	if previous != "" && previous != conversationID {
		if err := m.transport.LeaveRoom(ctx, previous); err != nil {
			m.logger.Error(fmt.Sprintf("failed to leave room %s: %v", previous, err))
		}
	}

	if err := m.transport.JoinRoom(ctx, conversationID); err != nil {
		m.logger.Error(fmt.Sprintf("failed to join room %s: %v", conversationID, err))
	}
}

// HandleReconnect re-joins the active room. Server-side membership is not
// assumed to survive a reconnect, and joining a room we are already a
// logical member of is safe.
func (m *Manager) HandleReconnect(ctx context.Context) {
	m.mu.Lock()
	active := m.active
	m.mu.Unlock()

	if active == "" {
		return
	}

	if err := m.transport.JoinRoom(ctx, active); err != nil {
		m.logger.Error(fmt.Sprintf("failed to re-join room %s: %v", active, err))
	}
}

// Clear leaves the active room on deselect or unmount.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	active := m.active
	m.active = ""
	m.mu.Unlock()

	if active == "" {
		return
	}

	if err := m.transport.LeaveRoom(ctx, active); err != nil {
		m.logger.Error(fmt.Sprintf("failed to leave room %s: %v", active, err))
	}
}

// Active returns the conversation whose room is currently held.
func (m *Manager) Active() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
