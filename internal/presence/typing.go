package presence

import (
	"context"
	"fmt"
	"sync"
	"time"

	logger_lib "github.com/s21platform/logger-lib"
)

const (
	DefaultDebounce = 1500 * time.Millisecond

	// Remote typing is cleared after this many debounce intervals without a
	// refresh, so a dropped stop event cannot leave the indicator stuck.
	livenessMultiplier = 3
)

type Emitter interface {
	EmitTypingStart(ctx context.Context, conversationID string) error
	EmitTypingStop(ctx context.Context, conversationID string) error
}

// Controller is the typing state machine for the active conversation. The
// local and remote axes are independent: local debounces keystrokes into
// exactly one start and one stop signal, remote tracks the peer's indicator
// with a defensive liveness timeout.
type Controller struct {
	emitter  Emitter
	logger   logger_lib.LoggerInterface
	debounce time.Duration
	liveness time.Duration

	mu             sync.Mutex
	conversationID string
	generation     uint64

	localTyping   bool
	debounceTimer *time.Timer

	remoteTyping bool
	lastSignalAt time.Time
	remoteTimer  *time.Timer
}

func NewController(emitter Emitter, logger logger_lib.LoggerInterface, debounce time.Duration) *Controller {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller{
		emitter:  emitter,
		logger:   logger,
		debounce: debounce,
		liveness: livenessMultiplier * debounce,
	}
}

// Reset rebinds the controller to a conversation. Pending timers are
// invalidated so a stale debounce cannot emit a stop into the wrong room.
func (c *Controller) Reset(conversationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.stopTimersLocked()
	c.conversationID = conversationID
	c.localTyping = false
	c.remoteTyping = false
	c.lastSignalAt = time.Time{}
}

// Keystroke registers local typing activity. The first keystroke emits a
// start signal; further keystrokes only refresh the debounce timer.
func (c *Controller) Keystroke(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conversationID == "" {
		return
	}

	if !c.localTyping {
		c.localTyping = true
		if err := c.emitter.EmitTypingStart(ctx, c.conversationID); err != nil {
			c.logger.Error(fmt.Sprintf("failed to emit typing start: %v", err))
		}
	}

	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
	}
	gen := c.generation
	c.debounceTimer = time.AfterFunc(c.debounce, func() {
		c.debounceExpired(gen)
	})
}

func (c *Controller) debounceExpired(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || !c.localTyping {
		return
	}
	c.emitStopLocked()
}

// MessageSent forces an immediate stop signal regardless of the debounce
// timer, since submitting the message ends the typing session.
func (c *Controller) MessageSent(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
		c.debounceTimer = nil
	}
	if c.localTyping {
		c.localTyping = false
		if err := c.emitter.EmitTypingStop(ctx, c.conversationID); err != nil {
			c.logger.Error(fmt.Sprintf("failed to emit typing stop: %v", err))
		}
	}
}

// HandleRemoteStart marks the peer as typing when the event targets the
// bound conversation.
func (c *Controller) HandleRemoteStart(conversationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if conversationID != c.conversationID || c.conversationID == "" {
		return
	}

	c.remoteTyping = true
	c.lastSignalAt = time.Now()

	if c.remoteTimer != nil {
		c.remoteTimer.Stop()
	}
	gen := c.generation
	c.remoteTimer = time.AfterFunc(c.liveness, func() {
		c.remoteExpired(gen)
	})
}

func (c *Controller) HandleRemoteStop(conversationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if conversationID != c.conversationID {
		return
	}

	c.remoteTyping = false
	if c.remoteTimer != nil {
		c.remoteTimer.Stop()
		c.remoteTimer = nil
	}
}

func (c *Controller) remoteExpired(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	c.remoteTyping = false
}

func (c *Controller) RemoteTyping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remoteTyping
}

func (c *Controller) emitStopLocked() {
	c.localTyping = false
	if err := c.emitter.EmitTypingStop(context.Background(), c.conversationID); err != nil {
		c.logger.Error(fmt.Sprintf("failed to emit typing stop: %v", err))
	}
}

func (c *Controller) stopTimersLocked() {
	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
		c.debounceTimer = nil
	}
	if c.remoteTimer != nil {
		c.remoteTimer.Stop()
		c.remoteTimer = nil
	}
}
