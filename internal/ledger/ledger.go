package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one locally submitted message awaiting its server confirmation.
type Entry struct {
	ClientToken    string
	ConversationID string
	Content        string
	SubmittedAt    time.Time
}

// Ledger correlates optimistic local sends with their eventual server echo.
// A token is issued at most once and resolved at most once; resolving an
// unknown token is a no-op so duplicate acks stay harmless.
type Ledger struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func New() *Ledger {
	return &Ledger{
		entries: make(map[string]Entry),
	}
}

// Submit registers a new pending send and returns its correlation token.
func (l *Ledger) Submit(conversationID, content string, now time.Time) string {
	token := uuid.NewString()

	l.mu.Lock()
	l.entries[token] = Entry{
		ClientToken:    token,
		ConversationID: conversationID,
		Content:        content,
		SubmittedAt:    now,
	}
	l.mu.Unlock()

	return token
}

// Resolve removes the entry for token and reports whether it existed.
func (l *Ledger) Resolve(token string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[token]
	if !ok {
		return Entry{}, false
	}

	delete(l.entries, token)
	return entry, true
}

// Peek returns the entry for token without resolving it.
func (l *Ledger) Peek(token string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[token]
	return entry, ok
}

// Entries returns the pending entries for one conversation.
func (l *Ledger) Entries(conversationID string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Entry
	for _, entry := range l.entries {
		if entry.ConversationID == conversationID {
			out = append(out, entry)
		}
	}
	return out
}

// EntriesOlderThan returns entries submitted more than maxAge before now.
// The caller uses it to drive send-timeout failure marking.
func (l *Ledger) EntriesOlderThan(now time.Time, maxAge time.Duration) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Entry
	for _, entry := range l.entries {
		if now.Sub(entry.SubmittedAt) > maxAge {
			out = append(out, entry)
		}
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
