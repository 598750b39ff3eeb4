package sync

import (
	"time"

	"github.com/s21platform/chat-sync/internal/ledger"
	"github.com/s21platform/chat-sync/internal/model"
)

// DefaultAckRecencyWindow bounds how far apart an echo and a pending send may
// be for the token-less fallback match. Wider tolerates more token loss,
// narrower avoids confirming an unrelated send with identical content.
const DefaultAckRecencyWindow = 60 * time.Second

type Policy struct {
	AckRecencyWindow time.Duration
}

type Outcome string

const (
	OutcomeAppended  Outcome = "appended"
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeEdited    Outcome = "edited"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeIgnored   Outcome = "ignored"
)

// Reconciler merges one inbound event into a conversation's ordered view.
// It is a pure merge: no timers, no I/O, no errors surfaced to the user.
// Display order is strictly processing order; the reconciler never re-sorts
// by timestamp, because arrival order is the authoritative tie-break.
type Reconciler struct {
	policy Policy
}

func NewReconciler(policy Policy) *Reconciler {
	if policy.AckRecencyWindow <= 0 {
		policy.AckRecencyWindow = DefaultAckRecencyWindow
	}
	return &Reconciler{policy: policy}
}

func (r *Reconciler) Apply(conv *model.Conversation, pending *ledger.Ledger, ev model.Event) Outcome {
	switch ev.Kind {
	case model.EventMessageReceived:
		return r.applyRemote(conv, ev.Message)
	case model.EventMessageAck:
		return r.applyAck(conv, pending, ev.Message)
	case model.EventMessageEdited:
		return r.applyEdit(conv, ev.Edit)
	default:
		return OutcomeIgnored
	}
}

func (r *Reconciler) applyRemote(conv *model.Conversation, msg *model.MessagePayload) Outcome {
	if msg == nil || msg.ID == "" {
		return OutcomeIgnored
	}

	if conv.Messages.IndexByID(msg.ID) >= 0 {
		return OutcomeDuplicate
	}

	conv.Messages = append(conv.Messages, model.Message{
		ID:        msg.ID,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
		Delivery:  model.DeliveryConfirmed,
	})
	return OutcomeAppended
}

func (r *Reconciler) applyAck(conv *model.Conversation, pending *ledger.Ledger, ack *model.MessagePayload) Outcome {
	if ack == nil || ack.ID == "" {
		return OutcomeIgnored
	}

	if conv.Messages.IndexByID(ack.ID) >= 0 {
		return OutcomeDuplicate
	}

	idx := conv.Messages.IndexPendingByToken(ack.ClientToken)
	if idx < 0 {
		idx = r.heuristicMatch(conv, pending, ack)
	}

	if idx >= 0 {
		m := &conv.Messages[idx]
		m.ID = ack.ID
		m.Content = ack.Content
		m.CreatedAt = ack.CreatedAt
		m.Delivery = model.DeliveryConfirmed
		pending.Resolve(m.ClientToken)
		return OutcomeConfirmed
	}

	// No pending counterpart: append instead of dropping. An occasional
	// duplicate-looking bubble beats silent message loss.
	conv.Messages = append(conv.Messages, model.Message{
		ID:        ack.ID,
		SenderID:  ack.SenderID,
		Content:   ack.Content,
		CreatedAt: ack.CreatedAt,
		Delivery:  model.DeliveryConfirmed,
	})
	return OutcomeAppended
}

// heuristicMatch handles echoes that lost their client token: same sender,
// identical content, and a ledger entry submitted within the recency window
// of the echo timestamp.
func (r *Reconciler) heuristicMatch(conv *model.Conversation, pending *ledger.Ledger, ack *model.MessagePayload) int {
	for i := range conv.Messages {
		m := &conv.Messages[i]
		if m.Delivery != model.DeliveryPending || m.ClientToken == "" {
			continue
		}
		if m.SenderID != ack.SenderID || m.Content != ack.Content {
			continue
		}

		entry, ok := pending.Peek(m.ClientToken)
		if !ok {
			continue
		}

		age := ack.CreatedAt.Sub(entry.SubmittedAt)
		if age < 0 {
			age = -age
		}
		if age <= r.policy.AckRecencyWindow {
			return i
		}
	}
	return -1
}

func (r *Reconciler) applyEdit(conv *model.Conversation, edit *model.EditPayload) Outcome {
	if edit == nil || edit.MessageID == "" {
		return OutcomeIgnored
	}

	idx := conv.Messages.IndexByID(edit.MessageID)
	if idx < 0 {
		return OutcomeIgnored
	}

	// In place: edits never reorder the view.
	editedAt := edit.EditedAt
	conv.Messages[idx].Content = edit.Content
	conv.Messages[idx].EditedAt = &editedAt
	return OutcomeEdited
}
