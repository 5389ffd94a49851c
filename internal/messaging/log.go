// Package messaging models the chat transport as an in-memory append log.
// Real-time delivery is out of scope; this log is the canonical in-process
// representation consumed by the conversation API.
package messaging

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message is one appended chat entry.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Body           string    `json:"body"`
	Seq            int       `json:"seq"`
	SentAt         time.Time `json:"sent_at"`
}

// Log is a thread-safe append-only message log keyed by conversation.
// Messages within a conversation are strictly ordered by Seq.
type Log struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID][]Message
	now           func() time.Time
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{
		conversations: make(map[uuid.UUID][]Message),
		now:           time.Now,
	}
}

// Append adds a message to a conversation and returns the stored entry
// with its assigned id, sequence number, and timestamp.
func (l *Log) Append(conversationID, senderID uuid.UUID, body string) Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		Seq:            len(l.conversations[conversationID]) + 1,
		SentAt:         l.now(),
	}
	l.conversations[conversationID] = append(l.conversations[conversationID], msg)
	return msg
}

// Messages returns a copy of a conversation's messages in append order.
// afterSeq restricts the result to messages with Seq greater than it;
// pass 0 for the full history.
func (l *Log) Messages(conversationID uuid.UUID, afterSeq int) []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	all := l.conversations[conversationID]
	out := make([]Message, 0, len(all))
	for _, m := range all {
		if m.Seq > afterSeq {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of messages in a conversation.
func (l *Log) Len(conversationID uuid.UUID) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.conversations[conversationID])
}
