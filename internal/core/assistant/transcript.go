package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role of a transcript message author
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a chat transcript
type Message struct {
	ID         string      `json:"id"`
	Role       Role        `json:"role"`
	Content    string      `json:"content"`
	Timestamp  time.Time   `json:"timestamp"`
	Suggestion *Suggestion `json:"suggestion,omitempty"`
}

// Transcripts keeps one chat history per session in memory
type Transcripts struct {
	mu      sync.RWMutex
	history map[string][]Message
	service *Service
}

// NewTranscripts creates an empty transcript store
func NewTranscripts(service *Service) *Transcripts {
	return &Transcripts{
		history: make(map[string][]Message),
		service: service,
	}
}

func greeting() Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   Greeting,
		Timestamp: time.Now().UTC(),
	}
}

// Messages returns a copy of the session's transcript, starting it with the
// greeting on first access.
func (t *Transcripts) Messages(sessionID string) []Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	msgs := t.ensure(sessionID)
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// Send appends the user message, waits for the reply and appends it. Blank
// input returns ErrEmptyMessage and leaves the transcript untouched. The
// reply is dropped if the transcript was forgotten in the meantime.
func (t *Transcripts) Send(ctx context.Context, sessionID, input string) (Message, Message, error) {
	if strings.TrimSpace(input) == "" {
		return Message{}, Message{}, ErrEmptyMessage
	}

	user := Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   input,
		Timestamp: time.Now().UTC(),
	}

	t.mu.Lock()
	t.history[sessionID] = append(t.ensure(sessionID), user)
	t.mu.Unlock()

	// The lock is not held while the reply is pending.
	reply, err := t.service.Reply(ctx, input)
	if err != nil {
		return user, Message{}, err
	}

	answer := Message{
		ID:         uuid.NewString(),
		Role:       RoleAssistant,
		Content:    reply.Content,
		Timestamp:  time.Now().UTC(),
		Suggestion: reply.Suggestion,
	}

	// a transcript forgotten while the reply was pending stays forgotten
	t.mu.Lock()
	if msgs, ok := t.history[sessionID]; ok {
		t.history[sessionID] = append(msgs, answer)
	}
	t.mu.Unlock()

	return user, answer, nil
}

// Forget drops the session's transcript
func (t *Transcripts) Forget(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.history, sessionID)
}

// ensure must be called with mu held
func (t *Transcripts) ensure(sessionID string) []Message {
	msgs, ok := t.history[sessionID]
	if !ok {
		msgs = []Message{greeting()}
		t.history[sessionID] = msgs
	}
	return msgs
}
