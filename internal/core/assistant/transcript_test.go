package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptStartsWithGreeting(t *testing.T) {
	tr := NewTranscripts(NewService(0))

	msgs := tr.Messages("s1")
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleAssistant, msgs[0].Role)
	assert.Equal(t, Greeting, msgs[0].Content)
}

func TestTranscriptSend(t *testing.T) {
	tr := NewTranscripts(NewService(0))

	user, answer, err := tr.Send(context.Background(), "s1", "I want a water bottle")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, user.Role)
	assert.Equal(t, RoleAssistant, answer.Role)
	require.NotNil(t, answer.Suggestion)
	assert.Equal(t, 500, answer.Suggestion.Capacity)

	msgs := tr.Messages("s1")
	require.Len(t, msgs, 3)
	assert.Equal(t, "I want a water bottle", msgs[1].Content)

	// other sessions are unaffected
	assert.Len(t, tr.Messages("s2"), 1)
}

func TestTranscriptIgnoresBlankInput(t *testing.T) {
	tr := NewTranscripts(NewService(0))

	_, _, err := tr.Send(context.Background(), "s1", "  ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, tr.Messages("s1"), 1)
}

func TestTranscriptForget(t *testing.T) {
	tr := NewTranscripts(NewService(0))

	_, _, err := tr.Send(context.Background(), "s1", "cup")
	require.NoError(t, err)
	tr.Forget("s1")

	assert.Len(t, tr.Messages("s1"), 1)
}

func TestTranscriptForgetDuringPendingReply(t *testing.T) {
	tr := NewTranscripts(NewService(100 * time.Millisecond))

	done := make(chan error, 1)
	go func() {
		_, _, err := tr.Send(context.Background(), "s1", "I want a water bottle")
		done <- err
	}()

	require.Eventually(t, func() bool {
		tr.mu.Lock()
		defer tr.mu.Unlock()
		return len(tr.history["s1"]) == 2
	}, time.Second, 5*time.Millisecond)
	tr.Forget("s1")

	require.NoError(t, <-done)

	tr.mu.Lock()
	_, present := tr.history["s1"]
	tr.mu.Unlock()
	assert.False(t, present, "forgotten transcript must not be recreated by the late reply")
}
