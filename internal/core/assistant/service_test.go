package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{}

func (failingProvider) Respond(ctx context.Context, input string) (Reply, error) {
	return Reply{}, errors.New("provider down")
}

func (failingProvider) GetProviderName() string { return "failing" }

func TestServiceReply(t *testing.T) {
	svc := NewService(0)

	reply, err := svc.Reply(context.Background(), "coffee")
	require.NoError(t, err)
	assert.Contains(t, reply.Content, "reusable coffee cup")
	assert.Equal(t, "scripted", svc.GetProviderName())
}

func TestServiceReplyRejectsBlank(t *testing.T) {
	svc := NewService(0)

	_, err := svc.Reply(context.Background(), "   \n")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestServiceReplyHonoursCancellation(t *testing.T) {
	svc := NewService(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.Reply(ctx, "bottle")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestServiceReplyWaitsForDelay(t *testing.T) {
	svc := NewService(20 * time.Millisecond)

	start := time.Now()
	_, err := svc.Reply(context.Background(), "bottle")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestServiceProviderError(t *testing.T) {
	svc := NewServiceWithProvider(failingProvider{}, 0)

	_, err := svc.Reply(context.Background(), "bottle")
	assert.EqualError(t, err, "provider down")
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(ProviderScripted)
	require.NoError(t, err)
	assert.Equal(t, "scripted", p.GetProviderName())

	_, err = NewProvider("gpt")
	assert.Error(t, err)
}
