package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrEmptyMessage is returned for blank user input; nothing is recorded
var ErrEmptyMessage = errors.New("message is empty")

// Service wraps a provider with the artificial "thinking" delay the chat UI expects
type Service struct {
	provider Provider
	delay    time.Duration
}

// NewService creates a service backed by the scripted provider
func NewService(delay time.Duration) *Service {
	return &Service{provider: ScriptedProvider{}, delay: delay}
}

// NewServiceWithProvider creates service with custom provider (for testing)
func NewServiceWithProvider(provider Provider, delay time.Duration) *Service {
	return &Service{provider: provider, delay: delay}
}

// Reply waits out the configured delay and then asks the provider. The wait
// ends early with ctx.Err() when the caller goes away.
func (s *Service) Reply(ctx context.Context, input string) (Reply, error) {
	if strings.TrimSpace(input) == "" {
		return Reply{}, ErrEmptyMessage
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Reply{}, ctx.Err()
		case <-timer.C:
		}
	}

	reply, err := s.provider.Respond(ctx, input)
	if err != nil {
		return Reply{}, err
	}

	log.Debug().
		Str("provider", s.provider.GetProviderName()).
		Bool("suggestion", reply.Suggestion != nil).
		Msg("assistant replied")
	return reply, nil
}

// GetProviderName returns current provider name
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
