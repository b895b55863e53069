package assistant

import (
	"context"
	"fmt"
)

// Provider produces assistant replies. Swappable so a model-backed provider
// can replace the scripted one without touching callers.
type Provider interface {
	Respond(ctx context.Context, input string) (Reply, error)
	GetProviderName() string
}

// ProviderType for the factory
type ProviderType string

const (
	ProviderScripted ProviderType = "scripted"
)

// NewProvider creates a provider by type
func NewProvider(t ProviderType) (Provider, error) {
	switch t {
	case ProviderScripted, "":
		return ScriptedProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s", t)
	}
}

// ScriptedProvider answers with the keyword-matched canned replies
type ScriptedProvider struct{}

func (ScriptedProvider) Respond(ctx context.Context, input string) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}
	return Respond(input), nil
}

func (ScriptedProvider) GetProviderName() string {
	return string(ProviderScripted)
}
