package provider

import (
	"context"
	"errors"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/config"
	ollama_provider "github.com/DataAlgoDev/Qbit-AI-Enterprise-App/provider/ollama"
)

// Client represents different inference backends
type Client string

const (
	Ollama Client = "ollama"
	OpenAI Client = "openai"
)

// Provider is the interface all inference backends must satisfy. Generate is
// synchronous; callers bound it with a context deadline and treat any error
// (transport, non-200, timeout) as a signal to take their fallback path.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Available(ctx context.Context) bool
	Model() string
}

// New creates an inference provider from configuration
func New(client Client, cfg config.OllamaConfig) (Provider, error) {
	switch client {
	case Ollama:
		return ollama_provider.NewClient(cfg.BaseURL, cfg.Model, cfg.Temperature), nil
	case OpenAI:
		return nil, errors.New("openai client not implemented yet")
	default:
		return nil, errors.New("unsupported inference provider")
	}
}
