package ai

import (
	"Listline/internal/config"
	"context"
	"fmt"
)

type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
}

type ToolCall struct {
	Id    string
	Name  string
	Input map[string]any
}

type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

type ToolRequest struct {
	System    string
	Prompt    string
	Tools     []Tool
	MaxTokens int
}

//go:generate mockgen -destination=./mocks/provider.go -package=mocks Listline/internal/services/ai Provider
type Provider interface {
	Name() config.AiProvider
	Complete(ctx context.Context, request CompletionRequest) (string, error)
	CompleteWithTools(ctx context.Context, request ToolRequest) ([]ToolCall, error)
}

//go:generate mockgen -destination=./mocks/registry.go -package=mocks Listline/internal/services/ai Registry
type Registry interface {
	Get(name config.AiProvider) (Provider, error)
}

type registry struct {
	providers map[config.AiProvider]Provider
}

func NewRegistry(providers ...Provider) Registry {
	r := &registry{
		providers: make(map[config.AiProvider]Provider, len(providers)),
	}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

func (r *registry) Get(name config.AiProvider) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("ai provider %s is not registered", name)
	}
	return p, nil
}
