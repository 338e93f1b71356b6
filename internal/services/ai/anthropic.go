package ai

import (
	"Listline/internal/config"
	"Listline/internal/services/secrets"
	"context"
	"fmt"
	"strings"
	"time"
)

type anthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	Tools     []anthropicTool    `json:"tools,omitempty"`
}

type anthropicContentBlock struct {
	Type  string         `json:"type"`
	Text  string         `json:"text,omitempty"`
	Id    string         `json:"id,omitempty"`
	Name  string         `json:"name,omitempty"`
	Input map[string]any `json:"input,omitempty"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

type anthropicProvider struct {
	transport
	config  config.AnthropicConfig
	secrets secrets.Provider
}

func NewAnthropicProvider(c config.AnthropicConfig, timeout time.Duration, secretsProvider secrets.Provider, opts ...Option) Provider {
	return &anthropicProvider{
		transport: newTransport(config.AiProviderAnthropic, timeout, opts),
		config:    c,
		secrets:   secretsProvider,
	}
}

func (p *anthropicProvider) Name() config.AiProvider {
	return config.AiProviderAnthropic
}

func (p *anthropicProvider) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	response, err := p.messages(ctx, anthropicRequest{
		Model:     p.config.Model,
		MaxTokens: p.maxTokens(request.MaxTokens),
		System:    request.System,
		Messages: []anthropicMessage{
			{Role: "user", Content: request.Prompt},
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return sb.String(), nil
}

func (p *anthropicProvider) CompleteWithTools(ctx context.Context, request ToolRequest) ([]ToolCall, error) {
	tools := make([]anthropicTool, 0, len(request.Tools))
	for _, t := range request.Tools {
		tools = append(tools, anthropicTool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}

	response, err := p.messages(ctx, anthropicRequest{
		Model:     p.config.Model,
		MaxTokens: p.maxTokens(request.MaxTokens),
		System:    request.System,
		Messages: []anthropicMessage{
			{Role: "user", Content: request.Prompt},
		},
		Tools: tools,
	})
	if err != nil {
		return nil, err
	}

	var calls []ToolCall
	for _, block := range response.Content {
		if block.Type != "tool_use" {
			continue
		}

		input := block.Input
		if input == nil {
			input = map[string]any{}
		}

		calls = append(calls, ToolCall{
			Id:    block.Id,
			Name:  block.Name,
			Input: input,
		})
	}

	return calls, nil
}

func (p *anthropicProvider) messages(ctx context.Context, request anthropicRequest) (*anthropicResponse, error) {
	apiKey, err := p.secrets.Get(ctx, secrets.AnthropicApiKey)
	if err != nil {
		return nil, fmt.Errorf("resolving anthropic api key: %w", err)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic api key is not configured")
	}

	var response anthropicResponse
	err = p.postJson(ctx, p.config.BaseUrl+"/messages", map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": p.config.Version,
	}, request, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (p *anthropicProvider) maxTokens(requested int) int {
	if requested > 0 {
		return requested
	}
	return p.config.MaxTokens
}
