package ai

import (
	"Listline/internal/config"
	"Listline/internal/logging"
	"Listline/internal/services/secrets"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type openAiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAiFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type openAiTool struct {
	Type     string         `json:"type"`
	Function openAiFunction `json:"function"`
}

type openAiRequest struct {
	Model      string          `json:"model"`
	MaxTokens  int             `json:"max_tokens"`
	Messages   []openAiMessage `json:"messages"`
	Tools      []openAiTool    `json:"tools,omitempty"`
	ToolChoice string          `json:"tool_choice,omitempty"`
}

type openAiToolCall struct {
	Id       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type openAiResponse struct {
	Choices []struct {
		Message struct {
			Content   string           `json:"content"`
			ToolCalls []openAiToolCall `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

type openAiProvider struct {
	transport
	config  config.OpenAiConfig
	secrets secrets.Provider
}

func NewOpenAiProvider(c config.OpenAiConfig, timeout time.Duration, secretsProvider secrets.Provider, opts ...Option) Provider {
	return &openAiProvider{
		transport: newTransport(config.AiProviderOpenAi, timeout, opts),
		config:    c,
		secrets:   secretsProvider,
	}
}

func (p *openAiProvider) Name() config.AiProvider {
	return config.AiProviderOpenAi
}

func (p *openAiProvider) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	response, err := p.chat(ctx, openAiRequest{
		Model:     p.config.Model,
		MaxTokens: p.maxTokens(request.MaxTokens),
		Messages:  p.buildMessages(request.System, request.Prompt),
	})
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", nil
	}

	return response.Choices[0].Message.Content, nil
}

func (p *openAiProvider) CompleteWithTools(ctx context.Context, request ToolRequest) ([]ToolCall, error) {
	tools := make([]openAiTool, 0, len(request.Tools))
	for _, t := range request.Tools {
		tools = append(tools, openAiTool{
			Type: "function",
			Function: openAiFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		})
	}

	response, err := p.chat(ctx, openAiRequest{
		Model:      p.config.Model,
		MaxTokens:  p.maxTokens(request.MaxTokens),
		Messages:   p.buildMessages(request.System, request.Prompt),
		Tools:      tools,
		ToolChoice: "auto",
	})
	if err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 {
		return nil, nil
	}

	var calls []ToolCall
	for _, tc := range response.Choices[0].Message.ToolCalls {
		if tc.Type != "function" {
			continue
		}

		input := map[string]any{}
		err := json.Unmarshal([]byte(tc.Function.Arguments), &input)
		if err != nil {
			logging.Logger.Warnw("skipping malformed tool call", "tool", tc.Function.Name, "error", err)
			continue
		}

		calls = append(calls, ToolCall{
			Id:    tc.Id,
			Name:  tc.Function.Name,
			Input: input,
		})
	}

	return calls, nil
}

func (p *openAiProvider) buildMessages(system string, prompt string) []openAiMessage {
	var result []openAiMessage
	if system != "" {
		result = append(result, openAiMessage{Role: "system", Content: system})
	}
	return append(result, openAiMessage{Role: "user", Content: prompt})
}

func (p *openAiProvider) chat(ctx context.Context, request openAiRequest) (*openAiResponse, error) {
	apiKey, err := p.secrets.Get(ctx, secrets.OpenAiApiKey)
	if err != nil {
		return nil, fmt.Errorf("resolving openai api key: %w", err)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is not configured")
	}

	var response openAiResponse
	err = p.postJson(ctx, p.config.BaseUrl+"/chat/completions", map[string]string{
		"Authorization": "Bearer " + apiKey,
	}, request, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (p *openAiProvider) maxTokens(requested int) int {
	if requested > 0 {
		return requested
	}
	return p.config.MaxTokens
}
