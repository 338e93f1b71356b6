package secrets

import (
	"Listline/internal/config"
	"context"
	"fmt"

	vault "github.com/hashicorp/vault/api"
)

type Key string

const (
	AnthropicApiKey   Key = "anthropic_api_key"
	OpenAiApiKey      Key = "openai_api_key"
	NounProjectKey    Key = "nounproject_api_key"
	NounProjectSecret Key = "nounproject_api_secret"
)

// Provider resolves credentials of external services. An unset key yields an empty string.
//
//go:generate mockgen -destination=./mocks/provider.go -package=mocks Listline/internal/services/secrets Provider
type Provider interface {
	Get(ctx context.Context, key Key) (string, error)
}

func NewProvider(c config.Config) (Provider, error) {
	switch c.Secrets.Mode {
	case config.SecretsModeConfig:
		return NewConfigProvider(c), nil

	case config.SecretsModeVault:
		return NewVaultProvider(c.Secrets.Vault)

	default:
		return nil, fmt.Errorf("unsupported secrets mode: %s", c.Secrets.Mode)
	}
}

type configProvider struct {
	values map[Key]string
}

func NewConfigProvider(c config.Config) Provider {
	return &configProvider{
		values: map[Key]string{
			AnthropicApiKey:   c.Ai.Anthropic.ApiKey,
			OpenAiApiKey:      c.Ai.OpenAi.ApiKey,
			NounProjectKey:    c.Icons.NounProject.ApiKey,
			NounProjectSecret: c.Icons.NounProject.ApiSecret,
		},
	}
}

func (p *configProvider) Get(_ context.Context, key Key) (string, error) {
	return p.values[key], nil
}

type vaultProvider struct {
	kv   *vault.KVv2
	path string
}

func NewVaultProvider(c config.VaultConfig) (Provider, error) {
	vaultConfig := vault.DefaultConfig()
	vaultConfig.Address = c.Address

	client, err := vault.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("creating vault client: %w", err)
	}
	client.SetToken(c.Token)

	return &vaultProvider{
		kv:   client.KVv2(c.Mount),
		path: c.Path,
	}, nil
}

func (p *vaultProvider) Get(ctx context.Context, key Key) (string, error) {
	secret, err := p.kv.Get(ctx, p.path)
	if err != nil {
		return "", fmt.Errorf("reading vault secret %s: %w", p.path, err)
	}

	raw, ok := secret.Data[string(key)]
	if !ok || raw == nil {
		return "", nil
	}

	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s/%s is not a string", p.path, key)
	}

	return value, nil
}
