package secrets

import (
	"Listline/internal/config"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SecretsSuite struct {
	suite.Suite
}

func TestSecretsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SecretsSuite))
}

func (s *SecretsSuite) TestConfigProviderReadsConfiguredKeys() {
	// arrange
	c := config.Config{}
	c.Secrets.Mode = config.SecretsModeConfig
	c.Ai.Anthropic.ApiKey = "sk-ant"
	c.Icons.NounProject.ApiSecret = "noun-secret"

	provider, err := NewProvider(c)
	s.Require().NoError(err)

	// act
	anthropicKey, err := provider.Get(s.T().Context(), AnthropicApiKey)
	s.Require().NoError(err)
	openAiKey, err := provider.Get(s.T().Context(), OpenAiApiKey)
	s.Require().NoError(err)
	nounSecret, err := provider.Get(s.T().Context(), NounProjectSecret)
	s.Require().NoError(err)

	// assert
	s.Equal("sk-ant", anthropicKey)
	s.Empty(openAiKey)
	s.Equal("noun-secret", nounSecret)
}

func (s *SecretsSuite) TestUnknownModeFails() {
	// arrange
	c := config.Config{}
	c.Secrets.Mode = "keychain"

	// act
	_, err := NewProvider(c)

	// assert
	s.Error(err)
}
