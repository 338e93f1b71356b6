package jsonTypes

// AiSettingsKey is the app settings key holding AiSettings.
const AiSettingsKey = "ai_provider"

// AiSettings is the value stored under AiSettingsKey.
type AiSettings struct {
	Provider     string `json:"provider"`
	SystemPrompt string `json:"systemPrompt"`
}
