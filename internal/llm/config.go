// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers without touching callers.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGroq is the Groq OpenAI-compatible provider
	ProviderGroq Provider = "groq"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	// BaseURL overrides the provider endpoint. Empty means the
	// provider's default endpoint.
	BaseURL string
	// Temperature applies to content generation. Summaries want a low
	// value for consistent output.
	Temperature float32
	// MaxTokens caps the completion length where the provider supports it.
	MaxTokens int
}

// DefaultConfig returns the default configuration (currently Groq)
func DefaultConfig() *Config {
	return DefaultGroqConfig()
}

// DefaultGroqConfig returns the default Groq configuration
func DefaultGroqConfig() *Config {
	return &Config{
		Provider:    ProviderGroq,
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.3,
		MaxTokens:   800,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.3,
	}
}
