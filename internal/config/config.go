package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the lifetime of access tokens in minutes.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// RefreshTokenLifetimeMinutes is the lifetime of refresh tokens in minutes.
	// Must exceed the access token lifetime to be useful.
	RefreshTokenLifetimeMinutes int `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`

	// BcryptCost is the cost factor for password hashing. Zero means
	// bcrypt.DefaultCost.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"omitempty,gte=4,lte=31"`
}

// Recognized LLM provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// LLMConfig contains all generative-model integration settings.
type LLMConfig struct {
	// Provider selects the completion backend: "gemini" or "openai".
	Provider string `mapstructure:"provider" validate:"required,oneof=gemini openai"`

	// GeminiAPIKey authenticates calls to the Gemini API.
	// Required when Provider is "gemini".
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`

	// OpenAIAPIKey authenticates calls to the OpenAI API.
	// Required when Provider is "openai".
	OpenAIAPIKey string `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`

	// ModelName is the model identifier passed to the provider
	// (e.g. "gemini-2.5-flash" or "gpt-4o-mini").
	ModelName string `mapstructure:"model_name" validate:"required"`

	// MaxOutputTokens caps the length of a single completion.
	MaxOutputTokens int `mapstructure:"max_output_tokens" validate:"required,gt=0"`

	// Temperature controls sampling randomness (0 = deterministic).
	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`
}
