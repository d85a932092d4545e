package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret string
	TokenTTL  time.Duration
}

type AIConfig struct {
	// Primary and secondary categorization providers, tried in order.
	PrimaryProvider   string // "gemini", "openai" or "ollama"
	PrimaryModel      string
	SecondaryProvider string // empty disables the secondary
	SecondaryModel    string

	GeminiApiKey  string
	OpenAIApiKey  string
	OpenAIBaseURL string
	OllamaBaseURL string

	EmbeddingProvider string // "gemini" or "ollama"
	EmbeddingModel    string

	// Upper bound for a single provider call
	CallTimeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		},
		Ai: AIConfig{
			PrimaryProvider:   getEnv("LLM_PRIMARY_PROVIDER", "gemini"),
			PrimaryModel:      getEnv("LLM_PRIMARY_MODEL", "gemini-2.0-flash"),
			SecondaryProvider: getEnv("LLM_SECONDARY_PROVIDER", "openai"),
			SecondaryModel:    getEnv("LLM_SECONDARY_MODEL", "gpt-4o-mini"),
			GeminiApiKey:      getEnv("GEMINI_API_KEY", ""),
			OpenAIApiKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "nomic-embed-text"),
			CallTimeout:       getEnvAsDuration("AI_CALL_TIMEOUT", 60*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
