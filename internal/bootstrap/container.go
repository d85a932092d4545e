package bootstrap

import (
	"fmt"
	"log"

	"personal-crm-be/internal/config"
	"personal-crm-be/internal/controller"
	"personal-crm-be/internal/pkg/logger"
	"personal-crm-be/internal/pkg/serverutils"
	"personal-crm-be/internal/repository/memory"
	"personal-crm-be/internal/repository/unitofwork"
	"personal-crm-be/internal/service"
	"personal-crm-be/pkg/embedding"
	"personal-crm-be/pkg/extraction"
	"personal-crm-be/pkg/llm/factory"
	"personal-crm-be/pkg/vectorstore"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Container struct {
	Logger *zap.Logger

	AuthController    controller.IAuthController
	ContactController controller.IContactController
	NoteController    controller.INoteController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.New(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Embedding Provider
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	vectorStore := vectorstore.NewPgVectorStore(db, embeddingProvider, sysLogger)

	// 3. Extraction chain: primary provider, optional secondary, heuristic last
	var categorizers []extraction.Categorizer
	primary, err := newCategorizer(cfg, cfg.Ai.PrimaryProvider, cfg.Ai.PrimaryModel, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize primary LLM provider: %v", err)
	}
	categorizers = append(categorizers, primary)
	log.Printf("[INFO] Using Primary LLM Provider: %s (%s)", cfg.Ai.PrimaryProvider, cfg.Ai.PrimaryModel)

	if cfg.Ai.SecondaryProvider != "" {
		secondary, err := newCategorizer(cfg, cfg.Ai.SecondaryProvider, cfg.Ai.SecondaryModel, sysLogger)
		if err != nil {
			log.Printf("[WARN] Secondary LLM provider disabled: %v", err)
		} else {
			categorizers = append(categorizers, secondary)
			log.Printf("[INFO] Using Secondary LLM Provider: %s (%s)", cfg.Ai.SecondaryProvider, cfg.Ai.SecondaryModel)
		}
	}

	extractor := extraction.NewService(sysLogger, categorizers...)

	// 4. Auth session storage
	sessionRepo := memory.NewSessionRepository(cfg.Auth.TokenTTL)
	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret, sessionRepo)

	// 5. Services
	authService := service.NewAuthService(uowFactory, sessionRepo, cfg.Auth)
	contactService := service.NewContactService(uowFactory, vectorStore, sysLogger)
	noteService := service.NewNoteService(uowFactory, extractor, vectorStore, sysLogger)

	// 6. Controllers
	return &Container{
		Logger:            sysLogger,
		AuthController:    controller.NewAuthController(authService, jwtMiddleware),
		ContactController: controller.NewContactController(contactService, jwtMiddleware),
		NoteController:    controller.NewNoteController(noteService, jwtMiddleware),
	}
}

func newCategorizer(cfg *config.Config, providerType, modelName string, logger *zap.Logger) (extraction.Categorizer, error) {
	apiKey, baseURL, err := providerCredentials(cfg, providerType)
	if err != nil {
		return nil, err
	}
	provider, err := factory.NewLLMProvider(providerType, modelName, apiKey, baseURL)
	if err != nil {
		return nil, err
	}
	return extraction.NewLLMCategorizer(providerType, provider, cfg.Ai.CallTimeout, logger), nil
}

func providerCredentials(cfg *config.Config, providerType string) (apiKey, baseURL string, err error) {
	switch providerType {
	case "gemini":
		if cfg.Ai.GeminiApiKey == "" {
			return "", "", fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return cfg.Ai.GeminiApiKey, "", nil
	case "openai":
		if cfg.Ai.OpenAIApiKey == "" {
			return "", "", fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return cfg.Ai.OpenAIApiKey, cfg.Ai.OpenAIBaseURL, nil
	case "ollama":
		return "", cfg.Ai.OllamaBaseURL, nil
	default:
		return "", "", fmt.Errorf("unsupported llm provider: %s", providerType)
	}
}
