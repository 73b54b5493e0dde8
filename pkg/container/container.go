package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"parking-backend/internal/config"
	"parking-backend/internal/domains/chatbot"
	chatHandler "parking-backend/internal/domains/chatbot/handler"
	visitorHandler "parking-backend/internal/domains/visitor/handler"
	visitorRepo "parking-backend/internal/domains/visitor/repository"
	visitorService "parking-backend/internal/domains/visitor/service"
	infraCache "parking-backend/internal/infrastructure/cache"
	"parking-backend/internal/infrastructure/database"
	"parking-backend/internal/infrastructure/llm"
	"parking-backend/pkg/cache"
)

// Container holds every dependency of the application and is the root of
// the dependency graph. Everything in it is a singleton: repositories,
// services and handlers are stateless, the pool and cache are shared.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache
	LLM    llm.Generator

	// Data access
	VisitorRepo visitorRepo.RepositoryInterface

	// Business logic
	VisitorService visitorService.ServiceInterface
	ChatService    *chatbot.Service

	// HTTP
	VisitorHandler *visitorHandler.VisitorHandler
	ChatHandler    *chatHandler.ChatHandler

	redis *infraCache.RedisCache
}

// NewContainer initializes the whole dependency graph in order:
// config → infrastructure → repositories → services → handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// PostgreSQL
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis
	c.redis = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.redis.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = c.redis

	// Generative backend. Missing credential is not an error: the
	// assistant falls back to its unavailable message.
	c.LLM = llm.NewClient(cfg.LLM)
	if !c.LLM.Available() {
		log.Warn().Msg("No LLM credential configured, assistant runs in degraded mode")
	}

	// Repositories
	c.VisitorRepo = visitorRepo.NewPostgresRepository(c.DB.Pool, c.Cache)

	// Services
	c.VisitorService = visitorService.NewVisitorService(c.VisitorRepo, cfg.Parking)
	dispatcher := chatbot.NewDispatcher(c.VisitorService, cfg.Parking)
	c.ChatService = chatbot.NewService(dispatcher, c.LLM)

	// Handlers
	c.VisitorHandler = visitorHandler.NewVisitorHandler(c.VisitorService)
	c.ChatHandler = chatHandler.NewChatHandler(c.ChatService)

	log.Info().Msg("DI container initialized")
	return c, nil
}

// Cleanup releases shared resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
