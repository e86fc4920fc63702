package config

import (
	"context"
	"database/sql"
	"fmt"

	"book-reader-server/internal/domain"
	"book-reader-server/internal/repository"
	"book-reader-server/internal/service"
	"book-reader-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config domain.Config
	Logger domain.Logger
	DB     *sql.DB

	UserRepository     domain.UserRepository
	DocumentRepository domain.DocumentRepository
	StorageGateway     domain.StorageGateway
	SpeechGateway      domain.SpeechGateway

	UserService     domain.UserService
	DocumentService domain.DocumentService
	SpeechService   domain.SpeechService
}

// NewContainer creates a new dependency injection container. The database
// pool and SaaS clients are initialized once here and reused by every
// request handler.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	db, err := repository.Connect(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Repositories and gateways
	userRepo := repository.NewUserRepository(db, appLogger)
	documentRepo := repository.NewDocumentRepository(db, appLogger)
	storageGateway := repository.NewStorageGateway(cfg, appLogger)
	speechGateway := repository.NewSpeechGateway(cfg, appLogger)

	// Services
	userService := service.NewUserService(userRepo, appLogger)
	documentService := service.NewDocumentService(documentRepo, storageGateway, appLogger)
	speechService := service.NewSpeechService(speechGateway, appLogger)

	return &Container{
		Config: cfg,
		Logger: appLogger,
		DB:     db,

		UserRepository:     userRepo,
		DocumentRepository: documentRepo,
		StorageGateway:     storageGateway,
		SpeechGateway:      speechGateway,

		UserService:     userService,
		DocumentService: documentService,
		SpeechService:   speechService,
	}, nil
}

// Close drains the database pool. Called on process shutdown.
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
