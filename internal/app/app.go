package app

import (
	"fmt"

	"github.com/notefold/notes-service/internal/dao"
	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/internal/service"
	pkgapp "github.com/notefold/notes-service/pkg/app"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

// App is the application container. Every component receives its
// collaborators here instead of reaching for process globals, so each
// one can be replaced by a test double.
type App struct {
	config *AppConfig
	logger *zap.Logger
	client *mongo.Client
	Dao    *dao.Dao

	// Repository layer
	UserRepo domain.UserRepository
	NoteRepo domain.NoteRepository

	// Service layer
	UserService service.UserService
	NoteService service.NoteService
	AuthService service.AuthService

	// Infrastructure
	TokenManager pkgapp.TokenManager
}

// NewApp wires the container from its injected infrastructure.
func NewApp(cfg *AppConfig, logger *zap.Logger, client *mongo.Client) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if client == nil {
		return nil, fmt.Errorf("mongo client is required")
	}

	a := &App{
		config: cfg,
		logger: logger,
		client: client,
	}

	a.Dao = dao.New(client, cfg.Database.Name, logger)
	a.UserRepo = dao.NewUserRepository(a.Dao)
	a.NoteRepo = dao.NewNoteRepository(a.Dao)

	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Expiry:    cfg.Security.TokenExpiryDuration(),
	})

	svcConfig := &service.ServiceConfig{
		SecretSalt:       cfg.Security.SecretSaltKey,
		RegisterIsEnable: cfg.User.RegisterIsEnable,
	}

	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)
	a.AuthService = service.NewAuthService(a.UserRepo, a.TokenManager, logger)
	a.NoteService = service.NewNoteService(a.NoteRepo, a.UserRepo, a.Dao, logger)

	return a, nil
}

func (a *App) Config() *AppConfig {
	return a.config
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}
