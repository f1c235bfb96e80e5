package cmd

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/notefold/notes-service/global"
	internalApp "github.com/notefold/notes-service/internal/app"
	"github.com/notefold/notes-service/internal/routers"
	"github.com/notefold/notes-service/pkg/logger"
	"github.com/notefold/notes-service/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validatorV10 "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// defaultSecretKeys are placeholder secrets that must not reach
// production.
var defaultSecretKeys = []string{
	"notes-service-auth-token",
	"notes-service-secret-salt",
	"",
}

// DefaultShutdownTimeout bounds the graceful shutdown.
const DefaultShutdownTimeout = 30 * time.Second

type Server struct {
	logger     *zap.Logger
	config     *internalApp.AppConfig
	client     *mongo.Client
	ut         *ut.UniversalTranslator
	httpServer *http.Server
	app        *internalApp.App
	errChan    chan error
}

// checkSecurityConfig warns when a placeholder secret is still
// configured.
func checkSecurityConfig(cfg *internalApp.AppConfig, lg *zap.Logger) {
	insecure := make([]string, 0, 2)
	for _, key := range defaultSecretKeys {
		if cfg.Security.AuthTokenKey == key {
			insecure = append(insecure, "security.auth-token-key")
			break
		}
	}
	for _, key := range defaultSecretKeys {
		if cfg.Security.SecretSaltKey == key {
			insecure = append(insecure, "security.secret-salt-key")
			break
		}
	}

	for _, name := range insecure {
		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("SECURITY WARNING: '%s' uses a default value!\n", name)
		fmt.Println()
		fmt.Println("Generate a secure key with:")
		fmt.Println("  openssl rand -base64 32")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println()

		if lg != nil {
			lg.Warn("Using default secret key, please change it in config.yaml", zap.String("key", name))
		}
	}
}

func NewServer(runEnv *runFlags) (*Server, error) {
	appConfig, configRealpath, err := internalApp.LoadConfig(runEnv.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	runMode := runEnv.runMode
	if len(runMode) <= 0 {
		runMode = appConfig.Server.RunMode
	}
	if len(runMode) > 0 {
		gin.SetMode(runMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if len(runEnv.port) > 0 {
		appConfig.Server.HttpPort = ":" + strings.TrimPrefix(runEnv.port, ":")
	}

	s := &Server{
		config:  appConfig,
		errChan: make(chan error, 1),
	}

	if err := initLoggerWithConfig(s, appConfig); err != nil {
		return nil, fmt.Errorf("initLogger: %w", err)
	}
	global.Logger = s.logger

	checkSecurityConfig(appConfig, s.logger)

	client, err := initDatabaseWithConfig(appConfig)
	if err != nil {
		return nil, fmt.Errorf("initDatabase: %w", err)
	}
	s.client = client

	app, err := internalApp.NewApp(appConfig, s.logger, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create app container: %w", err)
	}
	s.app = app

	indexCtx, cancel := context.WithTimeout(context.Background(), appConfig.Database.ConnectTimeoutDuration())
	defer cancel()
	if err := app.Dao.EnsureNoteTextIndex(indexCtx); err != nil {
		return nil, fmt.Errorf("ensure search index: %w", err)
	}

	uni, err := initValidator()
	if err != nil {
		return nil, fmt.Errorf("initValidator: %w", err)
	}
	s.ut = uni

	s.logger.Info(fmt.Sprintf("%s v%s starting", internalApp.Name, internalApp.Version))
	s.logger.Info("config loaded", zap.String("path", configRealpath))

	s.httpServer = &http.Server{
		Addr:           appConfig.Server.HttpPort,
		Handler:        routers.NewRouter(s.app, s.ut),
		ReadTimeout:    time.Duration(appConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(appConfig.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return s, nil
}

// Start begins serving in the background. Failures surface through
// Shutdown.
func (s *Server) Start() {
	s.logger.Info("api service listening", zap.String("addr", s.httpServer.Addr))
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("api service err", zap.Error(err))
			s.errChan <- err
		}
	}()
}

// Shutdown stops the HTTP server and disconnects from storage.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	var firstErr error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		firstErr = err
	}
	if err := s.client.Disconnect(ctx); err != nil && firstErr == nil {
		firstErr = err
	}

	select {
	case err := <-s.errChan:
		if firstErr == nil {
			firstErr = err
		}
	default:
	}
	return firstErr
}

// ListenErr exposes fatal listener failures.
func (s *Server) ListenErr() <-chan error {
	return s.errChan
}

// GetApp gets the app container.
func (s *Server) GetApp() *internalApp.App {
	return s.app
}

// initLoggerWithConfig initializes the main logger.
func initLoggerWithConfig(s *Server, cfg *internalApp.AppConfig) error {
	lg, err := logger.NewLogger(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		Production: cfg.Log.Production,
	})
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	s.logger = lg
	return nil
}

// initValidator wires the custom rules into the binding engine and
// returns the translator used for validation messages.
func initValidator() (*ut.UniversalTranslator, error) {
	var uni *ut.UniversalTranslator

	validate, ok := binding.Validator.Engine().(*validatorV10.Validate)
	if ok {
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		if err := validator.RegisterCustomValidations(validate); err != nil {
			return nil, err
		}

		uni = ut.New(en.New(), en.New())
		enTran, _ := uni.GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(validate, enTran); err != nil {
			return nil, err
		}
	}

	return uni, nil
}

// initDatabaseWithConfig connects to MongoDB and verifies the
// connection with a ping.
func initDatabaseWithConfig(cfg *internalApp.AppConfig) (*mongo.Client, error) {
	clientOpts := options.Client().ApplyURI(cfg.Database.URI)

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeoutDuration())
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
