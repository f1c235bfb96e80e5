// Package service implements the business logic layer.
package service

import (
	"context"
	"errors"

	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/internal/dto"
	"github.com/notefold/notes-service/pkg/app"
	"github.com/notefold/notes-service/pkg/code"
	"github.com/notefold/notes-service/pkg/util"

	"go.uber.org/zap"
)

// UserService is the credential-store surface: signup and login.
type UserService interface {
	// Register creates a new user account.
	Register(ctx context.Context, params *dto.SignupRequest) (*dto.UserCreatedDTO, error)

	// Login verifies the credentials and issues a token.
	Login(ctx context.Context, params *dto.SigninRequest) (*dto.TokenDTO, error)
}

type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

// NewUserService creates a UserService instance.
func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

// Register creates the user after an existence pre-check on the active
// username. The pre-check and the insert are not linearized: two
// concurrent signups with the same username can both pass the check.
// That window is a documented weak guarantee of the store, not something
// this layer papers over.
func (s *userService) Register(ctx context.Context, params *dto.SignupRequest) (*dto.UserCreatedDTO, error) {
	if s.config == nil || !s.config.RegisterIsEnable {
		return nil, code.ErrorForbiddenAccess
	}

	existing, err := s.userRepo.GetActiveByUsername(ctx, params.Username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, code.ErrorDBQuery
	}
	if existing != nil {
		return nil, code.ErrorUserAlreadyExists
	}

	user := &domain.User{
		Username:  params.Username,
		Password:  util.GeneratePasswordHash(params.Password, s.config.SecretSalt),
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		s.logger.Error("userService.Register create failed", zap.Error(err))
		return nil, code.ErrorDBQuery
	}

	return &dto.UserCreatedDTO{UserID: created.ID}, nil
}

// Login never tells the caller whether the username or the password was
// wrong; both paths fail with the same error. The real reason is only
// logged.
func (s *userService) Login(ctx context.Context, params *dto.SigninRequest) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetActiveByUsername(ctx, params.Username)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Info("userService.Login unknown username", zap.String("username", params.Username))
		return nil, code.ErrorIncorrectCredentials
	}
	if err != nil {
		return nil, code.ErrorDBQuery
	}

	if !util.CheckPasswordHash(user.Password, params.Password, s.config.SecretSalt) {
		s.logger.Info("userService.Login password mismatch", zap.String("username", params.Username))
		return nil, code.ErrorIncorrectCredentials
	}

	token, err := s.tokenManager.Generate(user.Username, user.Password)
	if err != nil {
		s.logger.Error("userService.Login token generate failed", zap.Error(err))
		return nil, code.ErrorServerInternal
	}

	return &dto.TokenDTO{Token: token}, nil
}
