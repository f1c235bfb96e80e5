package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/pkg/app"
	"github.com/notefold/notes-service/pkg/code"

	"go.uber.org/zap"
)

// BearerSchemePrefix is the expected credential scheme.
const BearerSchemePrefix = "Bearer "

// AuthService verifies bearer credentials into an identity.
type AuthService interface {
	// Verify resolves the raw Authorization value into the authenticated
	// user. Every failure surfaces as the same unauthorized error; the
	// concrete reason is only logged.
	Verify(ctx context.Context, rawCredential string) (*domain.User, error)
}

type authService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
}

// NewAuthService creates an AuthService instance.
func NewAuthService(userRepo domain.UserRepository, tokenManager app.TokenManager, logger *zap.Logger) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

func (s *authService) Verify(ctx context.Context, rawCredential string) (*domain.User, error) {
	if rawCredential == "" {
		s.logger.Info("authService.Verify missing credential")
		return nil, code.ErrorUnauthorizedAccess
	}

	token, found := strings.CutPrefix(rawCredential, BearerSchemePrefix)
	if !found || token == "" {
		s.logger.Info("authService.Verify malformed credential scheme")
		return nil, code.ErrorUnauthorizedAccess
	}

	claims, err := s.tokenManager.Parse(token)
	if err != nil {
		s.logger.Info("authService.Verify token parse failed", zap.Error(err))
		return nil, code.ErrorUnauthorizedAccess
	}

	user, err := s.userRepo.GetActiveByUsername(ctx, claims.Username)
	if err != nil {
		s.logger.Info("authService.Verify user lookup failed",
			zap.String("username", claims.Username), zap.Error(err))
		return nil, code.ErrorUnauthorizedAccess
	}

	// The token embeds the password digest at issuance time. A changed
	// password therefore invalidates every earlier token without any
	// revocation list.
	if subtle.ConstantTimeCompare([]byte(claims.PasswordHash), []byte(user.Password)) != 1 {
		s.logger.Info("authService.Verify stale password snapshot",
			zap.String("username", claims.Username))
		return nil, code.ErrorUnauthorizedAccess
	}

	return user, nil
}
