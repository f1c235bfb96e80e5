package service

import (
	"context"
	"errors"
	"testing"

	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/internal/dto"
	"github.com/notefold/notes-service/pkg/app"
	"github.com/notefold/notes-service/pkg/code"
	"github.com/notefold/notes-service/pkg/util"

	"go.uber.org/zap"
)

func TestAuthServiceVerify(t *testing.T) {
	ctx := context.Background()
	repo := newMockCredentialRepo()
	cfg := &ServiceConfig{SecretSalt: "salt", RegisterIsEnable: true}
	tm := app.NewTokenManager(app.TokenConfig{SecretKey: "test-key"})

	userSvc := NewUserService(repo, tm, zap.NewNop(), cfg)
	authSvc := NewAuthService(repo, tm, zap.NewNop())

	if _, err := userSvc.Register(ctx, &dto.SignupRequest{
		Username: "a@x.com", Password: "pass1!a", FirstName: "Alice", LastName: "Smith",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	tokenDTO, err := userSvc.Login(ctx, &dto.SigninRequest{Username: "a@x.com", Password: "pass1!a"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	identity, err := authSvc.Verify(ctx, BearerSchemePrefix+tokenDTO.Token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if identity.Username != "a@x.com" {
		t.Errorf("Verify identity = %q, want a@x.com", identity.Username)
	}

	tests := []struct {
		name       string
		credential string
	}{
		{"missing credential", ""},
		{"missing scheme", tokenDTO.Token},
		{"wrong scheme", "Basic " + tokenDTO.Token},
		{"garbage token", BearerSchemePrefix + "not-a-token"},
		{"tampered token", BearerSchemePrefix + tokenDTO.Token + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authSvc.Verify(ctx, tt.credential)
			if !errors.Is(err, code.ErrorUnauthorizedAccess) {
				t.Errorf("Verify = %v, want unauthorized", err)
			}
		})
	}
}

func TestAuthServiceVerifyAfterPasswordChange(t *testing.T) {
	ctx := context.Background()
	repo := newMockCredentialRepo()
	cfg := &ServiceConfig{SecretSalt: "salt", RegisterIsEnable: true}
	tm := app.NewTokenManager(app.TokenConfig{SecretKey: "test-key"})

	userSvc := NewUserService(repo, tm, zap.NewNop(), cfg)
	authSvc := NewAuthService(repo, tm, zap.NewNop())

	if _, err := userSvc.Register(ctx, &dto.SignupRequest{
		Username: "a@x.com", Password: "pass1!a", FirstName: "Alice", LastName: "Smith",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	tokenDTO, err := userSvc.Login(ctx, &dto.SigninRequest{Username: "a@x.com", Password: "pass1!a"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// The token embeds the digest at issuance; changing the password
	// invalidates it.
	repo.users["a@x.com"].Password = util.GeneratePasswordHash("other2!b", cfg.SecretSalt)

	_, err = authSvc.Verify(ctx, BearerSchemePrefix+tokenDTO.Token)
	if !errors.Is(err, code.ErrorUnauthorizedAccess) {
		t.Errorf("Verify after password change = %v, want unauthorized", err)
	}
}

func TestAuthServiceVerifyInactiveUser(t *testing.T) {
	ctx := context.Background()
	repo := newMockCredentialRepo()
	tm := app.NewTokenManager(app.TokenConfig{SecretKey: "test-key"})
	authSvc := NewAuthService(repo, tm, zap.NewNop())

	hash := util.GeneratePasswordHash("pass1!a", "salt")
	repo.users["a@x.com"] = &domain.User{ID: "u1", Username: "a@x.com", Password: hash, IsActive: false}

	token, err := tm.Generate("a@x.com", hash)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	_, err = authSvc.Verify(ctx, BearerSchemePrefix+token)
	if !errors.Is(err, code.ErrorUnauthorizedAccess) {
		t.Errorf("Verify inactive user = %v, want unauthorized", err)
	}
}
