package app

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenIssuer default token issuer
const DefaultTokenIssuer = "notes-service"

// DefaultTokenExpiry tokens are valid for one day from issuance.
const DefaultTokenExpiry = 24 * time.Hour

// TokenConfig holds the token manager configuration.
type TokenConfig struct {
	SecretKey string        `yaml:"secret-key"` // JWT signing key
	Expiry    time.Duration `yaml:"expiry"`     // token validity, default 1 day
	Issuer    string        `yaml:"issuer"`     // token issuer
}

// UserClaims is the claim set embedded in issued tokens. PasswordHash is
// a snapshot of the account's password digest at issuance time: when the
// password changes, every previously issued token stops verifying without
// any revocation list.
type UserClaims struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses user credentials.
type TokenManager interface {
	Generate(username, passwordHash string) (string, error)
	Parse(token string) (*UserClaims, error)
}

type tokenManager struct {
	config TokenConfig
}

// NewTokenManager creates a TokenManager instance.
func NewTokenManager(cfg TokenConfig) TokenManager {
	if cfg.Expiry == 0 {
		cfg.Expiry = DefaultTokenExpiry
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultTokenIssuer
	}
	return &tokenManager{config: cfg}
}

// Generate issues a signed token for the user.
func (t *tokenManager) Generate(username, passwordHash string) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		Username:     username,
		PasswordHash: passwordHash,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    t.config.Issuer,
			Subject:   "user-token",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.config.SecretKey))
}

// Parse verifies signature and expiry and returns the embedded claims.
// Any malformed, forged or expired token yields one generic error; the
// caller must not distinguish the failure modes.
func (t *tokenManager) Parse(tokenStr string) (*UserClaims, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(t.config.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
