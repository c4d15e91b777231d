package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cinedaily/cinedaily/internal/database/sqlc"
)

// TokenExpiry is the session token lifetime.
const TokenExpiry = 24 * time.Hour

const jwtSecretSettingKey = "session_jwt_secret"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// Claims are the session token claims.
type Claims struct {
	ProviderID string `json:"providerId"`
	Username   string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and validates session tokens.
type Service struct {
	queries   *sqlc.Queries
	jwtSecret []byte
}

// NewService creates a new auth service. An empty jwtSecret is loaded from
// the settings table, generated and persisted on first use.
func NewService(queries *sqlc.Queries, jwtSecret string) (*Service, error) {
	secret := []byte(jwtSecret)

	if len(secret) == 0 {
		var err error
		secret, err = loadOrGenerateSecret(queries)
		if err != nil {
			return nil, err
		}
	}

	return &Service{
		queries:   queries,
		jwtSecret: secret,
	}, nil
}

func loadOrGenerateSecret(queries *sqlc.Queries) ([]byte, error) {
	ctx := context.Background()
	setting, err := queries.GetSetting(ctx, jwtSecretSettingKey)

	switch {
	case err == nil && setting.Value != "":
		secret, decErr := hex.DecodeString(setting.Value)
		if decErr != nil {
			return nil, fmt.Errorf("failed to decode stored JWT secret: %w", decErr)
		}
		return secret, nil

	case errors.Is(err, sql.ErrNoRows) || (err == nil && setting.Value == ""):
		return generateAndPersistSecret(queries)

	default:
		return nil, fmt.Errorf("failed to load JWT secret from database: %w", err)
	}
}

func generateAndPersistSecret(queries *sqlc.Queries) ([]byte, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	_, err := queries.SetSetting(context.Background(), sqlc.SetSettingParams{
		Key:   jwtSecretSettingKey,
		Value: hex.EncodeToString(secret),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist JWT secret: %w", err)
	}
	return secret, nil
}

// GenerateToken issues a session token for an authenticated principal.
func (s *Service) GenerateToken(principal Principal) (string, error) {
	username, _ := principal.Attribute("login")

	claims := &Claims{
		ProviderID: principal.ID(),
		Username:   username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses and validates a session token.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
