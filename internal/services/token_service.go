package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/longkerdandy/burger-backend/internal/config"
	"github.com/longkerdandy/burger-backend/internal/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Principal is the authenticated identity extracted from a JWT.
type Principal struct {
	Username string
	Roles    []models.Role
}

// TokenService issues and parses HS256 access tokens. The username is
// the subject; the role set rides along so the authorization gate can
// run without a store lookup.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTExpiry,
	}
}

// Generate returns a signed token for the user and its expiry time.
func (s *TokenService) Generate(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	roles := make([]string, len(user.Roles))
	for i, role := range user.Roles {
		roles[i] = string(role)
	}

	claims := jwt.MapClaims{
		"sub":   user.Username,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates a token and extracts its principal.
func (s *TokenService) Parse(tokenStr string) (*Principal, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return PrincipalFromClaims(claims)
}

// PrincipalFromClaims builds a Principal from already-verified claims.
func PrincipalFromClaims(claims jwt.MapClaims) (*Principal, error) {
	username, _ := claims["sub"].(string)
	if username == "" {
		return nil, ErrInvalidToken
	}

	principal := &Principal{Username: username}
	if raw, ok := claims["roles"].([]any); ok {
		for _, r := range raw {
			if s, ok := r.(string); ok {
				principal.Roles = append(principal.Roles, models.Role(s))
			}
		}
	}
	return principal, nil
}
