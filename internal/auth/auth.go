// Package auth gates the API behind the single shared team password. When no
// password hash is configured the API runs open, which is how local
// development works.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ilcoutreach/outreach-api/internal/config"
	"github.com/ilcoutreach/outreach-api/internal/response"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 12 * time.Hour

const tokenSubject = "outreach-team"

var (
	// ErrInvalidPassword is returned when the login password does not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidToken is returned when a presented token fails verification.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Manager issues and verifies the shared-team session tokens.
type Manager struct {
	secret       []byte
	passwordHash string
}

// NewManager builds a Manager from the configured secret and password hash.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		secret:       []byte(cfg.Auth.Secret),
		passwordHash: cfg.Auth.PasswordHash,
	}
}

// Enabled reports whether a password hash is configured at all.
func (m *Manager) Enabled() bool {
	return m.passwordHash != ""
}

// Login checks the shared password and issues a signed token.
func (m *Manager) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses and validates a token string.
func (m *Manager) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != tokenSubject {
		return ErrInvalidToken
	}
	return nil
}

// Middleware rejects requests that lack a valid bearer token. It is a
// pass-through when auth is not configured.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			response.UnauthorizedError(c, "missing bearer token")
			c.Abort()
			return
		}

		if err := m.Verify(tokenString); err != nil {
			response.UnauthorizedError(c, err.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
