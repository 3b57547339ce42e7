package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ats-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the validity window of an issued token.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrNoSigningKey = errors.New("no signing key configured")
)

// Claims is the payload of an access token.
type Claims struct {
	UserID uuid.UUID   `json:"userId"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues HS256 tokens with the current key and verifies them
// against the current key and any previous keys still in rotation.
type TokenManager struct {
	signingKey []byte
	verifyKeys [][]byte
	ttl        time.Duration

	now func() time.Time
}

// NewTokenManager creates a TokenManager. An empty current secret is an error.
func NewTokenManager(secret string, previous []string, ttl time.Duration) (*TokenManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNoSigningKey
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	keys := [][]byte{[]byte(secret)}
	for _, p := range previous {
		if p = strings.TrimSpace(p); p != "" && p != secret {
			keys = append(keys, []byte(p))
		}
	}
	return &TokenManager{
		signingKey: []byte(secret),
		verifyKeys: keys,
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

// Issue creates a signed token carrying userID and role.
func (m *TokenManager) Issue(userID uuid.UUID, role models.Role) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Expired tokens yield ErrTokenExpired, every other failure ErrTokenInvalid.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrTokenMissing
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	expired := false
	for _, key := range m.verifyKeys {
		var claims Claims
		token, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err == nil && token.Valid {
			if claims.UserID == uuid.Nil {
				return nil, ErrTokenInvalid
			}
			if _, ok := models.ParseRole(string(claims.Role)); !ok {
				return nil, ErrTokenInvalid
			}
			return &claims, nil
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			// Only a key with a valid signature gets as far as the expiry check.
			expired = true
		}
	}
	if expired {
		return nil, ErrTokenExpired
	}
	return nil, ErrTokenInvalid
}
