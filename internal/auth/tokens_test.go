package auth

import (
	"testing"
	"time"

	"ats-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager("  ", nil, time.Hour)
	assert.ErrorIs(t, err, ErrNoSigningKey)
}

func TestTokenManager_IssueVerifyRoundTrip(t *testing.T) {
	m, err := NewTokenManager("current", nil, 0)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := m.Issue(userID, models.RoleRecruiter)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, models.RoleRecruiter, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.WithinDuration(t, claims.IssuedAt.Time.Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestTokenManager_Verify(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	signer, err := NewTokenManager("current", nil, DefaultTokenTTL)
	require.NoError(t, err)
	signer.now = func() time.Time { return issuedAt }
	good, err := signer.Issue(uuid.New(), models.RoleStudent)
	require.NoError(t, err)

	oldSigner, err := NewTokenManager("retired", nil, DefaultTokenTTL)
	require.NoError(t, err)
	oldSigner.now = signer.now
	rotated, err := oldSigner.Issue(uuid.New(), models.RoleAdmin)
	require.NoError(t, err)

	foreign, err := NewTokenManager("someone-else", nil, DefaultTokenTTL)
	require.NoError(t, err)
	foreign.now = signer.now
	forged, err := foreign.Issue(uuid.New(), models.RoleAdmin)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.New(), Role: models.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		at      time.Time
		prev    []string
		wantErr error
	}{
		{name: "valid", token: good, at: issuedAt.Add(time.Hour)},
		{name: "last second of validity", token: good, at: issuedAt.Add(DefaultTokenTTL - time.Second)},
		{name: "expired", token: good, at: issuedAt.Add(DefaultTokenTTL + time.Second), wantErr: ErrTokenExpired},
		{name: "missing", token: "", at: issuedAt, wantErr: ErrTokenMissing},
		{name: "garbage", token: "not.a.jwt", at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "wrong key", token: forged, at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "alg none", token: noneAlg, at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "retired key rejected without rotation", token: rotated, at: issuedAt, wantErr: ErrTokenInvalid},
		{name: "retired key accepted during rotation", token: rotated, at: issuedAt, prev: []string{"retired"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewTokenManager("current", tt.prev, DefaultTokenTTL)
			require.NoError(t, err)
			m.now = func() time.Time { return tt.at }

			claims, err := m.Verify(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, claims)
		})
	}
}
