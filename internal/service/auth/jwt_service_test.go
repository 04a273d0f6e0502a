package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/osumare/task-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	require.NotNil(t, svc)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: "", TokenLifetimeMinutes: 60})
	assert.Error(t, err, "empty secret should be rejected")

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err, "zero lifetime should be rejected")
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute

	svc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
		return fixedTime
	})

	t.Run("generates valid token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), "alice")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "alice", claims.Subject)
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix(),
			"token should expire one lifetime after issuance")
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingUsername)
		assert.Empty(t, token)
	})

	t.Run("token ids are unique", func(t *testing.T) {
		t.Parallel()
		first, err := svc.GenerateToken(context.Background(), "alice")
		require.NoError(t, err)
		second, err := svc.GenerateToken(context.Background(), "alice")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	atFixedTime := func() time.Time { return fixedTime }

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(testSecret, tokenLifetime, atFixedTime)
				token, _ := svc.GenerateToken(context.Background(), "alice")
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "valid just before expiry",
			setupFunc: func() (JWTService, string) {
				genSvc := NewTestJWTService(testSecret, tokenLifetime, atFixedTime)
				token, _ := genSvc.GenerateToken(context.Background(), "alice")
				valSvc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime.Add(tokenLifetime - time.Second)
				})
				return valSvc, token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func() (JWTService, string) {
				genSvc := NewTestJWTService(testSecret, tokenLifetime, atFixedTime)
				token, _ := genSvc.GenerateToken(context.Background(), "alice")
				valSvc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime.Add(tokenLifetime + time.Minute)
				})
				return valSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "invalid signature",
			setupFunc: func() (JWTService, string) {
				genSvc := NewTestJWTService(testSecret, tokenLifetime, atFixedTime)
				token, _ := genSvc.GenerateToken(context.Background(), "alice")
				valSvc := NewTestJWTService(wrongSecret, tokenLifetime, atFixedTime)
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				return NewTestJWTService(testSecret, tokenLifetime, atFixedTime), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func() (JWTService, string) {
				return NewTestJWTService(testSecret, tokenLifetime, atFixedTime), ""
			},
			wantErr: ErrMissingToken,
		},
		{
			name: "unexpected signing method",
			setupFunc: func() (JWTService, string) {
				claims := jwtCustomClaims{
					Username: "alice",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
					},
				}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
				return NewTestJWTService(testSecret, tokenLifetime, atFixedTime), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			setupFunc: func() (JWTService, string) {
				claims := jwtCustomClaims{Username: "alice"}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
				return NewTestJWTService(testSecret, tokenLifetime, atFixedTime), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing username",
			setupFunc: func() (JWTService, string) {
				claims := jwtCustomClaims{
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
					},
				}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
				return NewTestJWTService(testSecret, tokenLifetime, atFixedTime), token
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc()
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "alice", claims.Username)
			}
		})
	}
}
