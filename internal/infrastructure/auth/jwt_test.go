package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/shopadmin/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough-0000",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "shopadmin-test",
		MaxRefreshCount:        3,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_AccessTokenIsNotARefreshToken(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(uuid.New(), "admin")
	assert.NoError(t, err)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_TamperedTokenRejected(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(uuid.New(), "admin")
	assert.NoError(t, err)

	tampered := pair.AccessToken + "x"
	_, err = svc.ValidateAccessToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough-0000",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "shopadmin-test",
		MaxRefreshCount:        3,
	})

	pair, err := svc.GenerateTokenPair(uuid.New(), "admin")
	assert.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RefreshIncrementsCount(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(uuid.New(), "admin")
	assert.NoError(t, err)

	refreshed, err := svc.RefreshTokenPair(pair.RefreshToken)
	assert.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(refreshed.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.RefreshCount)
}

func TestJWTService_RefreshCountCapped(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(uuid.New(), "admin")
	assert.NoError(t, err)

	current := pair.RefreshToken
	for i := 0; i < 3; i++ {
		refreshed, err := svc.RefreshTokenPair(current)
		assert.NoError(t, err)
		current = refreshed.RefreshToken
	}

	_, err = svc.RefreshTokenPair(current)
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestInMemoryTokenBlacklist_JTI(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
	assert.NoError(t, err)
	assert.False(t, blacklisted)

	assert.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Hour))

	blacklisted, err = bl.IsBlacklisted(ctx, "jti-1")
	assert.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestInMemoryTokenBlacklist_ExpiredEntryIgnored(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	assert.NoError(t, bl.AddToBlacklist(ctx, "jti-1", -time.Minute))

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
	assert.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestInMemoryTokenBlacklist_UserInvalidation(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()
	userID := uuid.New().String()

	issuedBefore := time.Now().Add(-time.Minute)
	assert.NoError(t, bl.AddUserTokensToBlacklist(ctx, userID, time.Hour))

	invalid, err := bl.IsUserTokenInvalidated(ctx, userID, issuedBefore)
	assert.NoError(t, err)
	assert.True(t, invalid)

	invalid, err = bl.IsUserTokenInvalidated(ctx, userID, time.Now().Add(time.Minute))
	assert.NoError(t, err)
	assert.False(t, invalid)
}
