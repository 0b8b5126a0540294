package auth_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/sarpa/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$v=19$")

	ok, err := hasher.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = hasher.Verify("anything", "$bcrypt$nope")
	assert.ErrorIs(t, err, auth.ErrInvalidHash)
}

func TestTokenManager(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Minute, time.Hour)
	userID, companyID := uuid.New(), uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, expiresAt, err := tm.Generate(userID, companyID, "tech@example.com")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

		claims, err := tm.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, companyID, claims.CompanyID)
		assert.Equal(t, "tech@example.com", claims.Email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := auth.NewTokenManager("other", time.Minute, time.Hour).Generate(userID, companyID, "x@example.com")
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := auth.NewTokenManager("test_secret", -time.Minute, time.Hour).Generate(userID, companyID, "x@example.com")
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Validate("not.a.token")
		assert.Error(t, err)
	})
}

func TestRefreshToken(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Minute, 24*time.Hour)

	plain, hash, expiresAt, err := tm.NewRefreshToken()
	require.NoError(t, err)

	assert.NotEmpty(t, plain)
	assert.NotEqual(t, plain, hash)
	assert.Equal(t, hash, auth.HashRefreshToken(plain))
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	other, _, _, err := tm.NewRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, plain, other)
}
