package service

import (
	"context"
	"testing"

	"calc-api/internal/model"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd")
	require.NoError(t, err)
	require.NotEqual(t, "Passw0rd", hash)

	require.NoError(t, ComparePassword(hash, "Passw0rd"))
	require.Error(t, ComparePassword(hash, "wrong"))

	// 相同明文每次產生不同 salt
	hash2, err := HashPassword("Passw0rd")
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	user := model.User{ID: 1, Username: "alice", PasswordHash: hash}

	got, err := AuthenticateUser(context.Background(), user, "Secret123!")
	require.NoError(t, err)
	require.Equal(t, 1, got.ID)

	got, err = AuthenticateUser(context.Background(), user, "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Nil(t, got)
}
