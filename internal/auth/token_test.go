package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-kit/complaint-service/internal/auth"
	"github.com/campus-kit/complaint-service/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	account := &domain.Account{ID: "acct-1", Role: domain.RoleAdmin}

	token, tokenID, expiresAt, err := tm.GenerateToken(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, tokenID, claims.ID)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	token, _, _, err := issuer.GenerateToken(&domain.Account{ID: "acct-1", Role: domain.RoleStudent})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Nanosecond)

	token, _, _, err := tm.GenerateToken(&domain.Account{ID: "acct-1", Role: domain.RoleStudent})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}
