package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedevweb/services-co/internal/auth"
	"github.com/mohamedevweb/services-co/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate(42, model.RoleOrg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, model.RoleOrg, claims.Role)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("other-secret", time.Hour)

	token, err := tm.Generate(1, model.RoleUser)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate(1, model.RoleUser)
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	_, err := tm.Validate("not.a.token")
	assert.Error(t, err)
}

func TestTokenCarriesPromotedRole(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	before, err := tm.Generate(7, model.RoleUser)
	require.NoError(t, err)
	after, err := tm.Generate(7, model.RolePresta)
	require.NoError(t, err)

	beforeClaims, err := tm.Validate(before)
	require.NoError(t, err)
	afterClaims, err := tm.Validate(after)
	require.NoError(t, err)

	assert.Equal(t, model.RoleUser, beforeClaims.Role)
	assert.Equal(t, model.RolePresta, afterClaims.Role)
	assert.Equal(t, beforeClaims.UserID, afterClaims.UserID)
}
