package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("segredo", time.Hour)

	signed, err := svc.GenerateToken("admin@petshop.com", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin@petshop.com", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestValidate_WrongSecret(t *testing.T) {
	signed, err := NewService("segredo", time.Hour).GenerateToken("u", "admin")
	require.NoError(t, err)

	_, err = NewService("outro", time.Hour).ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	svc := NewService("segredo", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	signed, err := svc.GenerateToken("u", "admin")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := NewService("segredo", time.Hour).ValidateToken("nao.e.jwt")
	assert.Error(t, err)
}
