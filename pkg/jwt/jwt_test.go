package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "segredo-de-teste"

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate(secret, "u-1", "cliente", "portal-b2b", 30)
	require.NoError(t, err)

	claims, err := Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "cliente", claims.Role)
	assert.Equal(t, "portal-b2b", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now(), claims.IssuedAtTime(), 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAtTime(), 5*time.Second)
}

func TestParse_Rejeita(t *testing.T) {
	tok, err := Generate(secret, "u-1", "admin", "portal-b2b", 30)
	require.NoError(t, err)

	t.Run("secret errado", func(t *testing.T) {
		_, err := Parse("outro", tok)
		assert.Error(t, err)
	})
	t.Run("expirado", func(t *testing.T) {
		old, err := Generate(secret, "u-1", "admin", "portal-b2b", -1)
		require.NoError(t, err)
		_, err = Parse(secret, old)
		assert.Error(t, err)
	})
	t.Run("lixo", func(t *testing.T) {
		_, err := Parse(secret, "abc.def.ghi")
		assert.Error(t, err)
	})
	t.Run("secret vazio", func(t *testing.T) {
		_, err := Generate("", "u-1", "admin", "x", 1)
		assert.Error(t, err)
		_, err = Parse("", tok)
		assert.Error(t, err)
	})
}

func TestClaims_TemposAusentes(t *testing.T) {
	var c Claims
	assert.True(t, c.IssuedAtTime().IsZero())
	assert.True(t, c.ExpiresAtTime().IsZero())
}
