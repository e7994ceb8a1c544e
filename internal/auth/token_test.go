package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "42", claims.Subject)
}

func TestParseRejeitaTokenAdulterado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateAccessToken(42)
	require.NoError(t, err)

	adulterado := token[:len(token)-2] + "xx"
	_, err = ParseAndValidate(adulterado)
	require.Error(t, err)
}

func TestParseRejeitaSegredoDiferente(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-a")
	token, err := GenerateAccessToken(7)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "segredo-b")
	_, err = ParseAndValidate(token)
	require.Error(t, err)
}
