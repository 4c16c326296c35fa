package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	signed, err := GenerateJWT(42, "hoopsfan23", testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ValidateJWT(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "hoopsfan23", claims.Username)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(42, "hoopsfan23", testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	signed, err := GenerateJWT(42, "hoopsfan23", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, testSecret)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateJWTEmptyInputs(t *testing.T) {
	_, err := ValidateJWT("", testSecret)
	assert.Error(t, err)

	_, err = ValidateJWT("sometoken", "")
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-jwt-at-all", testSecret)
	assert.Error(t, err)
}
