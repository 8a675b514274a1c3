package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("u1", "teacher@example.com", "Asha", "Verma", []string{"teacher"})
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "teacher@example.com", claims.Email)
	assert.Equal(t, []string{"teacher"}, claims.Roles)
	assert.Equal(t, "tuition-plus-connect", claims.Issuer)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	claims := JWTClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "tuition-plus-connect",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
