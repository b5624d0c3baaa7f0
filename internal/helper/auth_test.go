package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuth_TokenRoundTrip(t *testing.T) {
	auth := SetupAuth("secret")

	token, err := auth.GenerateToken(42, "a@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.InDelta(t, float64(time.Now().Add(TokenTTL).Unix()), claims.Expiry, 5)
}

func TestAuth_VerifyToken_BearerPrefix(t *testing.T) {
	auth := SetupAuth("secret")

	token, err := auth.GenerateToken(1, "a@x.com")
	assert.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestAuth_VerifyToken_WrongSecret(t *testing.T) {
	token, err := SetupAuth("secret").GenerateToken(1, "a@x.com")
	assert.NoError(t, err)

	_, err = SetupAuth("other-secret").VerifyToken(token)
	assert.Error(t, err)
}

func TestAuth_VerifyToken_Tampered(t *testing.T) {
	auth := SetupAuth("secret")

	token, err := auth.GenerateToken(1, "a@x.com")
	assert.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[1] = strings.Repeat("A", len(parts[1]))
	_, err = auth.VerifyToken(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestAuth_VerifyToken_Missing(t *testing.T) {
	_, err := SetupAuth("secret").VerifyToken("   ")
	assert.Error(t, err)
}

func TestAuth_GenerateToken_NoSecret(t *testing.T) {
	_, err := SetupAuth("").GenerateToken(1, "a@x.com")
	assert.Error(t, err)
}

func TestAuth_GenerateToken_MissingInputs(t *testing.T) {
	auth := SetupAuth("secret")

	_, err := auth.GenerateToken(0, "a@x.com")
	assert.Error(t, err)

	_, err = auth.GenerateToken(1, "")
	assert.Error(t, err)
}

func TestAuth_PasswordHashing(t *testing.T) {
	auth := SetupAuth("secret")

	hash, err := auth.HashPassword("pw1pw1")
	assert.NoError(t, err)
	assert.NotEqual(t, "pw1pw1", hash)

	assert.NoError(t, auth.VerifyPassword("pw1pw1", hash))
	assert.Error(t, auth.VerifyPassword("wrongpw", hash))

	// same password hashes differently each time (salted)
	hash2, err := auth.HashPassword("pw1pw1")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}
