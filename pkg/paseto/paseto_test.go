package paseto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-management-backend/models"
)

const testSecret = "eHh4eHh4eHh4eHh4eHh4eHh4eHh4eHh4eHh4eHh4eHg="

func TestGenerateAndValidateToken(t *testing.T) {
	maker, err := NewMaker(testSecret)
	require.NoError(t, err)

	user := models.User{ID: 7, Email: "a@x.com", Role: "employee"}
	token, err := maker.GenerateToken(user, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	maker, err := NewMaker(testSecret)
	require.NoError(t, err)

	token, err := maker.GenerateToken(models.User{ID: 1}, -time.Minute)
	require.NoError(t, err)

	_, err = maker.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	maker, err := NewMaker(testSecret)
	require.NoError(t, err)

	_, err = maker.ValidateToken("v2.local.not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewMakerRejectsBadSecrets(t *testing.T) {
	_, err := NewMaker("!!!not-base64!!!")
	assert.Error(t, err)

	_, err = NewMaker("c2hvcnQ=")
	assert.Error(t, err, "decoded secret shorter than 32 bytes")
}
