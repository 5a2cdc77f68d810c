package jwt

import (
	"testing"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("auth0|user-1")
	require.NoError(t, err)

	subject, err := svc.GetSubjectByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "auth0|user-1", subject)
}

func TestGetSubjectRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret")

	_, err := svc.GetSubjectByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetSubjectRejectsWrongKey(t *testing.T) {
	minter := NewJWTService("other-secret")
	token, err := minter.GenerateToken("auth0|user-1")
	require.NoError(t, err)

	svc := NewJWTService("test-secret")
	_, err = svc.GetSubjectByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
