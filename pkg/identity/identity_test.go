package identity

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasherRequiresSecret(t *testing.T) {
	_, err := NewHasher("")
	require.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestHashNormalizesIdentity(t *testing.T) {
	h, err := NewHasher("test-secret")
	require.NoError(t, err)

	a, err := h.Hash("  Alice@Example.COM ")
	require.NoError(t, err)
	b, err := h.Hash("alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHashIsSixtyFourHexChars(t *testing.T) {
	h, err := NewHasher("test-secret")
	require.NoError(t, err)

	hexPattern := regexp.MustCompile(`^[0-9a-f]{64}$`)
	for _, identity := range []string{"alice@example.com", "", "  ", "auth0|12345"} {
		tag, err := h.Hash(identity)
		require.NoError(t, err)
		assert.Regexp(t, hexPattern, tag)
	}
}

func TestHashDistinctIdentitiesDiffer(t *testing.T) {
	h, err := NewHasher("test-secret")
	require.NoError(t, err)

	a, err := h.Hash("alice@example.com")
	require.NoError(t, err)
	b, err := h.Hash("bob@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashIsKeyed(t *testing.T) {
	h1, err := NewHasher("secret-one")
	require.NoError(t, err)
	h2, err := NewHasher("secret-two")
	require.NoError(t, err)

	a, err := h1.Hash("alice@example.com")
	require.NoError(t, err)
	b, err := h2.Hash("alice@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashIsDeterministic(t *testing.T) {
	h, err := NewHasher("test-secret")
	require.NoError(t, err)

	first, err := h.Hash("alice@example.com")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := h.Hash("alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
