package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// Hasher derives the opaque owner tag stored on every user-generated row.
// The tag is a keyed one-way transform, so a leaked database does not leak
// raw identities while exact-match ownership queries still work.
type (
	Hasher interface {
		Hash(identity string) (string, error)
	}

	hasher struct {
		secretKey []byte
	}
)

var ErrMissingSecretKey = errors.New("ENCRYPTION_SECRET_KEY is not set")

// NewHasher fails when the signing secret is absent. Callers must treat
// that as fatal, not skip hashing.
func NewHasher(secretKey string) (Hasher, error) {
	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}
	return &hasher{secretKey: []byte(secretKey)}, nil
}

// Hash returns the HMAC-SHA256 of the normalized identity as 64 hex
// characters. Equivalent identities (same after trim+lowercase) always
// collapse to the same tag.
func (h *hasher) Hash(identity string) (string, error) {
	if len(h.secretKey) == 0 {
		return "", ErrMissingSecretKey
	}
	normalized := strings.ToLower(strings.TrimSpace(identity))
	mac := hmac.New(sha256.New, h.secretKey)
	mac.Write([]byte(normalized))
	return hex.EncodeToString(mac.Sum(nil)), nil
}
