package auth_test

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/dom/game-save-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestArgon2idHasher_RoundTrip(t *testing.T) {
	hasher := auth.NewArgon2idHasher()

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "secret123"},
		{name: "empty password", password: ""},
		{name: "unicode password", password: "pässwörd-日本語"},
		{name: "very long password", password: strings.Repeat("x", 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

			assert.True(t, hasher.Verify(tt.password, hash))
			assert.False(t, hasher.Verify(tt.password+"x", hash))
		})
	}
}

func TestArgon2idHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := auth.NewArgon2idHasher()

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secret123", first))
	assert.True(t, hasher.Verify("secret123", second))
}

func TestArgon2idHasher_TruncationEquivalence(t *testing.T) {
	hasher := auth.NewArgon2idHasher()

	// Two passwords that agree on their first 256 bytes verify against
	// each other's hash; the tail contributes nothing.
	prefix := strings.Repeat("a", 256)
	first := prefix + "ignored-tail"
	second := prefix + "different-tail"

	hash, err := hasher.Hash(first)
	require.NoError(t, err)

	assert.True(t, hasher.Verify(second, hash))
	assert.True(t, hasher.Verify(prefix, hash))

	// A difference inside the first 256 bytes still matters.
	assert.False(t, hasher.Verify("b"+prefix[1:], hash))
}

func TestArgon2idHasher_MalformedHashes(t *testing.T) {
	hasher := auth.NewArgon2idHasher()

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "garbage", hash: "not-a-hash"},
		{name: "wrong algorithm", hash: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "missing sections", hash: "$argon2id$v=19$m=65536,t=1,p=4"},
		{name: "bad parameters", hash: "$argon2id$v=19$m=abc,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{name: "bad key encoding", hash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("anypassword", tt.hash))
		})
	}
}

func TestArgon2idHasher_VerifyOlderParameters(t *testing.T) {
	hasher := auth.NewArgon2idHasher()

	// A hash produced with a weaker parameter set keeps verifying; the
	// parameters travel inside the PHC string.
	salt := []byte("0123456789abcdef")
	key := argon2.IDKey([]byte("secret123"), salt, 2, 32*1024, 2, 32)
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		32*1024,
		2,
		2,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	assert.True(t, hasher.Verify("secret123", encoded))
	assert.False(t, hasher.Verify("wrongpassword", encoded))
	assert.True(t, hasher.NeedsRehash(encoded))
}

func TestArgon2idHasher_NeedsRehash(t *testing.T) {
	hasher := auth.NewArgon2idHasher()

	fresh, err := hasher.Hash("secret123")
	require.NoError(t, err)

	tests := []struct {
		name string
		hash string
		want bool
	}{
		{name: "current parameters", hash: fresh, want: false},
		{name: "stale parameters", hash: "$argon2id$v=19$m=32768,t=2,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA", want: true},
		{name: "bcrypt hash", hash: "$2a$10$N9qo8uLOickgx2ZMRZoMye", want: true},
		{name: "garbage", hash: "not-a-hash", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.NeedsRehash(tt.hash))
		})
	}
}
