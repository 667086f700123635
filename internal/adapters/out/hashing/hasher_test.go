package hashing_test

import (
	"context"
	"strings"
	"testing"

	"freight/internal/adapters/out/hashing"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashers() map[string]ports.PasswordHasher {
	return map[string]ports.PasswordHasher{
		"bcrypt": hashing.NewBcryptHasher(bcrypt.MinCost),
		"argon2": hashing.NewArgon2Hasher(hashing.Argon2Params{
			Memory:      1024,
			Iterations:  1,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		}),
	}
}

func TestPasswordHashers(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()

			hash, err := h.Hash(ctx, "secret1")
			require.NoError(t, err)
			assert.NotContains(t, hash, "secret1")

			ok, err := h.Verify(ctx, "secret1", hash)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = h.Verify(ctx, "secret2", hash)
			require.NoError(t, err)
			assert.False(t, ok)

			again, err := h.Hash(ctx, "secret1")
			require.NoError(t, err)
			assert.NotEqual(t, hash, again, "salt must differ")
		})
	}
}

func TestPasswordHashers_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			_, err := h.Hash(ctx, "secret1")
			require.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestArgon2Hasher_Format(t *testing.T) {
	h := hashing.NewArgon2Hasher(hashing.Argon2Params{})

	hash, err := h.Hash(t.Context(), "secret1")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=3,p=2$"))
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	h := hashing.NewArgon2Hasher(hashing.DefaultArgon2Params)

	for _, encoded := range []string{"", "plain", "$argon2i$v=19$m=1,t=1,p=1$c2FsdA$a2V5", "$argon2id$v=1$m=1,t=1,p=1$c2FsdA$a2V5"} {
		_, err := h.Verify(t.Context(), "secret1", encoded)
		require.ErrorIs(t, err, hashing.ErrMalformedHash, encoded)
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	_, err := hashing.NewBcryptHasher(0).Verify(t.Context(), "secret1", "not-a-hash")
	require.Error(t, err)
}
