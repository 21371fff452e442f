package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashVerify(t *testing.T) {
	t.Parallel()

	hasher := NewBcrypt(bcrypt.MinCost)

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	require.NotEqual(t, "secret-password", hash)

	assert.True(t, hasher.Verify("secret-password", hash))
	assert.False(t, hasher.Verify("wrong-password", hash))
	assert.False(t, hasher.Verify("secret-password", "not-a-hash"))
}

func TestBcrypt_HashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := NewBcrypt(bcrypt.MinCost)

	first, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	second, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcrypt_CostFallback(t *testing.T) {
	t.Parallel()

	hasher := NewBcrypt(-1)

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
