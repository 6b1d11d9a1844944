package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw1", hash)
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("pw1")
	require.NoError(t, err)
	h2, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "pw1"))
	assert.False(t, CheckPassword(hash, "pw2"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("", "pw1"))
}
