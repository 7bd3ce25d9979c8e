package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.Contains(hash, "$"))

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "S3cret"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, err := HashPassword("s3cret")
	require.NoError(t, err)
	h2, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword(h1, "s3cret"))
	assert.True(t, VerifyPassword(h2, "s3cret"))
}

func TestVerifyPassword_MalformedStored(t *testing.T) {
	assert.False(t, VerifyPassword("", "x"))
	assert.False(t, VerifyPassword("no-separator", "x"))
	assert.False(t, VerifyPassword("!!!$!!!", "x"))
	assert.False(t, VerifyPassword("YWJj$", "x"))
}

func TestVerifyPassword_RejectsWrongKeyLength(t *testing.T) {
	// a stored key that is not exactly scryptKeyLen bytes must never verify;
	// an empty key would otherwise compare equal to an empty derived key
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	saltPart, _, ok := strings.Cut(hash, "$")
	require.True(t, ok)

	assert.False(t, VerifyPassword(saltPart+"$", "s3cret"))
	assert.False(t, VerifyPassword(saltPart+"$YWJj", "s3cret"))
}
