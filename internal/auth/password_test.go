package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)

	assert.NoError(t, ComparePassword(hashed, "hunter22"))
	assert.Error(t, ComparePassword(hashed, "wrong"))
}
