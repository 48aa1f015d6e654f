package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSetAndCheckPassword(t *testing.T) {
	u := &User{Email: "jane@example.com"}

	require.NoError(t, u.SetPassword("correct horse battery"))
	require.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "correct horse battery", u.PasswordHash)

	assert.True(t, u.CheckPassword("correct horse battery"))
	assert.False(t, u.CheckPassword("wrong password"))
	assert.False(t, u.CheckPassword(""))
}

func TestCheckPasswordHashRejectsGarbageHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

func TestUserDisplayName(t *testing.T) {
	u := &User{Email: "jane@example.com"}
	assert.Equal(t, "jane@example.com", u.DisplayName())

	u.FirstName = "Jane"
	assert.Equal(t, "Jane", u.DisplayName())

	u.LastName = "Doe"
	assert.Equal(t, "Jane Doe", u.DisplayName())
}
