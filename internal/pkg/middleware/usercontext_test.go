package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFromSession(t *testing.T) {
	ctx, ok := identityFromSession(uint(7), "jane@example.com")
	require.True(t, ok)
	assert.Equal(t, uint(7), ctx.UserID)
	assert.Equal(t, "jane@example.com", ctx.Email)
	assert.True(t, ctx.IsLoggedIn)
}

func TestIdentityFromSessionStaleValues(t *testing.T) {
	tests := []struct {
		name   string
		userID interface{}
	}{
		{"nil", nil},
		{"string id", "7"},
		{"int id", 7},
		{"float id", 7.0},
		{"zero id", uint(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, ok := identityFromSession(tt.userID, "jane@example.com")
			assert.False(t, ok)
			assert.False(t, ctx.IsLoggedIn)
			assert.Zero(t, ctx.UserID)
		})
	}
}

func TestIdentityFromSessionMissingEmail(t *testing.T) {
	ctx, ok := identityFromSession(uint(3), nil)
	require.True(t, ok)
	assert.Equal(t, "", ctx.Email)
}
