package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultUserSettings(t *testing.T) {
	s := DefaultUserSettings(42)

	assert.Equal(t, uint(42), s.UserID)
	assert.True(t, s.EmailNotifications)
	assert.True(t, s.PushNotifications)
	assert.False(t, s.WeeklySummary)
	assert.False(t, s.DarkMode)
	assert.Equal(t, "USD", s.DefaultCurrency)
	assert.Zero(t, s.ID)
}
