package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRedirect(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"empty", "", "/"},
		{"local path", "/subscriptions", "/subscriptions"},
		{"local path with query", "/subscriptions?limit=5", "/subscriptions?limit=5"},
		{"absolute url", "https://evil.example/phish", "/"},
		{"protocol relative", "//evil.example/phish", "/"},
		{"bare word", "subscriptions", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeRedirect(tt.target))
		})
	}
}
