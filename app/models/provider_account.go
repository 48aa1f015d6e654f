package models

import "time"

// ProviderAccount links one external OAuth identity to the local User mirror.
// A user may hold several provider identities, but each (provider, provider
// user id) pair occurs at most once. Tokens are kept for refresh only and are
// never serialized to clients.
type ProviderAccount struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	Provider       string     `gorm:"index:provider_uid,unique;type:varchar(50);not null" json:"provider"`
	ProviderUserID string     `gorm:"index:provider_uid,unique;type:varchar(191);not null" json:"provider_user_id"`
	AccessToken    string     `gorm:"type:text" json:"-"`
	RefreshToken   string     `gorm:"type:text" json:"-"`
	ExpiresAt      *time.Time `gorm:"type:timestamp;default:null" json:"expires_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TokenExpired reports whether the stored access token has passed its expiry.
// Providers that issue non-expiring tokens leave ExpiresAt nil.
func (p *ProviderAccount) TokenExpired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}
