package models

import "time"

// UserSettings stores per-user notification and display preferences. At most
// one row exists per user; reads without a row fall back to DefaultUserSettings.
type UserSettings struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"uniqueIndex" json:"user_id"`
	EmailNotifications bool      `gorm:"not null;default:true" json:"email_notifications"`
	PushNotifications  bool      `gorm:"not null;default:true" json:"push_notifications"`
	WeeklySummary      bool      `gorm:"not null;default:false" json:"weekly_summary"`
	DarkMode           bool      `gorm:"not null;default:false" json:"dark_mode"`
	DefaultCurrency    string    `gorm:"type:varchar(3);not null;default:'USD'" json:"default_currency"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DefaultUserSettings is the documented default returned when a user has no
// settings row yet. The row itself is only created on the first write.
func DefaultUserSettings(userID uint) UserSettings {
	return UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  true,
		WeeklySummary:      false,
		DarkMode:           false,
		DefaultCurrency:    "USD",
	}
}
