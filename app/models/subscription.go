package models

import (
	"time"

	"github.com/subtrackr/subtrackr/internal/pkg/money"
)

// Subscription is a recurring payment tracked for a single user. Rows are
// never physically deleted; "deleting" flips IsActive to false and all read
// queries filter inactive rows out.
type Subscription struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	UserID             uint        `gorm:"not null;index" json:"user_id"`
	Name               string      `gorm:"type:varchar(150);not null" json:"name"`
	Amount             money.Cents `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency           string      `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	BillingPeriod      string      `gorm:"type:varchar(16);not null;default:'monthly';index" json:"billing_period"`
	NextPaymentDate    time.Time   `gorm:"not null;index" json:"next_payment_date"`
	ReminderDays       int         `gorm:"not null;default:3" json:"reminder_days"`
	Description        string      `gorm:"type:text" json:"description"`
	EmailNotifications bool        `gorm:"not null;default:true" json:"email_notifications"`
	PushNotifications  bool        `gorm:"not null;default:true" json:"push_notifications"`
	IsActive           bool        `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt          time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
