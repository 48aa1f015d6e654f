// Package validation holds the request schemas for all write endpoints. The
// schemas are deliberately independent of the persistence layer: controllers
// validate incoming payloads here and only then map them onto models.
package validation

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/subtrackr/subtrackr/internal/pkg/billing"
	"github.com/subtrackr/subtrackr/internal/pkg/money"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// amount: parses as a non-negative fixed-point decimal with 2-digit scale
	v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		c, err := money.Parse(fl.Field().String())
		return err == nil && c >= 0
	})

	// billingperiod: one of the enumerated period values
	v.RegisterValidation("billingperiod", func(fl validator.FieldLevel) bool {
		return billing.IsValidPeriod(fl.Field().String())
	})

	// paymentdate: parses as RFC 3339 or a plain calendar date
	v.RegisterValidation("paymentdate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// ParseDate accepts the payment date formats clients send: RFC 3339 or a
// plain "YYYY-MM-DD".
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// SubscriptionCreate is the payload for POST /api/subscriptions.
type SubscriptionCreate struct {
	Name               string  `json:"name" validate:"required,min=1,max=150"`
	Amount             string  `json:"amount" validate:"required,amount"`
	Currency           *string `json:"currency" validate:"omitempty,len=3,alpha"`
	BillingPeriod      string  `json:"billing_period" validate:"required,billingperiod"`
	NextPaymentDate    string  `json:"next_payment_date" validate:"required,paymentdate"`
	ReminderDays       *int    `json:"reminder_days" validate:"omitempty,gte=0,lte=365"`
	Description        *string `json:"description" validate:"omitempty,max=2000"`
	EmailNotifications *bool   `json:"email_notifications"`
	PushNotifications  *bool   `json:"push_notifications"`
}

// SubscriptionUpdate is the partial payload for PUT /api/subscriptions/:id.
// Only non-nil fields are applied.
type SubscriptionUpdate struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=150"`
	Amount             *string `json:"amount" validate:"omitempty,amount"`
	Currency           *string `json:"currency" validate:"omitempty,len=3,alpha"`
	BillingPeriod      *string `json:"billing_period" validate:"omitempty,billingperiod"`
	NextPaymentDate    *string `json:"next_payment_date" validate:"omitempty,paymentdate"`
	ReminderDays       *int    `json:"reminder_days" validate:"omitempty,gte=0,lte=365"`
	Description        *string `json:"description" validate:"omitempty,max=2000"`
	EmailNotifications *bool   `json:"email_notifications"`
	PushNotifications  *bool   `json:"push_notifications"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u SubscriptionUpdate) IsEmpty() bool {
	return u.Name == nil && u.Amount == nil && u.Currency == nil &&
		u.BillingPeriod == nil && u.NextPaymentDate == nil && u.ReminderDays == nil &&
		u.Description == nil && u.EmailNotifications == nil && u.PushNotifications == nil
}

// SettingsUpdate is the partial payload for PUT /api/settings.
type SettingsUpdate struct {
	EmailNotifications *bool   `json:"email_notifications"`
	PushNotifications  *bool   `json:"push_notifications"`
	WeeklySummary      *bool   `json:"weekly_summary"`
	DarkMode           *bool   `json:"dark_mode"`
	DefaultCurrency    *string `json:"default_currency" validate:"omitempty,len=3,alpha"`
}

// Register is the payload for POST /api/auth/register.
type Register struct {
	Email     string `json:"email" validate:"required,email,max=200"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// Login is the payload for POST /api/auth/login.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Check validates a payload against its schema tags.
func Check(payload interface{}) error {
	return validate.Struct(payload)
}

// Describe flattens a validation error into per-field messages suitable for a
// 400 response body. Non-validator errors map to a single "payload" entry.
func Describe(err error) map[string]string {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["payload"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		fields[fe.Field()] = describeTag(fe)
	}
	return fields
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "amount":
		return "must be a non-negative amount with at most two decimal places"
	case "billingperiod":
		return "must be one of: monthly, yearly, weekly, quarterly, custom"
	case "paymentdate":
		return "must be an RFC 3339 timestamp or YYYY-MM-DD date"
	case "email":
		return "must be a valid email address"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "len":
		return "has the wrong length"
	case "gte":
		return "is below the allowed minimum"
	case "lte":
		return "is above the allowed maximum"
	case "alpha":
		return "must contain letters only"
	default:
		return "is invalid"
	}
}
