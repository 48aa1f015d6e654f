package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the local mirror of an identity-provider account. It is upserted on
// every successful authentication and never deleted by this application.
type User struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Email           string     `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,max=200"`
	FirstName       string     `gorm:"type:varchar(100)" json:"first_name" validate:"max=100"`
	LastName        string     `gorm:"type:varchar(100)" json:"last_name" validate:"max=100"`
	ProfileImageURL string     `gorm:"type:varchar(255)" json:"profile_image_url" validate:"max=255"`
	PasswordHash    string     `gorm:"type:text" json:"-"`
	LastLoginAt     *time.Time `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// HashPassword returns the bcrypt hash for a plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hashedPassword
	return nil
}

// DisplayName returns the best human-readable name available for the user.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}
