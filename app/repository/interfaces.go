package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/subtrackr/subtrackr/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByProviderAccount(provider, providerUserID string) (*models.User, *models.ProviderAccount, error)
	Update(user *models.User) error
	LinkProviderAccount(account *models.ProviderAccount) error
	UpdateProviderAccount(account *models.ProviderAccount) error
	TouchLastLogin(id uint, at time.Time) error
}

// SubscriptionRepository defines the interface for subscription operations.
// Every operation is scoped to the owning user; rows owned by someone else are
// indistinguishable from rows that do not exist.
type SubscriptionRepository interface {
	List(userID uint) ([]models.Subscription, error)
	ListUpcoming(userID uint, limit int, now time.Time) ([]models.Subscription, error)
	GetByID(id, userID uint) (*models.Subscription, error)
	Create(sub *models.Subscription) error
	Update(id, userID uint, changes map[string]interface{}) (*models.Subscription, error)
	SoftDelete(id, userID uint) (bool, error)
}

// UserSettingsRepository defines the interface for per-user settings rows.
type UserSettingsRepository interface {
	GetOrDefault(userID uint) (*models.UserSettings, error)
	Upsert(userID uint, changes map[string]interface{}) (*models.UserSettings, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Subscription SubscriptionRepository
	Settings     UserSettingsRepository
}

// NewRepositories creates a new instance of all repositories. The bundle is
// constructed once at startup and handed to the controllers; there is no
// global factory.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Settings:     NewUserSettingsRepository(db),
	}
}
