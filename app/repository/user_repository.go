package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/subtrackr/subtrackr/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByProviderAccount resolves an OAuth provider identity to the linked user
func (r *userRepository) GetByProviderAccount(provider, providerUserID string) (*models.User, *models.ProviderAccount, error) {
	var account models.ProviderAccount
	err := r.db.Where("provider = ? AND provider_user_id = ?", provider, providerUserID).First(&account).Error
	if err != nil {
		return nil, nil, err
	}
	var user models.User
	if err := r.db.First(&user, account.UserID).Error; err != nil {
		return nil, nil, err
	}
	return &user, &account, nil
}

// Update updates an existing user in the database
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// LinkProviderAccount attaches a new provider identity to a user
func (r *userRepository) LinkProviderAccount(account *models.ProviderAccount) error {
	return r.db.Create(account).Error
}

// UpdateProviderAccount refreshes the stored provider tokens
func (r *userRepository) UpdateProviderAccount(account *models.ProviderAccount) error {
	return r.db.Save(account).Error
}

// TouchLastLogin stamps the login timestamp without touching other columns
func (r *userRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
