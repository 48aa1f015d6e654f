package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/subtrackr/subtrackr/app/models"
)

// userSettingsRepository implements the UserSettingsRepository interface
type userSettingsRepository struct {
	db *gorm.DB
}

// NewUserSettingsRepository creates a new user settings repository instance
func NewUserSettingsRepository(db *gorm.DB) UserSettingsRepository {
	return &userSettingsRepository{db: db}
}

// GetOrDefault returns the user's settings row, or the documented defaults
// when none exists. Reading never creates the row.
func (r *userSettingsRepository) GetOrDefault(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := models.DefaultUserSettings(userID)
			return &defaults, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert creates or partially updates the settings row keyed on user_id.
// Calling it again with the same changes is a no-op.
func (r *userSettingsRepository) Upsert(userID uint, changes map[string]interface{}) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultUserSettings(userID)
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if len(changes) == 0 {
		return &settings, nil
	}
	if err := r.db.Model(&settings).Updates(changes).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
