package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/subtrackr/subtrackr/app/models"
)

// DefaultUpcomingLimit caps ListUpcoming when callers pass no explicit limit.
const DefaultUpcomingLimit = 10

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) active(userID uint) *gorm.DB {
	return r.db.Where("user_id = ? AND is_active = ?", userID, true)
}

// List retrieves the user's active subscriptions ordered by next payment date
func (r *subscriptionRepository) List(userID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.active(userID).Order("next_payment_date ASC").Find(&subs).Error
	return subs, err
}

// ListUpcoming retrieves active subscriptions with a payment date at or after
// now, ascending, truncated to limit.
func (r *subscriptionRepository) ListUpcoming(userID uint, limit int, now time.Time) ([]models.Subscription, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	var subs []models.Subscription
	err := r.active(userID).
		Where("next_payment_date >= ?", now).
		Order("next_payment_date ASC").
		Limit(limit).
		Find(&subs).Error
	return subs, err
}

// GetByID retrieves an active subscription owned by the user
func (r *subscriptionRepository) GetByID(id, userID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.active(userID).Where("id = ?", id).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create inserts a new subscription; the ID and timestamps are server-assigned
func (r *subscriptionRepository) Create(sub *models.Subscription) error {
	sub.IsActive = true
	return r.db.Create(sub).Error
}

// Update applies a partial column update to an active owned row and returns
// the updated record. A missing or foreign-owned row yields
// gorm.ErrRecordNotFound, never a distinct ownership error.
func (r *subscriptionRepository) Update(id, userID uint, changes map[string]interface{}) (*models.Subscription, error) {
	sub, err := r.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return sub, nil
	}
	if err := r.db.Model(sub).Updates(changes).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// SoftDelete marks the subscription inactive and reports whether a row was
// affected. A second call on the same row reports false.
func (r *subscriptionRepository) SoftDelete(id, userID uint) (bool, error) {
	res := r.db.Model(&models.Subscription{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
