package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/subtrackr/subtrackr/app/models"
	"github.com/subtrackr/subtrackr/internal/pkg/money"
)

// newTestDB opens an in-memory sqlite database with the application schema.
// The pool is pinned to one connection so every query sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Subscription{}, &models.UserSettings{}))
	return db
}

func mustCents(t *testing.T, s string) money.Cents {
	t.Helper()
	c, err := money.Parse(s)
	require.NoError(t, err)
	return c
}

func seedSubscription(t *testing.T, repo SubscriptionRepository, userID uint, name string, amount string, nextPayment time.Time) *models.Subscription {
	t.Helper()
	sub := &models.Subscription{
		UserID:          userID,
		Name:            name,
		Amount:          mustCents(t, amount),
		Currency:        "USD",
		BillingPeriod:   "monthly",
		NextPaymentDate: nextPayment,
		ReminderDays:    3,
	}
	require.NoError(t, repo.Create(sub))
	return sub
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := NewSubscriptionRepository(newTestDB(t))
	next := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	created := seedSubscription(t, repo, 1, "Netflix", "15.99", next)
	require.NotZero(t, created.ID)
	assert.True(t, created.IsActive)

	got, err := repo.GetByID(created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Netflix", got.Name)
	assert.Equal(t, mustCents(t, "15.99"), got.Amount)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "monthly", got.BillingPeriod)
	assert.Equal(t, 3, got.ReminderDays)
	assert.True(t, got.IsActive)
}

func TestGetScopedToOwner(t *testing.T) {
	repo := NewSubscriptionRepository(newTestDB(t))
	sub := seedSubscription(t, repo, 1, "Netflix", "15.99", time.Now().UTC().Add(24*time.Hour))

	_, err := repo.GetByID(sub.ID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSoftDeleteIdempotent(t *testing.T) {
	repo := NewSubscriptionRepository(newTestDB(t))
	sub := seedSubscription(t, repo, 1, "Netflix", "15.99", time.Now().UTC().Add(24*time.Hour))

	deleted, err := repo.SoftDelete(sub.ID, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	// the second delete finds no active row
	deleted, err = repo.SoftDelete(sub.ID, 1)
	require.NoError(t, err)
	assert.False(t, deleted)

	subs, err := repo.List(1)
	require.NoError(t, err)
	assert.Empty(t, subs)

	_, err = repo.GetByID(sub.ID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSoftDeleteScopedToOwner(t *testing.T) {
	repo := NewSubscriptionRepository(newTestDB(t))
	sub := seedSubscription(t, repo, 1, "Netflix", "15.99", time.Now().UTC().Add(24*time.Hour))

	deleted, err := repo.SoftDelete(sub.ID, 2)
	require.NoError(t, err)
	assert.False(t, deleted)

	subs, err := repo.List(1)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestListOrdersByPaymentDate(t *testing.T) {
	repo := NewSubscriptionRepository(newTestDB(t))
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	seedSubscription(t, repo, 1, "third", "3.00", base.Add(72*time.Hour))
	seedSubscription(t, repo, 1, "first", "1.00", base.Add(24*time.Hour))
	seedSubscription(t, repo, 1, "second", "2.00", base.Add(48*time.Hour))
	seedSubscription(t, repo, 2, "foreign", "9.00", base)

	subs, err := repo.List(1)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "first", subs[0].Name)
	assert.Equal(t, "second", subs[1].Name)
	assert.Equal(t, "third", subs[2].Name)
}

func TestListUpcoming(t *testing.T) {
	repo := NewSubscriptionRepository(newTestDB(t))
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seedSubscription(t, repo, 1, "past", "1.00", now.Add(-24*time.Hour))
	seedSubscription(t, repo, 1, "soon", "2.00", now.Add(24*time.Hour))
	seedSubscription(t, repo, 1, "later", "3.00", now.Add(72*time.Hour))
	seedSubscription(t, repo, 1, "distant", "4.00", now.Add(240*time.Hour))

	subs, err := repo.ListUpcoming(1, 2, now)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "soon", subs[0].Name)
	assert.Equal(t, "later", subs[1].Name)
	for _, sub := range subs {
		assert.False(t, sub.NextPaymentDate.Before(now))
	}

	// fewer qualifying rows than the limit returns all of them
	subs, err = repo.ListUpcoming(1, 10, now)
	require.NoError(t, err)
	assert.Len(t, subs, 3)

	// a non-positive limit falls back to the default
	subs, err = repo.ListUpcoming(1, 0, now)
	require.NoError(t, err)
	assert.Len(t, subs, 3)
}

func TestUpdatePartial(t *testing.T) {
	repo := NewSubscriptionRepository(newTestDB(t))
	sub := seedSubscription(t, repo, 1, "Netflix", "15.99", time.Now().UTC().Add(24*time.Hour))

	updated, err := repo.Update(sub.ID, 1, map[string]interface{}{
		"amount": mustCents(t, "19.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, mustCents(t, "19.99"), updated.Amount)
	assert.Equal(t, "Netflix", updated.Name)

	got, err := repo.GetByID(sub.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, mustCents(t, "19.99"), got.Amount)
	assert.Equal(t, "monthly", got.BillingPeriod)
}

func TestUpdateScopedToOwner(t *testing.T) {
	repo := NewSubscriptionRepository(newTestDB(t))
	sub := seedSubscription(t, repo, 1, "Netflix", "15.99", time.Now().UTC().Add(24*time.Hour))

	_, err := repo.Update(sub.ID, 2, map[string]interface{}{"name": "hijacked"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetByID(sub.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Netflix", got.Name)
}

func TestUpdateWithoutChangesReturnsCurrentRow(t *testing.T) {
	repo := NewSubscriptionRepository(newTestDB(t))
	sub := seedSubscription(t, repo, 1, "Netflix", "15.99", time.Now().UTC().Add(24*time.Hour))

	got, err := repo.Update(sub.ID, 1, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, "Netflix", got.Name)
}
