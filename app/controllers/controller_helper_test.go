package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/subtrackr/subtrackr/app/models"
	"github.com/subtrackr/subtrackr/internal/pkg/duedate"
	"github.com/subtrackr/subtrackr/internal/pkg/money"
	"github.com/subtrackr/subtrackr/internal/pkg/validation"
)

func TestNewSubscriptionResponse(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sub := models.Subscription{
		ID:              7,
		Name:            "Netflix",
		NextPaymentDate: now.Add(5 * 24 * time.Hour),
	}

	resp := newSubscriptionResponse(sub, now)

	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, 5, resp.DaysUntilDue)
	assert.Equal(t, "Due in 5 days", resp.Label)
	assert.Equal(t, duedate.GroupDueThisWeek, resp.Group)
}

func TestNewSubscriptionListResponseEmpty(t *testing.T) {
	out := newSubscriptionListResponse(nil, time.Now())

	// must serialize as [] rather than null
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}

func TestSubscriptionChanges(t *testing.T) {
	name := "Spotify"
	amount := "9.99"
	date := "2026-04-01"
	push := false

	changes := subscriptionChanges(validation.SubscriptionUpdate{
		Name:              &name,
		Amount:            &amount,
		NextPaymentDate:   &date,
		PushNotifications: &push,
	})

	assert.Len(t, changes, 4)
	assert.Equal(t, "Spotify", changes["name"])
	assert.Equal(t, money.Cents(999), changes["amount"])
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), changes["next_payment_date"])
	assert.Equal(t, false, changes["push_notifications"])
	assert.NotContains(t, changes, "currency")
	assert.NotContains(t, changes, "billing_period")
}

func TestSubscriptionChangesEmptyPayload(t *testing.T) {
	changes := subscriptionChanges(validation.SubscriptionUpdate{})
	assert.Empty(t, changes)
}
