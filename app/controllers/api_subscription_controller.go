package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/subtrackr/subtrackr/app/models"
	"github.com/subtrackr/subtrackr/app/repository"
	"github.com/subtrackr/subtrackr/internal/pkg/export"
	"github.com/subtrackr/subtrackr/internal/pkg/money"
	"github.com/subtrackr/subtrackr/internal/pkg/statistics"
	"github.com/subtrackr/subtrackr/internal/pkg/usercontext"
	"github.com/subtrackr/subtrackr/internal/pkg/validation"
)

// SubscriptionController serves the /api/subscriptions endpoints.
type SubscriptionController struct {
	subs     repository.SubscriptionRepository
	exporter *export.Client // nil when S3 export is disabled
	now      func() time.Time
}

// NewSubscriptionController creates a new subscription controller instance
func NewSubscriptionController(subs repository.SubscriptionRepository, exporter *export.Client) *SubscriptionController {
	return &SubscriptionController{subs: subs, exporter: exporter, now: time.Now}
}

// HandleList returns the user's active subscriptions ordered by payment date
func (ctrl *SubscriptionController) HandleList(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	subs, err := ctrl.subs.List(userID)
	if err != nil {
		return respondStoreError(c, "list subscriptions", err)
	}
	return c.JSON(newSubscriptionListResponse(subs, ctrl.now()))
}

// HandleUpcoming returns at most ?limit=N active subscriptions due at or
// after now, soonest first.
func (ctrl *SubscriptionController) HandleUpcoming(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	limit := repository.DefaultUpcomingLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	now := ctrl.now()
	subs, err := ctrl.subs.ListUpcoming(userID, limit, now)
	if err != nil {
		return respondStoreError(c, "list upcoming subscriptions", err)
	}
	return c.JSON(newSubscriptionListResponse(subs, now))
}

// HandleGet returns one active subscription owned by the caller
func (ctrl *SubscriptionController) HandleGet(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	sub, err := ctrl.subs.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondNotFound(c, "Subscription not found")
		}
		return respondStoreError(c, "get subscription", err)
	}
	return c.JSON(newSubscriptionResponse(*sub, ctrl.now()))
}

// HandleCreate validates the payload and inserts a new subscription
func (ctrl *SubscriptionController) HandleCreate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var payload validation.SubscriptionCreate
	if err := c.BodyParser(&payload); err != nil {
		return respondBadPayload(c)
	}
	if err := validation.Check(payload); err != nil {
		return respondValidationError(c, err)
	}

	// Parse errors are impossible here; the schema already checked both.
	amount, _ := money.Parse(payload.Amount)
	nextPayment, _ := validation.ParseDate(payload.NextPaymentDate)

	sub := models.Subscription{
		UserID:             userID,
		Name:               payload.Name,
		Amount:             amount,
		Currency:           "USD",
		BillingPeriod:      payload.BillingPeriod,
		NextPaymentDate:    nextPayment,
		ReminderDays:       3,
		EmailNotifications: true,
		PushNotifications:  true,
	}
	if payload.Currency != nil {
		sub.Currency = *payload.Currency
	}
	if payload.ReminderDays != nil {
		sub.ReminderDays = *payload.ReminderDays
	}
	if payload.Description != nil {
		sub.Description = *payload.Description
	}
	if payload.EmailNotifications != nil {
		sub.EmailNotifications = *payload.EmailNotifications
	}
	if payload.PushNotifications != nil {
		sub.PushNotifications = *payload.PushNotifications
	}

	if err := ctrl.subs.Create(&sub); err != nil {
		return respondStoreError(c, "create subscription", err)
	}
	statistics.Invalidate(userID)

	return c.Status(fiber.StatusCreated).JSON(newSubscriptionResponse(sub, ctrl.now()))
}

// HandleUpdate applies a partial update to an active owned subscription
func (ctrl *SubscriptionController) HandleUpdate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var payload validation.SubscriptionUpdate
	if err := c.BodyParser(&payload); err != nil {
		return respondBadPayload(c)
	}
	if err := validation.Check(payload); err != nil {
		return respondValidationError(c, err)
	}

	// An update without fields is a no-op; return the current row.
	if payload.IsEmpty() {
		sub, err := ctrl.subs.GetByID(id, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return respondNotFound(c, "Subscription not found")
			}
			return respondStoreError(c, "update subscription", err)
		}
		return c.JSON(newSubscriptionResponse(*sub, ctrl.now()))
	}

	sub, err := ctrl.subs.Update(id, userID, subscriptionChanges(payload))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondNotFound(c, "Subscription not found")
		}
		return respondStoreError(c, "update subscription", err)
	}
	statistics.Invalidate(userID)

	return c.JSON(newSubscriptionResponse(*sub, ctrl.now()))
}

// HandleDelete soft-deletes a subscription; a repeated delete is a 404
func (ctrl *SubscriptionController) HandleDelete(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	deleted, err := ctrl.subs.SoftDelete(id, userID)
	if err != nil {
		return respondStoreError(c, "delete subscription", err)
	}
	if !deleted {
		return respondNotFound(c, "Subscription not found")
	}
	statistics.Invalidate(userID)

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleExport streams the active set as CSV and mirrors it to S3 when
// configured. The upload is best effort and never fails the download.
func (ctrl *SubscriptionController) HandleExport(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	subs, err := ctrl.subs.List(userID)
	if err != nil {
		return respondStoreError(c, "export subscriptions", err)
	}
	data, err := export.SubscriptionsCSV(subs)
	if err != nil {
		return respondStoreError(c, "export subscriptions", err)
	}

	if ctrl.exporter != nil {
		if _, err := ctrl.exporter.UploadCSV(c.Context(), userID, data); err != nil {
			log.Errorf("s3 export upload failed for user %d: %v", userID, err)
		}
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="subscriptions.csv"`)
	return c.Send(data)
}

// subscriptionChanges maps the validated partial payload onto column updates.
func subscriptionChanges(payload validation.SubscriptionUpdate) map[string]interface{} {
	changes := map[string]interface{}{}
	if payload.Name != nil {
		changes["name"] = *payload.Name
	}
	if payload.Amount != nil {
		amount, _ := money.Parse(*payload.Amount)
		changes["amount"] = amount
	}
	if payload.Currency != nil {
		changes["currency"] = *payload.Currency
	}
	if payload.BillingPeriod != nil {
		changes["billing_period"] = *payload.BillingPeriod
	}
	if payload.NextPaymentDate != nil {
		nextPayment, _ := validation.ParseDate(*payload.NextPaymentDate)
		changes["next_payment_date"] = nextPayment
	}
	if payload.ReminderDays != nil {
		changes["reminder_days"] = *payload.ReminderDays
	}
	if payload.Description != nil {
		changes["description"] = *payload.Description
	}
	if payload.EmailNotifications != nil {
		changes["email_notifications"] = *payload.EmailNotifications
	}
	if payload.PushNotifications != nil {
		changes["push_notifications"] = *payload.PushNotifications
	}
	return changes
}
