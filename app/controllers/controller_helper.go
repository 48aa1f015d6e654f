package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/subtrackr/subtrackr/app/models"
	"github.com/subtrackr/subtrackr/internal/pkg/duedate"
	"github.com/subtrackr/subtrackr/internal/pkg/validation"
)

// subscriptionResponse decorates a subscription with the due-date
// classification computed at query time.
type subscriptionResponse struct {
	models.Subscription
	duedate.Classification
	Group string `json:"group"`
}

func newSubscriptionResponse(sub models.Subscription, now time.Time) subscriptionResponse {
	return subscriptionResponse{
		Subscription:   sub,
		Classification: duedate.Classify(sub.NextPaymentDate, now),
		Group:          duedate.GroupOf(sub.NextPaymentDate, now),
	}
}

func newSubscriptionListResponse(subs []models.Subscription, now time.Time) []subscriptionResponse {
	out := make([]subscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, newSubscriptionResponse(sub, now))
	}
	return out
}

// parseIDParam reads the numeric :id route parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func respondBadPayload(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Request body is not valid JSON",
	})
}

func respondValidationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  validation.Describe(err),
	})
}

func respondNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": message,
	})
}

// respondStoreError logs the underlying failure and keeps the client message
// generic.
func respondStoreError(c *fiber.Ctx, op string, err error) error {
	log.Errorf("store error during %s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
