package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/subtrackr/subtrackr/app/repository"
	"github.com/subtrackr/subtrackr/internal/pkg/usercontext"
	"github.com/subtrackr/subtrackr/internal/pkg/validation"
)

// SettingsController serves the /api/settings endpoints.
type SettingsController struct {
	settings repository.UserSettingsRepository
}

// NewSettingsController creates a new settings controller instance
func NewSettingsController(settings repository.UserSettingsRepository) *SettingsController {
	return &SettingsController{settings: settings}
}

// HandleGet returns the stored settings row or the documented defaults
func (ctrl *SettingsController) HandleGet(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	settings, err := ctrl.settings.GetOrDefault(userID)
	if err != nil {
		return respondStoreError(c, "get settings", err)
	}
	return c.JSON(settings)
}

// HandleUpdate upserts the settings row with the supplied fields
func (ctrl *SettingsController) HandleUpdate(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var payload validation.SettingsUpdate
	if err := c.BodyParser(&payload); err != nil {
		return respondBadPayload(c)
	}
	if err := validation.Check(payload); err != nil {
		return respondValidationError(c, err)
	}

	changes := map[string]interface{}{}
	if payload.EmailNotifications != nil {
		changes["email_notifications"] = *payload.EmailNotifications
	}
	if payload.PushNotifications != nil {
		changes["push_notifications"] = *payload.PushNotifications
	}
	if payload.WeeklySummary != nil {
		changes["weekly_summary"] = *payload.WeeklySummary
	}
	if payload.DarkMode != nil {
		changes["dark_mode"] = *payload.DarkMode
	}
	if payload.DefaultCurrency != nil {
		changes["default_currency"] = *payload.DefaultCurrency
	}

	settings, err := ctrl.settings.Upsert(userID, changes)
	if err != nil {
		return respondStoreError(c, "update settings", err)
	}
	return c.JSON(settings)
}
