package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/subtrackr/subtrackr/app/repository"
	"github.com/subtrackr/subtrackr/internal/pkg/statistics"
	"github.com/subtrackr/subtrackr/internal/pkg/usercontext"
)

// StatsController serves the /api/stats endpoint.
type StatsController struct {
	subs repository.SubscriptionRepository
}

// NewStatsController creates a new stats controller instance
func NewStatsController(subs repository.SubscriptionRepository) *StatsController {
	return &StatsController{subs: subs}
}

// HandleStats returns the spend summary derived from the caller's active
// subscriptions. Summaries are cached per user and recomputed after any
// subscription write; a cold or unreachable cache degrades to recomputation.
func (ctrl *StatsController) HandleStats(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	if summary, ok := statistics.GetCached(userID); ok {
		return c.JSON(summary)
	}

	subs, err := ctrl.subs.List(userID)
	if err != nil {
		return respondStoreError(c, "compute statistics", err)
	}

	summary := statistics.Compute(subs)
	statistics.Cache(userID, summary)

	return c.JSON(summary)
}
