package statistics

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/subtrackr/subtrackr/app/models"
	"github.com/subtrackr/subtrackr/internal/pkg/billing"
	"github.com/subtrackr/subtrackr/internal/pkg/cache"
	"github.com/subtrackr/subtrackr/internal/pkg/money"
)

const (
	cacheKeyUserSummary = "statistics:user:%d"
	cacheExpiration     = 30 * time.Minute
)

// PeriodBreakdown aggregates one billing period bucket.
type PeriodBreakdown struct {
	Count       int         `json:"count"`
	TotalAmount money.Cents `json:"total_amount"`
}

// Summary holds the derived spend figures for one user's active subscriptions.
type Summary struct {
	TotalSubscriptions int                        `json:"total_subscriptions"`
	MonthlySpend       money.Cents                `json:"monthly_spend"`
	YearlySpend        money.Cents                `json:"yearly_spend"`
	AverageSpend       money.Cents                `json:"average_spend"`
	Breakdown          map[string]PeriodBreakdown `json:"billing_period_breakdown"`
}

// Compute derives the spend summary from an active subscription set. It is a
// pure function; callers are expected to pass only active rows.
func Compute(subs []models.Subscription) Summary {
	s := Summary{
		TotalSubscriptions: len(subs),
		Breakdown:          make(map[string]PeriodBreakdown),
	}

	for _, sub := range subs {
		if sub.BillingPeriod == billing.PeriodMonthly {
			s.MonthlySpend += sub.Amount
		}
		s.YearlySpend += sub.Amount.Mul(billing.AnnualMultiplier(sub.BillingPeriod))

		b := s.Breakdown[sub.BillingPeriod]
		b.Count++
		b.TotalAmount += sub.Amount
		s.Breakdown[sub.BillingPeriod] = b
	}

	if s.TotalSubscriptions > 0 {
		s.AverageSpend = s.MonthlySpend.DivRound(int64(s.TotalSubscriptions))
	}

	return s
}

// GetCached returns the cached summary for a user, if one exists.
func GetCached(userID uint) (Summary, bool) {
	val, err := cache.Get(fmt.Sprintf(cacheKeyUserSummary, userID))
	if err != nil {
		return Summary{}, false
	}
	var s Summary
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return Summary{}, false
	}
	return s, true
}

// Cache stores a computed summary. Cache failures are logged and swallowed;
// statistics reads fall back to recomputation.
func Cache(userID uint, s Summary) {
	payload, err := json.Marshal(s)
	if err != nil {
		log.Printf("Error marshaling statistics for user %d: %v", userID, err)
		return
	}
	if err := cache.Set(fmt.Sprintf(cacheKeyUserSummary, userID), payload, cacheExpiration); err != nil {
		log.Printf("Error caching statistics for user %d: %v", userID, err)
	}
}

// Invalidate drops the cached summary after any subscription write.
func Invalidate(userID uint) {
	if err := cache.Delete(fmt.Sprintf(cacheKeyUserSummary, userID)); err != nil {
		log.Printf("Error invalidating statistics cache for user %d: %v", userID, err)
	}
}
