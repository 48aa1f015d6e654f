package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtrackr/subtrackr/app/models"
	"github.com/subtrackr/subtrackr/internal/pkg/billing"
	"github.com/subtrackr/subtrackr/internal/pkg/money"
)

func sub(amount string, period string) models.Subscription {
	c, err := money.Parse(amount)
	if err != nil {
		panic(err)
	}
	return models.Subscription{
		Name:            "test",
		Amount:          c,
		BillingPeriod:   period,
		NextPaymentDate: time.Now().AddDate(0, 1, 0),
		IsActive:        true,
	}
}

func TestComputeEmptySet(t *testing.T) {
	s := Compute(nil)

	assert.Equal(t, 0, s.TotalSubscriptions)
	assert.Equal(t, money.Cents(0), s.MonthlySpend)
	assert.Equal(t, money.Cents(0), s.YearlySpend)
	// never a division error on an empty set
	assert.Equal(t, money.Cents(0), s.AverageSpend)
	assert.Empty(t, s.Breakdown)
}

func TestComputeYearlyNormalization(t *testing.T) {
	monthly := Compute([]models.Subscription{sub("10.00", billing.PeriodMonthly)})
	assert.Equal(t, "120.00", monthly.YearlySpend.String())

	weekly := Compute([]models.Subscription{sub("5.00", billing.PeriodWeekly)})
	assert.Equal(t, "260.00", weekly.YearlySpend.String())

	quarterly := Compute([]models.Subscription{sub("30.00", billing.PeriodQuarterly)})
	assert.Equal(t, "120.00", quarterly.YearlySpend.String())

	custom := Compute([]models.Subscription{sub("99.99", billing.PeriodCustom)})
	assert.Equal(t, "99.99", custom.YearlySpend.String())
}

func TestComputeMonthlySpendOnlyCountsMonthly(t *testing.T) {
	s := Compute([]models.Subscription{
		sub("15.99", billing.PeriodMonthly),
		sub("9.99", billing.PeriodMonthly),
		sub("120.00", billing.PeriodYearly),
		sub("5.00", billing.PeriodWeekly),
	})

	assert.Equal(t, 4, s.TotalSubscriptions)
	assert.Equal(t, "25.98", s.MonthlySpend.String())
	// 15.99*12 + 9.99*12 + 120 + 5*52 = 191.88 + 119.88 + 120 + 260
	assert.Equal(t, "691.76", s.YearlySpend.String())
}

func TestComputeAverageSpend(t *testing.T) {
	s := Compute([]models.Subscription{
		sub("10.00", billing.PeriodMonthly),
		sub("20.00", billing.PeriodMonthly),
		sub("50.00", billing.PeriodYearly),
	})
	// monthly spend 30.00 across three subscriptions
	assert.Equal(t, "10.00", s.AverageSpend.String())
}

func TestComputeBreakdown(t *testing.T) {
	s := Compute([]models.Subscription{
		sub("15.99", billing.PeriodMonthly),
		sub("9.99", billing.PeriodMonthly),
		sub("120.00", billing.PeriodYearly),
	})

	require.Len(t, s.Breakdown, 2)
	assert.Equal(t, 2, s.Breakdown[billing.PeriodMonthly].Count)
	assert.Equal(t, "25.98", s.Breakdown[billing.PeriodMonthly].TotalAmount.String())
	assert.Equal(t, 1, s.Breakdown[billing.PeriodYearly].Count)
	assert.Equal(t, "120.00", s.Breakdown[billing.PeriodYearly].TotalAmount.String())
}

func TestComputeNetflixScenario(t *testing.T) {
	before := Compute(nil)
	after := Compute([]models.Subscription{sub("15.99", billing.PeriodMonthly)})

	assert.Equal(t, "15.99", (after.MonthlySpend - before.MonthlySpend).String())
	assert.Equal(t, "191.88", (after.YearlySpend - before.YearlySpend).String())
}
