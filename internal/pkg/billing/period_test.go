package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPeriod(t *testing.T) {
	for _, p := range Periods {
		assert.True(t, IsValidPeriod(p), p)
	}
	assert.False(t, IsValidPeriod("daily"))
	assert.False(t, IsValidPeriod(""))
	assert.False(t, IsValidPeriod("Monthly"))
}

func TestAnnualMultiplier(t *testing.T) {
	assert.EqualValues(t, 12, AnnualMultiplier(PeriodMonthly))
	assert.EqualValues(t, 1, AnnualMultiplier(PeriodYearly))
	assert.EqualValues(t, 52, AnnualMultiplier(PeriodWeekly))
	assert.EqualValues(t, 4, AnnualMultiplier(PeriodQuarterly))
	assert.EqualValues(t, 1, AnnualMultiplier(PeriodCustom))
	assert.EqualValues(t, 1, AnnualMultiplier("whatever"))
}
