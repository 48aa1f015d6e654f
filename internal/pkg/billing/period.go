package billing

// Billing period values as stored in the subscriptions table.
const (
	PeriodMonthly   = "monthly"
	PeriodYearly    = "yearly"
	PeriodWeekly    = "weekly"
	PeriodQuarterly = "quarterly"
	PeriodCustom    = "custom"
)

// Periods lists every valid billing period.
var Periods = []string{PeriodMonthly, PeriodYearly, PeriodWeekly, PeriodQuarterly, PeriodCustom}

// annualMultipliers maps a billing period to the number of charges per year.
// Custom periods carry no recurrence information and count once.
var annualMultipliers = map[string]int64{
	PeriodMonthly:   12,
	PeriodYearly:    1,
	PeriodWeekly:    52,
	PeriodQuarterly: 4,
	PeriodCustom:    1,
}

// IsValidPeriod reports whether p is one of the enumerated billing periods.
func IsValidPeriod(p string) bool {
	_, ok := annualMultipliers[p]
	return ok
}

// AnnualMultiplier returns the charges-per-year factor for a billing period.
// Unknown periods count once, matching the custom behavior.
func AnnualMultiplier(p string) int64 {
	if m, ok := annualMultipliers[p]; ok {
		return m
	}
	return 1
}
