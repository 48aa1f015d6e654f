package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() SubscriptionCreate {
	return SubscriptionCreate{
		Name:            "Netflix",
		Amount:          "15.99",
		BillingPeriod:   "monthly",
		NextPaymentDate: "2025-07-01",
	}
}

func TestSubscriptionCreateValid(t *testing.T) {
	assert.NoError(t, Check(validCreate()))

	withTime := validCreate()
	withTime.NextPaymentDate = "2025-07-01T00:00:00Z"
	assert.NoError(t, Check(withTime))
}

func TestSubscriptionCreateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubscriptionCreate)
		field  string
	}{
		{"missing name", func(p *SubscriptionCreate) { p.Name = "" }, "Name"},
		{"negative amount", func(p *SubscriptionCreate) { p.Amount = "-1.00" }, "Amount"},
		{"malformed amount", func(p *SubscriptionCreate) { p.Amount = "abc" }, "Amount"},
		{"too many decimals", func(p *SubscriptionCreate) { p.Amount = "9.999" }, "Amount"},
		{"bad period", func(p *SubscriptionCreate) { p.BillingPeriod = "daily" }, "BillingPeriod"},
		{"bad date", func(p *SubscriptionCreate) { p.NextPaymentDate = "tomorrow" }, "NextPaymentDate"},
		{"bad currency", func(p *SubscriptionCreate) { c := "DOLLARS"; p.Currency = &c }, "Currency"},
		{"negative reminder", func(p *SubscriptionCreate) { d := -1; p.ReminderDays = &d }, "ReminderDays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCreate()
			tt.mutate(&p)
			err := Check(p)
			require.Error(t, err)
			assert.Contains(t, Describe(err), tt.field)
		})
	}
}

func TestSubscriptionUpdatePartial(t *testing.T) {
	assert.NoError(t, Check(SubscriptionUpdate{}))
	assert.True(t, SubscriptionUpdate{}.IsEmpty())

	name := "Spotify"
	u := SubscriptionUpdate{Name: &name}
	assert.NoError(t, Check(u))
	assert.False(t, u.IsEmpty())

	bad := "not-a-period"
	assert.Error(t, Check(SubscriptionUpdate{BillingPeriod: &bad}))
}

func TestSettingsUpdate(t *testing.T) {
	dark := true
	assert.NoError(t, Check(SettingsUpdate{DarkMode: &dark}))

	cur := "eu"
	assert.Error(t, Check(SettingsUpdate{DefaultCurrency: &cur}))
}

func TestDescribeMessages(t *testing.T) {
	p := validCreate()
	p.Amount = "9.999"
	err := Check(p)
	require.Error(t, err)

	fields := Describe(err)
	assert.Equal(t, "must be a non-negative amount with at most two decimal places", fields["Amount"])
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = ParseDate("07/01/2025")
	assert.Error(t, err)
}
