package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/subtrackr/subtrackr/app/models"
)

var csvHeader = []string{
	"name", "amount", "currency", "billing_period",
	"next_payment_date", "reminder_days", "description", "created_at",
}

// SubscriptionsCSV renders the subscription set as a CSV document.
func SubscriptionsCSV(subs []models.Subscription) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, sub := range subs {
		record := []string{
			sub.Name,
			sub.Amount.String(),
			sub.Currency,
			sub.BillingPeriod,
			sub.NextPaymentDate.UTC().Format(time.RFC3339),
			strconv.Itoa(sub.ReminderDays),
			sub.Description,
			sub.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
