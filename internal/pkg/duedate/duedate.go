package duedate

import (
	"fmt"
	"math"
	"time"
)

// Group labels used by list views.
const (
	GroupDueThisWeek = "due_this_week"
	GroupOther       = "other"
)

// Classification describes how soon a subscription payment is due.
type Classification struct {
	DaysUntilDue int    `json:"days_until_due"`
	Label        string `json:"due_label"`
	Urgent       bool   `json:"urgent"`
}

// Classify maps a next payment date and the current time to a human-readable
// urgency label. Days are counted as ceil of the remaining duration, so any
// part of a day still ahead counts as a full day.
func Classify(nextPayment, now time.Time) Classification {
	days := DaysUntil(nextPayment, now)

	switch {
	case days < 0:
		return Classification{DaysUntilDue: days, Label: "Overdue", Urgent: true}
	case days == 0:
		return Classification{DaysUntilDue: days, Label: "Due today", Urgent: true}
	case days == 1:
		return Classification{DaysUntilDue: days, Label: "Due tomorrow", Urgent: true}
	case days <= 7:
		return Classification{DaysUntilDue: days, Label: fmt.Sprintf("Due in %d days", days)}
	}

	weeks := (days + 6) / 7
	label := fmt.Sprintf("Due in %d week", weeks)
	if weeks > 1 {
		label += "s"
	}
	return Classification{DaysUntilDue: days, Label: label}
}

// DaysUntil returns ceil((nextPayment - now) / 24h); negative when overdue.
func DaysUntil(nextPayment, now time.Time) int {
	return int(math.Ceil(nextPayment.Sub(now).Hours() / 24))
}

// GroupOf assigns a subscription to exactly one list-view group: payments due
// within the next seven days (inclusive) are "due this week", everything else,
// overdue rows included, is "other".
func GroupOf(nextPayment, now time.Time) string {
	days := DaysUntil(nextPayment, now)
	if days >= 0 && days <= 7 {
		return GroupDueThisWeek
	}
	return GroupOther
}
