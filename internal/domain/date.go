package domain

import "time"

// DateLayout is the wire format for calendar dates. The ledger carries no
// time-of-day component; all dates are midnight UTC.
const DateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func FormatDate(value time.Time) string {
	return value.Format(DateLayout)
}

func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
