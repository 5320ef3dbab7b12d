// Package dateutil handles the strict YYYY-MM-DD date strings used as keys
// throughout the feed: parsing, formatting, day arithmetic, and range checks
// against the feed's first published date.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// Epoch is the first date the upstream feed has a record for.
const Epoch = "1995-06-16"

// FormatError reports a date string that is not a well-formed YYYY-MM-DD value.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dateutil: invalid date %q: %s", e.Input, e.Reason)
}

// Parse converts a strict YYYY-MM-DD string into a local-time date value.
// Local time keeps the calendar day stable for the user; parsing in UTC can
// shift the day across midnight for clients west of Greenwich.
func Parse(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, &FormatError{Input: s, Reason: "want three segments"}
	}
	if len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, &FormatError{Input: s, Reason: "want YYYY-MM-DD"}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		for _, r := range p {
			if r < '0' || r > '9' {
				return time.Time{}, &FormatError{Input: s, Reason: "non-numeric segment"}
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, &FormatError{Input: s, Reason: "non-numeric segment"}
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 {
		return time.Time{}, &FormatError{Input: s, Reason: "month out of range"}
	}
	t := time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (e.g. Feb 30 -> Mar 2); reject that here.
	if t.Day() != nums[2] || int(t.Month()) != nums[1] || t.Year() != nums[0] {
		return time.Time{}, &FormatError{Input: s, Reason: "day out of range for month"}
	}
	return t, nil
}

// Format renders a date value back into YYYY-MM-DD. Format(Parse(s)) == s for
// every valid s.
func Format(t time.Time) string {
	return t.Format(layoutISO)
}

// Today returns the current date on the client clock as YYYY-MM-DD.
func Today() string {
	return Format(time.Now())
}

// AddDays shifts a date string by n calendar days, rolling months, years, and
// leap days through the time package rather than string math.
func AddDays(s string, n int) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// InValidRange reports whether s names a day the feed can have a record for:
// no earlier than Epoch and no later than today on the client clock, evaluated
// at call time.
func InValidRange(s string) bool {
	t, err := Parse(s)
	if err != nil {
		return false
	}
	epoch, _ := Parse(Epoch)
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !t.Before(epoch) && !t.After(today)
}
