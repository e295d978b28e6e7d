// Package validate holds the field-level predicates used before an
// order may be submitted. They answer yes/no only; error messages and
// field keys belong to the caller.
package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/dshowevents/contratia/internal/clock"
	"github.com/dshowevents/contratia/internal/contract/domain"
)

// PR/US phone shapes: optional +1 prefix, optional punctuation, 3+3+4
// digit groups.
var phonePattern = regexp.MustCompile(`^\+?1?\D?(\d{3})\D?(\d{3})\D?(\d{4})$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func IsValidPhone(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return phonePattern.MatchString(value)
}

// NormalizePhone returns the E.164 form (+1XXXXXXXXXX) of a valid
// phone, or "" for anything else.
func NormalizePhone(value string) string {
	value = strings.TrimSpace(value)
	match := phonePattern.FindStringSubmatch(value)
	if match == nil {
		return ""
	}
	return "+1" + match[1] + match[2] + match[3]
}

func IsValidEmail(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return emailPattern.MatchString(value)
}

// IsValidDate accepts a YYYY-MM-DD date that is today or later, judged
// at day granularity in the business timezone.
func IsValidDate(c clock.Clock, value string) bool {
	day, ok := parseDay(value)
	if !ok {
		return false
	}
	return !day.Before(businessToday(c))
}

// IsValidTimeSlot accepts a date/time pair where the date is valid and
// the time lands on a quarter-hour slot. When the date is today the
// time must also still be ahead of the business clock.
func IsValidTimeSlot(c clock.Clock, dateValue, timeValue string) bool {
	day, ok := parseDay(dateValue)
	if !ok {
		return false
	}
	hour, minute, ok := domain.ParseClock12(timeValue)
	if !ok || !domain.ValidSlotMinute(minute) {
		return false
	}

	today := businessToday(c)
	if day.Before(today) {
		return false
	}
	if day.After(today) {
		return true
	}
	slot := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, clock.BusinessZone)
	return slot.After(clock.BusinessNow(c))
}

func parseDay(value string) (time.Time, bool) {
	if !datePattern.MatchString(value) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", value, clock.BusinessZone)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func businessToday(c clock.Clock) time.Time {
	now := clock.BusinessNow(c)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, clock.BusinessZone)
}
