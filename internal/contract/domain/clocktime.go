package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Times travel as 12-hour "H:MM AM|PM" strings end to end; slots are
// quarter-hour only.
var clock12Pattern = regexp.MustCompile(`(\d+):(\d+)\s(AM|PM)`)

// ParseClock12 parses a 12-hour time string into 24-hour components.
func ParseClock12(value string) (hour, minute int, ok bool) {
	match := clock12Pattern.FindStringSubmatch(value)
	if match == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(match[1])
	minute, _ = strconv.Atoi(match[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, false
	}
	if match[3] == "PM" && hour != 12 {
		hour += 12
	}
	if match[3] == "AM" && hour == 12 {
		hour = 0
	}
	return hour, minute, true
}

// FormatClock12 renders 24-hour components back to "H:MM AM|PM".
func FormatClock12(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// ValidSlotMinute reports whether a minute value lands on a bookable
// quarter-hour slot.
func ValidSlotMinute(minute int) bool {
	switch minute {
	case 0, 15, 30, 45:
		return true
	}
	return false
}
