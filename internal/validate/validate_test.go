package validate

import (
	"testing"
	"time"

	"github.com/dshowevents/contratia/internal/clock"
)

// noon AST on June 15th, 2026
var testNow = clock.Fixed(time.Date(2026, 6, 15, 12, 0, 0, 0, clock.BusinessZone))

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"7875551234",
		"+1 787 555 1234",
		"787-555-1234",
		"787.555.1234",
	}
	for _, v := range valid {
		if !IsValidPhone(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	// Parenthesized numbers put two separators between the area code
	// and the exchange, which the pattern does not allow.
	invalid := []string{"", "12345", "787555123", "letters here", "(787) 555-1234"}
	for _, v := range invalid {
		if IsValidPhone(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("787-555-1234"); got != "+17875551234" {
		t.Fatalf("normalize = %q, want +17875551234", got)
	}
	if got := NormalizePhone("12345"); got != "" {
		t.Fatalf("normalize = %q, want empty", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("test@example.com") {
		t.Fatalf("expected test@example.com to be valid")
	}
	for _, v := range []string{"test@example", "no-at-sign", "a b@c.com", ""} {
		if IsValidEmail(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate(testNow, "2099-01-01") {
		t.Fatalf("expected far future date to be valid")
	}
	if IsValidDate(testNow, "1999-01-01") {
		t.Fatalf("expected past date to be invalid")
	}
	if IsValidDate(testNow, "not-a-date") {
		t.Fatalf("expected malformed date to be invalid")
	}
	if !IsValidDate(testNow, "2026-06-15") {
		t.Fatalf("expected today to be valid")
	}
	if IsValidDate(testNow, "2026-06-14") {
		t.Fatalf("expected yesterday to be invalid")
	}
}

func TestIsValidTimeSlot(t *testing.T) {
	// Future date: any well-formed quarter-hour slot works.
	if !IsValidTimeSlot(testNow, "2026-06-16", "9:00 AM") {
		t.Fatalf("expected future morning slot to be valid")
	}
	// Today: the slot must still be ahead of the business clock (noon).
	if IsValidTimeSlot(testNow, "2026-06-15", "9:00 AM") {
		t.Fatalf("expected elapsed slot today to be invalid")
	}
	if !IsValidTimeSlot(testNow, "2026-06-15", "3:30 PM") {
		t.Fatalf("expected later slot today to be valid")
	}
	// Minutes off the quarter-hour grid are rejected.
	if IsValidTimeSlot(testNow, "2026-06-16", "9:10 AM") {
		t.Fatalf("expected off-grid minutes to be invalid")
	}
	if IsValidTimeSlot(testNow, "2026-06-16", "") {
		t.Fatalf("expected missing time to be invalid")
	}
}
