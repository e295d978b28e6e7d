package clock

import "time"

// BusinessZone is Atlantic Standard Time (UTC-4). Puerto Rico does not
// observe daylight saving, so a fixed offset is correct year round.
var BusinessZone = time.FixedZone("AST", -4*60*60)

// Clock abstracts wall-clock time so date validation and document
// generation can be tested against a frozen instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// BusinessNow returns the current time in the business timezone.
func BusinessNow(c Clock) time.Time {
	return c.Now().In(BusinessZone)
}

// Fixed returns a Clock pinned to the given instant.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
