package order

import "time"

// Weekend detection is evaluated in one fixed reference timezone so the
// result is deterministic regardless of where the process runs. The shop
// operates out of Germany; Europe/Berlin is the reference.
//
// The day of week is looked up directly in the reference zone. No
// locale-string round-tripping is involved, so daylight-saving transitions
// cannot skew the result.

const referenceTimezone = "Europe/Berlin"

var referenceLocation = mustLoadReferenceLocation()

func mustLoadReferenceLocation() *time.Location {
	loc, err := time.LoadLocation(referenceTimezone)
	if err != nil {
		panic("reference timezone unavailable: " + err.Error())
	}
	return loc
}

// isWeekend reports whether t falls on a Saturday or Sunday in the reference
// timezone. Orders created then need a weekend-hello acknowledgement.
func isWeekend(t time.Time) bool {
	switch t.In(referenceLocation).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
