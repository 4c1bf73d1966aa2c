package impl

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// parseServiceTime resolves a schedule string in HH:MM:SS form against the
// reference time's date and location. Transit schedules run on a service day
// that extends past midnight, so hours of 24 or more roll onto the next
// calendar day (25:10:00 is 01:10:00 tomorrow).
func parseServiceTime(ref time.Time, raw string) (time.Time, error) {
	var hh, mm, ss int
	if _, err := fmt.Sscanf(raw, "%d:%d:%d", &hh, &mm, &ss); err != nil {
		return time.Time{}, errors.Wrapf(err, "malformed schedule time %q", raw)
	}
	if hh < 0 || mm < 0 || mm > 59 || ss < 0 || ss > 59 {
		return time.Time{}, errors.Errorf("schedule time out of range %q", raw)
	}

	dayOffset := 0
	if hh >= 24 {
		hh -= 24
		dayOffset = 1
	}

	year, month, day := ref.Date()
	resolved := time.Date(year, month, day+dayOffset, hh, mm, ss, 0, ref.Location())
	return resolved, nil
}

// arrivalKey identifies one scheduled arrival for idempotency. It pairs the
// query date with the literal schedule string so an after-midnight arrival
// keeps the service day it was queried under.
func arrivalKey(ref time.Time, rawArrival string) string {
	return ref.Format("20060102") + "_" + rawArrival
}
