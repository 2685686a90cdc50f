package timezone

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Window is a half-open UTC instant range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// ReminderWindow returns the UTC instants equivalent to "fromHours" and
// "toHours" from utcNow as measured on the wall clock of the given IANA zone.
//
// The arithmetic is civil-time, not elapsed-duration: utcNow is converted to
// the zone's local representation, the hours are added to the local wall
// clock, and the result is mapped back to UTC using the zone's offset rules
// at that future local time. A flat utcNow.Add(24h) would be wrong whenever
// a DST transition falls inside the window, because the customer's
// "24 hours before the event" is a wall-clock notion.
//
// An unloadable zone degrades to plain instant arithmetic; a skewed reminder
// beats a dropped one.
func ReminderWindow(utcNow time.Time, zone string, fromHours, toHours int) Window {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Warn().
			Err(err).
			Str("timezone", zone).
			Msg("Failed to load timezone for reminder window, falling back to instant arithmetic")

		return Window{
			Start: utcNow.Add(time.Duration(fromHours) * time.Hour).UTC(),
			End:   utcNow.Add(time.Duration(toHours) * time.Hour).UTC(),
		}
	}

	return Window{
		Start: addWallClockHours(utcNow, loc, fromHours).UTC(),
		End:   addWallClockHours(utcNow, loc, toHours).UTC(),
	}
}

// addWallClockHours adds hours to t's wall clock in loc. time.Date
// normalizes the overflowed hour field and resolves the UTC offset at the
// resulting local time, which is exactly the to-local/add/from-local
// two-step conversion.
func addWallClockHours(t time.Time, loc *time.Location, hours int) time.Time {
	local := t.In(loc)

	return time.Date(
		local.Year(),
		local.Month(),
		local.Day(),
		local.Hour()+hours,
		local.Minute(),
		local.Second(),
		local.Nanosecond(),
		loc,
	)
}
