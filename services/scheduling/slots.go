// File: services/scheduling/slots.go
package scheduling

import (
	"time"

	"salonbook/models"
)

// BuildTimeSlots generates the ordered candidate start times for a day.
//
// Slots step from the day's open minute at the given granularity and
// stop at the last start where start+duration still fits before close.
// A slot is unavailable when its occupied [start, start+duration) window
// overlaps a busy interval, or when the day is today and the start has
// already elapsed. A closed day, or a duration too long to fit anywhere,
// yields an empty sequence — that is a valid "no availability" result,
// not an error. Only configuration gaps (non-positive duration or step,
// malformed hours) are refused.
func BuildTimeSlots(
	day models.CalendarDay,
	hours models.WorkingHours,
	durationMin, stepMin int,
	busy []models.Interval,
	now time.Time,
) ([]models.TimeSlot, error) {
	if durationMin <= 0 {
		return nil, newConfigError("required duration must be positive, got %d", durationMin)
	}
	if stepMin <= 0 {
		return nil, newConfigError("slot granularity must be positive, got %d", stepMin)
	}
	if err := hours.Validate(); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	slots := make([]models.TimeSlot, 0)
	if !day.IsOpen || !hours.IsOpen {
		return slots, nil
	}

	isToday := sameDate(day.Date, now)
	nowMinute := now.Hour()*60 + now.Minute()

	for start := hours.OpenMinute; start+durationMin <= hours.CloseMinute; start += stepMin {
		available := true
		if isToday && start < nowMinute {
			available = false
		} else {
			for _, b := range busy {
				if b.Overlaps(start, start+durationMin) {
					available = false
					break
				}
			}
		}
		slots = append(slots, models.TimeSlot{
			Start:     start,
			Clock:     models.MinuteClock(start),
			Available: available,
		})
	}
	return slots, nil
}

// FitsWindow reports whether an appointment of the given duration
// starting at startMinute still ends by the day's close. Used to decide
// whether a previously chosen slot survives a duration change.
func FitsWindow(startMinute, durationMin int, hours models.WorkingHours) bool {
	return hours.IsOpen && startMinute >= hours.OpenMinute && startMinute+durationMin <= hours.CloseMinute
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
