package models

import (
	"fmt"
	"time"
)

// WorkingHours is one weekday's open/close window for the outlet.
// OpenMinute and CloseMinute are minutes from midnight (e.g. 600 for 10:00).
type WorkingHours struct {
	Weekday     time.Weekday `bson:"weekday" json:"weekday"`
	IsOpen      bool         `bson:"isOpen" json:"isOpen"`
	OpenMinute  int          `bson:"openMinute" json:"openMinute"`
	CloseMinute int          `bson:"closeMinute" json:"closeMinute"`
}

// Validate reports a configuration gap: an open day whose window is
// empty, inverted, or outside a single day.
func (wh WorkingHours) Validate() error {
	if !wh.IsOpen {
		return nil
	}
	if wh.OpenMinute < 0 || wh.CloseMinute > 24*60 {
		return fmt.Errorf("working hours for %s outside the day: %d-%d", wh.Weekday, wh.OpenMinute, wh.CloseMinute)
	}
	if wh.OpenMinute >= wh.CloseMinute {
		return fmt.Errorf("working hours for %s open at or after close: %d >= %d", wh.Weekday, wh.OpenMinute, wh.CloseMinute)
	}
	return nil
}

// WeeklyHours indexes the outlet's working hours by weekday.
// A weekday with no record is treated as closed by the calendar and
// rejected by the slot generator.
type WeeklyHours map[time.Weekday]WorkingHours

// BuildWeeklyHours indexes a list of per-weekday records. Duplicate
// weekdays are a configuration gap.
func BuildWeeklyHours(records []WorkingHours) (WeeklyHours, error) {
	week := make(WeeklyHours, len(records))
	for _, wh := range records {
		if _, dup := week[wh.Weekday]; dup {
			return nil, fmt.Errorf("duplicate working hours record for %s", wh.Weekday)
		}
		if err := wh.Validate(); err != nil {
			return nil, err
		}
		week[wh.Weekday] = wh
	}
	return week, nil
}

// MinuteClock formats minutes-from-midnight as "15:04" for display.
func MinuteClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
