// File: services/scheduling/calendar.go
package scheduling

import (
	"time"

	"salonbook/models"
)

// GridSize is the fixed number of cells in the booking calendar:
// six full weeks, so the rendered grid is always rectangular.
const GridSize = 42

// ClampMonth rejects navigation to months before the current calendar
// month by clamping the requested view to today's month. Forward
// navigation is unbounded.
func ClampMonth(year int, month time.Month, today time.Time) (int, time.Month) {
	if year < today.Year() || (year == today.Year() && month < today.Month()) {
		return today.Year(), today.Month()
	}
	return year, month
}

// BuildMonthGrid produces the 42-day calendar for a viewed month.
// The grid starts on the Sunday on or before the 1st. A day is open only
// when its weekday is open in the outlet's weekly hours, it falls inside
// the viewed month, and it is not before today; days spilling into
// adjacent months are never selectable. The grid never fails: a weekday
// missing from the weekly hours simply renders closed.
func BuildMonthGrid(year int, month time.Month, today time.Time, week models.WeeklyHours) []models.CalendarDay {
	year, month = ClampMonth(year, month, today)

	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	days := make([]models.CalendarDay, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := gridStart.AddDate(0, 0, i)
		inMonth := date.Month() == month && date.Year() == year

		wh, configured := week[date.Weekday()]
		open := configured && wh.IsOpen && inMonth && !date.Before(todayDate)

		days = append(days, models.CalendarDay{
			Date:           date,
			IsOpen:         open,
			IsToday:        date.Equal(todayDate),
			IsCurrentMonth: inMonth,
		})
	}
	return days
}
