package models

import "time"

// CalendarDay is one cell of the 6-week booking calendar grid.
// Derived per viewed month, never persisted.
type CalendarDay struct {
	Date           time.Time `json:"date"`
	IsOpen         bool      `json:"isOpen"`
	IsToday        bool      `json:"isToday"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
}
