package models

// TimeSlot is one candidate appointment start time for a selected day.
// Start is minutes from midnight. Recomputed whenever the date or the
// aggregate service duration changes.
type TimeSlot struct {
	Start     int    `json:"start"`
	Clock     string `json:"clock"` // Start formatted as "15:04"
	Available bool   `json:"available"`
}

// Interval is an occupied [Start, End) window on a stylist's day,
// minutes from midnight. Fed into slot generation as busy time.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether two half-open minute intervals intersect.
func (iv Interval) Overlaps(start, end int) bool {
	return start < iv.End && iv.Start < end
}
