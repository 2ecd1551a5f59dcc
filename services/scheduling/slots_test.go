package scheduling

import (
	"testing"
	"time"

	"salonbook/models"
)

func openDay(date time.Time) models.CalendarDay {
	return models.CalendarDay{Date: date, IsOpen: true, IsCurrentMonth: true}
}

func hours(open, close int) models.WorkingHours {
	return models.WorkingHours{Weekday: time.Tuesday, IsOpen: true, OpenMinute: open, CloseMinute: close}
}

func TestBuildTimeSlots_LastSlotStillFits(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	day := openDay(time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC))

	// 90 minute appointment, 10:00-19:00, 30 minute steps:
	// starts run 10:00 through 17:30, sixteen in total.
	slots, err := BuildTimeSlots(day, hours(600, 1140), 90, 30, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	last := slots[len(slots)-1]
	if last.Start != 1050 || last.Clock != "17:30" {
		t.Fatalf("expected last slot 17:30, got %d (%s)", last.Start, last.Clock)
	}
	for _, s := range slots {
		if s.Start < 600 || s.Start+90 > 1140 {
			t.Fatalf("slot %s does not fit the working window", s.Clock)
		}
	}
}

func TestBuildTimeSlots_ClosedDayYieldsEmpty(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	day := models.CalendarDay{Date: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)}

	slots, err := BuildTimeSlots(day, models.WorkingHours{Weekday: time.Sunday}, 30, 30, nil, now)
	if err != nil {
		t.Fatalf("closed day is not an error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %d", len(slots))
	}
}

func TestBuildTimeSlots_DurationTooLongYieldsEmpty(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	day := openDay(time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC))

	// One hour window, 90 minute appointment: nothing fits, still not an error.
	slots, err := BuildTimeSlots(day, hours(600, 660), 90, 30, nil, now)
	if err != nil {
		t.Fatalf("no availability is not an error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty sequence, got %d slots", len(slots))
	}
}

func TestBuildTimeSlots_ElapsedSlotsUnavailableToday(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 15, 0, 0, time.UTC)
	day := openDay(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

	slots, err := BuildTimeSlots(day, hours(600, 1140), 30, 30, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range slots {
		if s.Start < 735 && s.Available {
			t.Fatalf("elapsed slot %s should be unavailable", s.Clock)
		}
		if s.Start >= 750 && !s.Available {
			t.Fatalf("future slot %s should be available", s.Clock)
		}
	}
}

func TestBuildTimeSlots_FutureDayIgnoresClock(t *testing.T) {
	now := time.Date(2026, time.March, 10, 18, 45, 0, 0, time.UTC)
	day := openDay(time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC))

	slots, err := BuildTimeSlots(day, hours(600, 1140), 30, 30, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("slot %s on a future day should be available", s.Clock)
		}
	}
}

func TestBuildTimeSlots_BusyOverlapHalfOpen(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	day := openDay(time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC))
	busy := []models.Interval{{Start: 660, End: 720}} // 11:00-12:00

	slots, err := BuildTimeSlots(day, hours(600, 1140), 60, 30, busy, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[int]bool{
		600: true,  // 10:00-11:00 touches the busy start, no overlap
		630: false, // 10:30-11:30 overlaps
		660: false,
		690: false, // 11:30-12:30 overlaps
		720: true,  // 12:00-13:00 starts at the busy end
	}
	for _, s := range slots {
		expect, ok := want[s.Start]
		if !ok {
			continue
		}
		if s.Available != expect {
			t.Fatalf("slot %s: expected available=%v, got %v", s.Clock, expect, s.Available)
		}
	}
}

func TestBuildTimeSlots_ConfigurationGaps(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	day := openDay(time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		name     string
		hours    models.WorkingHours
		duration int
		step     int
	}{
		{"zero duration", hours(600, 1140), 0, 30},
		{"negative duration", hours(600, 1140), -15, 30},
		{"zero step", hours(600, 1140), 30, 0},
		{"inverted hours", hours(1140, 600), 30, 30},
		{"open minute out of range", hours(-10, 600), 30, 30},
	}
	for _, tc := range cases {
		_, err := BuildTimeSlots(day, tc.hours, tc.duration, tc.step, nil, now)
		if err == nil {
			t.Fatalf("%s: expected a configuration error", tc.name)
		}
		if _, ok := err.(*ConfigError); !ok {
			t.Fatalf("%s: expected *ConfigError, got %T", tc.name, err)
		}
	}
}

func TestFitsWindow(t *testing.T) {
	wh := hours(600, 1140)

	if !FitsWindow(1050, 90, wh) {
		t.Fatal("17:30 + 90min ends exactly at close and should fit")
	}
	if FitsWindow(1080, 90, wh) {
		t.Fatal("18:00 + 90min runs past close and should not fit")
	}
	if FitsWindow(570, 30, wh) {
		t.Fatal("start before open should not fit")
	}
	if FitsWindow(600, 30, models.WorkingHours{Weekday: time.Sunday}) {
		t.Fatal("closed day fits nothing")
	}
}
