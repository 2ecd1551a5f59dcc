package models

import (
	"testing"
	"time"
)

func TestWorkingHoursValidate(t *testing.T) {
	ok := WorkingHours{Weekday: time.Monday, IsOpen: true, OpenMinute: 600, CloseMinute: 1140}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid hours refused: %v", err)
	}

	closed := WorkingHours{Weekday: time.Sunday}
	if err := closed.Validate(); err != nil {
		t.Fatalf("a closed day needs no window: %v", err)
	}

	inverted := WorkingHours{Weekday: time.Monday, IsOpen: true, OpenMinute: 1140, CloseMinute: 600}
	if err := inverted.Validate(); err == nil {
		t.Fatal("inverted window should be refused")
	}

	outside := WorkingHours{Weekday: time.Monday, IsOpen: true, OpenMinute: 600, CloseMinute: 1500}
	if err := outside.Validate(); err == nil {
		t.Fatal("window past midnight should be refused")
	}
}

func TestBuildWeeklyHoursRejectsDuplicates(t *testing.T) {
	records := []WorkingHours{
		{Weekday: time.Monday, IsOpen: true, OpenMinute: 600, CloseMinute: 1140},
		{Weekday: time.Monday, IsOpen: true, OpenMinute: 540, CloseMinute: 1080},
	}
	if _, err := BuildWeeklyHours(records); err == nil {
		t.Fatal("duplicate weekday records should be refused")
	}
}

func TestIntervalOverlapsHalfOpen(t *testing.T) {
	busy := Interval{Start: 660, End: 720}

	if busy.Overlaps(600, 660) {
		t.Fatal("window ending at the busy start does not overlap")
	}
	if !busy.Overlaps(630, 690) {
		t.Fatal("window crossing the busy start overlaps")
	}
	if busy.Overlaps(720, 780) {
		t.Fatal("window starting at the busy end does not overlap")
	}
	if !busy.Overlaps(600, 780) {
		t.Fatal("window containing the busy interval overlaps")
	}
}

func TestMinuteClock(t *testing.T) {
	cases := map[int]string{0: "00:00", 600: "10:00", 1050: "17:30", 1139: "18:59"}
	for minute, want := range cases {
		if got := MinuteClock(minute); got != want {
			t.Fatalf("MinuteClock(%d): expected %s, got %s", minute, want, got)
		}
	}
}
