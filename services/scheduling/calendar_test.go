package scheduling

import (
	"testing"
	"time"

	"salonbook/models"
)

// Mon-Sat 10:00-19:00, closed Sunday.
func testWeek() models.WeeklyHours {
	week := make(models.WeeklyHours)
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		week[wd] = models.WorkingHours{Weekday: wd, IsOpen: true, OpenMinute: 600, CloseMinute: 1140}
	}
	week[time.Sunday] = models.WorkingHours{Weekday: time.Sunday, IsOpen: false}
	return week
}

func TestBuildMonthGrid_Always42Cells(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	week := testWeek()

	months := []struct {
		year  int
		month time.Month
	}{
		{2026, time.March},
		{2026, time.April},
		{2026, time.February}, // clamped to March
		{2027, time.January},
		{2028, time.February}, // leap year
	}
	for _, m := range months {
		days := BuildMonthGrid(m.year, m.month, today, week)
		if len(days) != GridSize {
			t.Fatalf("grid for %d-%d: expected %d days, got %d", m.year, m.month, GridSize, len(days))
		}
	}
}

func TestBuildMonthGrid_FirstCellIsSundayBeforeFirst(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	// April 1st 2026 is a Wednesday; the grid must start on the
	// preceding Sunday, March 29th.
	days := BuildMonthGrid(2026, time.April, today, testWeek())

	want := time.Date(2026, time.March, 29, 0, 0, 0, 0, time.UTC)
	if !days[0].Date.Equal(want) {
		t.Fatalf("expected first cell %s, got %s", want.Format("2006-01-02"), days[0].Date.Format("2006-01-02"))
	}
	if days[0].Date.Weekday() != time.Sunday {
		t.Fatalf("expected first cell to be a Sunday, got %s", days[0].Date.Weekday())
	}
}

func TestBuildMonthGrid_SundaysClosed(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	days := BuildMonthGrid(2026, time.April, today, testWeek())

	for _, day := range days {
		if day.Date.Weekday() == time.Sunday && day.IsOpen {
			t.Fatalf("Sunday %s should be closed", day.Date.Format("2006-01-02"))
		}
	}
}

func TestBuildMonthGrid_SpillDaysNeverOpen(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	days := BuildMonthGrid(2026, time.April, today, testWeek())

	for _, day := range days {
		if !day.IsCurrentMonth && day.IsOpen {
			t.Fatalf("spill day %s should not be selectable", day.Date.Format("2006-01-02"))
		}
	}
}

func TestBuildMonthGrid_PastDaysClosed(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	days := BuildMonthGrid(2026, time.March, today, testWeek())

	for _, day := range days {
		if day.Date.Before(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)) && day.IsOpen {
			t.Fatalf("past day %s should be closed", day.Date.Format("2006-01-02"))
		}
		if day.Date.Weekday() != time.Sunday && day.IsCurrentMonth &&
			!day.Date.Before(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)) && !day.IsOpen {
			t.Fatalf("future weekday %s should be open", day.Date.Format("2006-01-02"))
		}
	}
}

func TestBuildMonthGrid_ExactlyOneToday(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	count := 0
	for _, day := range BuildMonthGrid(2026, time.March, today, testWeek()) {
		if day.IsToday {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one today cell, got %d", count)
	}
}

func TestBuildMonthGrid_NoTodayOutsideWindow(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	// June 2026 grid spans May 31 - July 11; today is outside it.
	for _, day := range BuildMonthGrid(2026, time.June, today, testWeek()) {
		if day.IsToday {
			t.Fatalf("no cell should be flagged today, got %s", day.Date.Format("2006-01-02"))
		}
	}
}

func TestClampMonth_RejectsEarlierMonths(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	year, month := ClampMonth(2026, time.February, today)
	if year != 2026 || month != time.March {
		t.Fatalf("expected clamp to 2026-03, got %d-%d", year, month)
	}

	year, month = ClampMonth(2025, time.December, today)
	if year != 2026 || month != time.March {
		t.Fatalf("expected clamp to 2026-03, got %d-%d", year, month)
	}

	// Forward navigation is unbounded.
	year, month = ClampMonth(2030, time.July, today)
	if year != 2030 || month != time.July {
		t.Fatalf("expected 2030-07 untouched, got %d-%d", year, month)
	}
}

func TestBuildMonthGrid_ClampedViewContainsToday(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	// Requesting February is clamped to the current month.
	days := BuildMonthGrid(2026, time.February, today, testWeek())
	found := false
	for _, day := range days {
		if day.IsToday {
			found = true
		}
	}
	if !found {
		t.Fatal("clamped grid should contain today")
	}
}

func TestBuildMonthGrid_MissingWeekdayRendersClosed(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	week := testWeek()
	delete(week, time.Wednesday)

	for _, day := range BuildMonthGrid(2026, time.April, today, week) {
		if day.Date.Weekday() == time.Wednesday && day.IsOpen {
			t.Fatalf("unconfigured Wednesday %s should render closed", day.Date.Format("2006-01-02"))
		}
	}
}
