package services

import (
	"testing"
	"time"

	"staff-attendance/internal/models"
)

func ts(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}

func closedRecord(date, checkIn, checkOut string) models.TimeRecord {
	return models.TimeRecord{
		ID:         "r1",
		EmployeeID: "e1",
		Date:       date,
		CheckIn:    checkIn,
		CheckOut:   &checkOut,
	}
}

func TestHoursBetween(t *testing.T) {
	in := ts(2026, time.March, 5, 8, 0, 0)
	out := ts(2026, time.March, 5, 17, 0, 0)
	if got := HoursBetween(in, out); got != 9.0 {
		t.Errorf("HoursBetween = %v, want 9.0", got)
	}

	// A check-out before check-in is not validated; the result goes
	// negative.
	if got := HoursBetween(out, in); got != -9.0 {
		t.Errorf("reversed HoursBetween = %v, want -9.0", got)
	}

	half := ts(2026, time.March, 5, 12, 30, 0)
	if got := HoursBetween(in, half); got != 4.5 {
		t.Errorf("fractional HoursBetween = %v, want 4.5", got)
	}
}

func TestTotalHoursWindows(t *testing.T) {
	now := ts(2026, time.March, 5, 14, 0, 0)
	today := closedRecord(now.Format(DateLayout), "08:00:00", "17:00:00")

	for _, w := range []Window{WindowDay, WindowMonth, WindowYear} {
		if got := TotalHours([]models.TimeRecord{today}, w, now); got != 9.0 {
			t.Errorf("TotalHours(window=%s) = %v, want 9.0", w, got)
		}
	}
}

func TestTotalHoursExcludesOutOfWindow(t *testing.T) {
	now := ts(2026, time.March, 5, 14, 0, 0)
	yearAgo := closedRecord("2025-03-05", "08:00:00", "17:00:00")
	if got := TotalHours([]models.TimeRecord{yearAgo}, WindowYear, now); got != 0 {
		t.Errorf("year-old record counted in year window: got %v, want 0", got)
	}

	lastMonth := closedRecord("2026-02-10", "08:00:00", "17:00:00")
	if got := TotalHours([]models.TimeRecord{lastMonth}, WindowMonth, now); got != 0 {
		t.Errorf("last month counted in month window: got %v, want 0", got)
	}
	if got := TotalHours([]models.TimeRecord{lastMonth}, WindowYear, now); got != 9.0 {
		t.Errorf("last month missing from year window: got %v, want 9.0", got)
	}

	yesterday := closedRecord("2026-03-04", "08:00:00", "17:00:00")
	if got := TotalHours([]models.TimeRecord{yesterday}, WindowDay, now); got != 0 {
		t.Errorf("yesterday counted in day window: got %v, want 0", got)
	}
}

func TestTotalHoursExcludesOpenRecords(t *testing.T) {
	now := ts(2026, time.March, 5, 14, 0, 0)
	open := models.TimeRecord{
		ID:         "r1",
		EmployeeID: "e1",
		Date:       now.Format(DateLayout),
		CheckIn:    "08:00:00",
	}
	if got := TotalHours([]models.TimeRecord{open}, WindowDay, now); got != 0 {
		t.Errorf("open record counted: got %v, want 0", got)
	}
}

func TestTotalHoursSkipsMalformedRecords(t *testing.T) {
	now := ts(2026, time.March, 5, 14, 0, 0)
	records := []models.TimeRecord{
		closedRecord("not-a-date", "08:00:00", "17:00:00"),
		closedRecord(now.Format(DateLayout), "garbage", "17:00:00"),
		closedRecord(now.Format(DateLayout), "08:00:00", "12:00:00"),
	}
	if got := TotalHours(records, WindowDay, now); got != 4.0 {
		t.Errorf("TotalHours with malformed records = %v, want 4.0", got)
	}
}

func TestTotalHoursAccumulates(t *testing.T) {
	now := ts(2026, time.March, 5, 23, 0, 0)
	date := now.Format(DateLayout)
	records := []models.TimeRecord{
		closedRecord(date, "08:00:00", "12:00:00"),
		closedRecord(date, "13:00:00", "17:30:00"),
	}
	if got := TotalHours(records, WindowDay, now); got != 8.5 {
		t.Errorf("TotalHours = %v, want 8.5", got)
	}
	if got := TotalHours(records, WindowDay, now); got < 0 {
		t.Errorf("TotalHours went negative: %v", got)
	}
}

func TestParseWindow(t *testing.T) {
	for _, valid := range []string{"day", "month", "year"} {
		if _, err := ParseWindow(valid); err != nil {
			t.Errorf("ParseWindow(%q) failed: %v", valid, err)
		}
	}
	if _, err := ParseWindow("week"); err == nil {
		t.Error("ParseWindow accepted an unknown window")
	}
}

func TestFormatTimestamp(t *testing.T) {
	got := FormatTimestamp(ts(2026, time.March, 5, 8, 15, 42))
	if got != "05 Mar 2026 08:15:42" {
		t.Errorf("FormatTimestamp = %q", got)
	}
}
