package services

import (
	"fmt"
	"time"

	"staff-attendance/internal/models"
)

// Window is a calendar period anchored to a reference time.
type Window string

const (
	WindowDay   Window = "day"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

const (
	// DateLayout is the calendar-day format carried on time records and
	// leave requests.
	DateLayout = "2006-01-02"
	// ClockLayout is the time-of-day format for check-in/check-out.
	ClockLayout = "15:04:05"

	timestampLayout = "02 Jan 2006 15:04:05"
)

// ParseWindow validates a window query value.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowDay, WindowMonth, WindowYear:
		return Window(s), nil
	}
	return "", fmt.Errorf("unknown window %q", s)
}

// HoursBetween returns checkOut minus checkIn in fractional hours. A
// check-out before check-in yields a negative value; no validation is
// applied here.
func HoursBetween(checkIn, checkOut time.Time) float64 {
	return checkOut.Sub(checkIn).Hours()
}

// windowBounds returns the inclusive start and end of the window
// containing now.
func windowBounds(w Window, now time.Time) (time.Time, time.Time) {
	var start time.Time
	year, month, day := now.Date()
	switch w {
	case WindowDay:
		start = time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	case WindowMonth:
		start = time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	default: // WindowYear
		start = time.Date(year, 1, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	}
}

// recordTime combines a record's calendar date with a clock time.
func recordTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, time.Local)
}

// RecordHours returns the worked hours of a closed record. The second
// return is false for open records and for records whose date or clock
// values do not parse.
func RecordHours(r models.TimeRecord) (float64, bool) {
	if r.CheckOut == nil {
		return 0, false
	}
	in, err := recordTime(r.Date, r.CheckIn)
	if err != nil {
		return 0, false
	}
	out, err := recordTime(r.Date, *r.CheckOut)
	if err != nil {
		return 0, false
	}
	return HoursBetween(in, out), true
}

// TotalHours sums the worked hours of all closed records whose date falls
// inside the window containing now. Open records and records dated outside
// the window are excluded; the result may be fractional.
func TotalHours(records []models.TimeRecord, w Window, now time.Time) float64 {
	start, end := windowBounds(w, now)
	var total float64
	for _, r := range records {
		day, err := time.ParseInLocation(DateLayout, r.Date, time.Local)
		if err != nil {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		if hours, ok := RecordHours(r); ok {
			total += hours
		}
	}
	return total
}

// FormatTimestamp renders a human-readable timestamp for notifications,
// e.g. "05 Mar 2026 08:15:42".
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
