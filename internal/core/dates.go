package core

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

func dateString(t time.Time) string { return t.Format(dateLayout) }

// monthBounds returns the first and last day of t's calendar month as ISO
// date strings.
func monthBounds(t time.Time) (string, string) {
	year, month, _ := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return dateString(first), dateString(last)
}

// previousMonthBounds returns the bounds of the month before t's, handling
// the January to December year rollover.
func previousMonthBounds(t time.Time) (string, string) {
	year, month, _ := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	return monthBounds(first.AddDate(0, 0, -1))
}

// daysInMonth returns the number of calendar days in t's month.
func daysInMonth(t time.Time) int {
	year, month, _ := t.Date()
	return time.Date(year, month+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// round2 rounds to two decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
