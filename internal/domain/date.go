package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// serialEpoch is the base date of the legacy spreadsheet serial-day encoding:
// a numeric cell holds the number of whole days since 1899-12-30.
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// monthDayPattern matches the localized business date form, e.g. "3月1日".
var monthDayPattern = regexp.MustCompile(`^(\d{1,2})月(\d{1,2})日$`)

// genericLayouts are tried in order for date text that is neither a serial
// number nor the localized month/day form.
var genericLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
	"2006年1月2日",
	time.RFC3339,
}

// NormalizeDate converts a raw cell value into a canonical calendar date at
// UTC midnight. Ambiguous month/day text without a year is resolved against
// the given processing year. The second return value is false when the input
// is empty or unparseable; the zero time is the MISSING marker.
func NormalizeDate(raw string, year int) (time.Time, bool) {
	compact := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if compact == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(compact, 64); err == nil {
		return serialEpoch.AddDate(0, 0, int(serial)), true
	}

	if m := monthDayPattern.FindStringSubmatch(compact); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes overflow (2月30日 becomes March), which would
		// silently shift the join key; reject such input instead.
		if int(t.Month()) != month || t.Day() != day {
			return time.Time{}, false
		}
		return t, true
	}

	trimmed := strings.TrimSpace(raw)
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// FormatMonthDay renders a canonical date back into the localized "M月D日"
// display form. The MISSING marker renders as an empty string.
func FormatMonthDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
}

// DaysInMonth returns the calendar length of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
