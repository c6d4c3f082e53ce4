// README: Date parsing, inclusive day counts and chunk planning.
package itinerary

import (
	"fmt"
	"time"
)

// MaxChunkDays bounds the number of days requested in one model call.
// Longer ranges are split and merged afterwards.
const MaxChunkDays = 7

// dateLayouts are tried in order; the first match wins, so YYYY-MM-DD is
// strictly preferred over DD-MM-YYYY when both would parse.
var dateLayouts = []string{
	"2006-1-2",
	"2-1-2006",
	"2006/1/2",
	"2/1/2006",
	"Jan 2 2006",
	"2 Jan 2006",
}

// isoLayouts are the generic ISO-8601 fallbacks tried after dateLayouts.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses a date string in one of the accepted formats and returns
// it truncated to a calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range append(dateLayouts, isoLayouts...) {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

// DayCount returns the inclusive number of days between start and end.
// Inverted ranges are coerced to a single day rather than treated as errors.
func DayCount(start, end time.Time) int {
	n := int(end.Sub(start).Hours()/24) + 1
	if n <= 0 {
		return 1
	}
	return n
}

// DateRange is an inclusive calendar date span.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days is the inclusive length of the range.
func (r DateRange) Days() int {
	return DayCount(r.Start, r.End)
}

// splitRange cuts r into contiguous, non-overlapping sub-ranges of at most
// MaxChunkDays days, greedily from the start. The sub-ranges jointly cover r.
func splitRange(r DateRange) []DateRange {
	var chunks []DateRange
	start := r.Start
	for !start.After(r.End) {
		end := start.AddDate(0, 0, MaxChunkDays-1)
		if end.After(r.End) {
			end = r.End
		}
		chunks = append(chunks, DateRange{Start: start, End: end})
		start = end.AddDate(0, 0, 1)
	}
	return chunks
}
