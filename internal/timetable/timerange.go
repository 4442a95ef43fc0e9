package timetable

import (
	"strconv"
	"strings"
	"time"
)

// TimeRange is a same-day start/end pair anchored to a calendar date.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Unknown reports whether the range came from unparseable input. Unknown
// ranges compare as "not yet started" against any realistic clock.
func (r TimeRange) Unknown() bool {
	return r.Start.Equal(r.End) && r.Start.Year() >= sentinelYear
}

const sentinelYear = 9999

func sentinelRange(anchor time.Time) TimeRange {
	far := time.Date(sentinelYear, time.December, 31, 23, 59, 0, 0, anchor.Location())
	return TimeRange{Start: far, End: far}
}

// ParseTimeRange parses a portal time range of the form "H:MM - H:MM",
// anchored to anchor's calendar date. The portal reports some afternoon
// times without the 24-hour offset, so hours 1 through 7 are read as PM;
// hour 8 and above (and 0) are taken as already 24-hour.
//
// Malformed input yields a far-future sentinel for both ends rather than an
// error, so "now before start" checks degrade to "not yet started".
func ParseTimeRange(s string, anchor time.Time) TimeRange {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return sentinelRange(anchor)
	}
	start, ok := parseClock(parts[0], anchor)
	if !ok {
		return sentinelRange(anchor)
	}
	end, ok := parseClock(parts[1], anchor)
	if !ok {
		return sentinelRange(anchor)
	}
	return TimeRange{Start: start, End: end}
}

func parseClock(s string, anchor time.Time) (time.Time, bool) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) != 2 {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	// School hours 1-7 arrive without the PM offset.
	if hour >= 1 && hour <= 7 {
		hour += 12
	}
	return time.Date(anchor.Year(), anchor.Month(), anchor.Day(), hour, minute, 0, 0, anchor.Location()), true
}
