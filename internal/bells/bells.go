// Package bells holds the static bell schedule for the three day patterns
// the school runs: Monday/Tuesday, Wednesday/Thursday, and Friday (late
// start). Afternoon times follow the portal convention of omitting the
// 24-hour offset, so "1:10" means 13:10.
package bells

import "time"

// Day pattern bucket names, as the portal and the UI refer to them.
const (
	PatternMonTue = "Mon/Tues"
	PatternWedThu = "Wed/Thurs"
	PatternFri    = "Fri"
)

// BellTime is one labelled slot with its display time range.
type BellTime struct {
	Period string `json:"period"`
	Time   string `json:"time"`
}

var monTue = []BellTime{
	{Period: "RC", Time: "9:00 - 9:05"},
	{Period: "1", Time: "9:05 - 10:05"},
	{Period: "2", Time: "10:10 - 11:10"},
	{Period: "Recess", Time: "11:10 - 11:30"},
	{Period: "3", Time: "11:30 - 12:30"},
	{Period: "Lunch 1", Time: "12:30 - 12:50"},
	{Period: "Lunch 2", Time: "12:50 - 1:10"},
	{Period: "4", Time: "1:10 - 2:10"},
	{Period: "5", Time: "2:15 - 3:15"},
	{Period: "End of Day", Time: "3:15 - 3:15"},
}

var wedThu = []BellTime{
	{Period: "RC", Time: "9:00 - 9:05"},
	{Period: "1", Time: "9:05 - 10:05"},
	{Period: "2", Time: "10:10 - 11:10"},
	{Period: "Recess", Time: "11:10 - 11:30"},
	{Period: "3", Time: "11:30 - 12:30"},
	{Period: "Lunch 1", Time: "12:30 - 12:50"},
	{Period: "Lunch 2", Time: "12:50 - 1:10"},
	{Period: "4", Time: "1:10 - 2:10"},
	{Period: "5", Time: "2:15 - 3:15"},
	{Period: "End of Day", Time: "3:15 - 3:15"},
}

// Friday starts late so staff can meet before school.
var fri = []BellTime{
	{Period: "RC", Time: "9:25 - 9:30"},
	{Period: "1", Time: "9:30 - 10:25"},
	{Period: "2", Time: "10:30 - 11:25"},
	{Period: "Recess", Time: "11:25 - 11:45"},
	{Period: "3", Time: "11:45 - 12:40"},
	{Period: "Lunch 1", Time: "12:40 - 1:00"},
	{Period: "Lunch 2", Time: "1:00 - 1:20"},
	{Period: "4", Time: "1:20 - 2:15"},
	{Period: "5", Time: "2:20 - 3:15"},
	{Period: "End of Day", Time: "3:15 - 3:15"},
}

// Pattern returns the day-pattern bucket name for a weekday, or "" for
// weekends.
func Pattern(d time.Weekday) string {
	switch d {
	case time.Monday, time.Tuesday:
		return PatternMonTue
	case time.Wednesday, time.Thursday:
		return PatternWedThu
	case time.Friday:
		return PatternFri
	default:
		return ""
	}
}

// Times returns a copy of the static bell table for a pattern, or nil for an
// unknown pattern name.
func Times(pattern string) []BellTime {
	var src []BellTime
	switch pattern {
	case PatternMonTue:
		src = monTue
	case PatternWedThu:
		src = wedThu
	case PatternFri:
		src = fri
	default:
		return nil
	}
	out := make([]BellTime, len(src))
	copy(out, src)
	return out
}

// AllTimes returns all three pattern tables keyed by bucket name.
func AllTimes() map[string][]BellTime {
	return map[string][]BellTime{
		PatternMonTue: Times(PatternMonTue),
		PatternWedThu: Times(PatternWedThu),
		PatternFri:    Times(PatternFri),
	}
}
