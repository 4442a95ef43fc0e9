// Package timetable normalizes the school portal's timetable documents into
// one self-consistent weekly schedule with substitute teachers and room
// changes overlaid.
package timetable

import "encoding/json"

// Period is the canonical schedule slot returned to clients. Overlay fields
// are present only when an actual variation applies; their absence (not a
// zero value) is the signal that nothing was overridden.
type Period struct {
	Period      string `json:"period"`
	Time        string `json:"time,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Teacher     string `json:"teacher,omitempty"`
	FullTeacher string `json:"fullTeacher,omitempty"`
	Room        string `json:"room,omitempty"`
	WeekType    string `json:"weekType,omitempty"`

	// Substitution overlay. Teacher/FullTeacher keep the rostered values;
	// DisplayTeacher is what the UI shows.
	Casual          string `json:"casual,omitempty"`
	CasualSurname   string `json:"casualSurname,omitempty"`
	IsSubstitute    bool   `json:"isSubstitute,omitempty"`
	OriginalTeacher string `json:"originalTeacher,omitempty"`
	DisplayTeacher  string `json:"displayTeacher,omitempty"`

	// Room-change overlay. Room keeps the rostered value.
	RoomTo       string `json:"roomTo,omitempty"`
	DisplayRoom  string `json:"displayRoom,omitempty"`
	IsRoomChange bool   `json:"isRoomChange,omitempty"`
}

// WeekBuckets groups one weekday's periods by week type, as derived from the
// cycle timetable.
type WeekBuckets struct {
	A       []Period `json:"A"`
	B       []Period `json:"B"`
	C       []Period `json:"C"`
	Unknown []Period `json:"unknown"`
}

// Bell is one named slot in the school day as the portal reports it.
type Bell struct {
	Bell        string `json:"bell"`
	BellDisplay string `json:"bellDisplay"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// DayInfo carries the portal's metadata about the requested date.
type DayInfo struct {
	Date     string `json:"date"`
	Day      string `json:"day"` // cycle day name, e.g. "MonA"
	WeekType string `json:"weekType"`
}

// DayResponse is the date-specific timetable document: the authoritative
// source for that date's substitutions and room changes. Several fields
// arrive as either keyed maps or arrays depending on the portal deployment,
// so they stay raw until Collect flattens them.
type DayResponse struct {
	Date            string          `json:"date"`
	Bells           []Bell          `json:"bells"`
	Timetable       json.RawMessage `json:"timetable"` // object, or false when there is no school
	ClassVariations json.RawMessage `json:"classVariations"`
	RoomVariations  json.RawMessage `json:"roomVariations"`
	DayInfo         DayInfo         `json:"dayInfo"`
}

// dayTimetable is the object form of DayResponse.Timetable.
type dayTimetable struct {
	Subjects  json.RawMessage `json:"subjects"`
	Timetable struct {
		Periods json.RawMessage `json:"periods"`
	} `json:"timetable"`
}

// RawPeriod is one upstream period record before normalization.
type RawPeriod struct {
	Period      string `json:"period"`
	Title       string `json:"title"`
	Teacher     string `json:"teacher"`
	FullTeacher string `json:"fullTeacher"`
	Room        string `json:"room"`
	Year        string `json:"year"`
}

// Subject is a subject-catalog entry; its Title is preferred over the raw
// period title for display.
type Subject struct {
	Title      string `json:"title"`
	ShortTitle string `json:"shortTitle"`
	Subject    string `json:"subject"`
	Year       string `json:"year"`
}

// Variation is a class or room variation record for one period on one date.
// Type "novariation" means the record exists but nothing actually changed.
type Variation struct {
	Period        string `json:"period"`
	Title         string `json:"title"`
	Subject       string `json:"subject"`
	Type          string `json:"type"`
	Teacher       string `json:"teacher"`
	Casual        string `json:"casual"`
	CasualSurname string `json:"casualSurname"`
	RoomFrom      string `json:"roomFrom"`
	RoomTo        string `json:"roomTo"`
}

// FullResponse is the cycle timetable document: the unvaried baseline
// spanning the whole instructional cycle, not tied to a date.
type FullResponse struct {
	Days     json.RawMessage `json:"days"`
	Subjects json.RawMessage `json:"subjects"`
}

// cycleDay is one entry of FullResponse.Days.
type cycleDay struct {
	DayName string          `json:"dayname"`
	Periods json.RawMessage `json:"periods"`
	Routine string          `json:"routine"`
}

// BellsResponse is the dedicated bell-times document.
type BellsResponse struct {
	Day   string `json:"day"`
	Bells []Bell `json:"bells"`
}

// Weekdays lists the school week in order. Saturday and Sunday carry no
// classes and are not represented.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var shortWeekdays = map[string]string{
	"mon": "Monday",
	"tue": "Tuesday",
	"wed": "Wednesday",
	"thu": "Thursday",
	"fri": "Friday",
}
