package timetable

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// DaySchedule is the normalized view of one date's timetable document.
type DaySchedule struct {
	Periods  []Period
	WeekType string
	Bells    []Bell
}

// NormalizeDay flattens a day-timetable document into an ordered period list
// with substitutions and room changes already overlaid. A nil document, or
// one whose timetable field is false or absent (no school that day), yields
// an empty period list without error.
func NormalizeDay(doc *DayResponse) DaySchedule {
	if doc == nil {
		return DaySchedule{}
	}
	out := DaySchedule{
		WeekType: dayWeekType(doc.DayInfo),
		Bells:    doc.Bells,
	}

	var dt dayTimetable
	trimmed := bytes.TrimSpace(doc.Timetable)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return out // false, null or absent: no classes today
	}
	if err := json.Unmarshal(trimmed, &dt); err != nil {
		return out
	}

	subjects := indexSubjects(dt.Subjects)
	periods := decodePeriods(dt.Timetable.Periods)
	classVars := decodeVariations(doc.ClassVariations)
	roomVars := decodeVariations(doc.RoomVariations)

	slots := dayBellSlots(doc.Bells, periods)
	out.Periods = make([]Period, 0, len(slots))
	for _, bell := range slots {
		raw := findPeriod(periods, bell.Bell)
		var subj *Subject
		if raw != nil {
			subj = subjects.lookup(raw.Title)
		}
		classVar := findVariation(classVars, bell.Bell)
		roomVar := findVariation(roomVars, bell.Bell)
		out.Periods = append(out.Periods, TransformPeriod(bell, raw, subj, classVar, roomVar, out.WeekType))
	}
	return out
}

// dayBellSlots decides what slots the day covers: the document's bell list
// when present, otherwise one synthetic slot per period record so a missing
// bell list doesn't wipe the whole day.
func dayBellSlots(bellList []Bell, periods []periodEntry) []Bell {
	if len(bellList) > 0 {
		return bellList
	}
	slots := make([]Bell, 0, len(periods))
	for _, pe := range periods {
		slots = append(slots, Bell{Bell: pe.label})
	}
	return slots
}

// NormalizeCycle buckets a full-cycle document's periods per weekday and
// week type. The cycle document is the unvaried baseline: it carries no
// variations and no clock times. All five weekdays are always present in
// the result.
func NormalizeCycle(doc *FullResponse) map[string]*WeekBuckets {
	buckets := make(map[string]*WeekBuckets, len(Weekdays))
	for _, wd := range Weekdays {
		buckets[wd] = &WeekBuckets{
			A:       []Period{},
			B:       []Period{},
			C:       []Period{},
			Unknown: []Period{},
		}
	}
	if doc == nil {
		return buckets
	}

	subjects := indexSubjects(doc.Subjects)
	for _, entry := range Collect(doc.Days) {
		var cd cycleDay
		if err := json.Unmarshal(entry.Value, &cd); err != nil {
			continue
		}
		weekday, weekType := SplitCycleDay(cd.DayName)
		wb, ok := buckets[weekday]
		if !ok {
			continue
		}
		var ps []Period
		for _, pe := range decodePeriods(cd.Periods) {
			subj := subjects.lookup(pe.raw.Title)
			ps = append(ps, TransformPeriod(Bell{Bell: pe.label}, &pe.raw, subj, nil, nil, weekType))
		}
		switch weekType {
		case "A":
			wb.A = append(wb.A, ps...)
		case "B":
			wb.B = append(wb.B, ps...)
		case "C":
			wb.C = append(wb.C, ps...)
		default:
			wb.Unknown = append(wb.Unknown, ps...)
		}
	}
	return buckets
}

// SplitCycleDay splits a cycle day name like "MonA" into the full weekday
// name and the week-type letter. Unrecognized parts come back empty.
func SplitCycleDay(name string) (weekday, weekType string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ""
	}
	if last := trimmed[len(trimmed)-1]; last >= 'A' && last <= 'C' {
		weekType = string(last)
		trimmed = trimmed[:len(trimmed)-1]
	}
	lower := strings.ToLower(trimmed)
	for short, full := range shortWeekdays {
		if strings.HasPrefix(lower, short) {
			return full, weekType
		}
	}
	return "", weekType
}

// dayWeekType derives the week type for a date from its dayInfo, preferring
// the explicit field over the day-name suffix.
func dayWeekType(info DayInfo) string {
	wt := strings.ToUpper(strings.TrimSpace(info.WeekType))
	if wt == "A" || wt == "B" || wt == "C" {
		return wt
	}
	_, wt = SplitCycleDay(info.Day)
	return wt
}

// RealPeriod reports whether a period label denotes an actual teaching
// period rather than roll call, recess or a transition slot: its numeric
// key must parse as an integer in [0, max].
func RealPeriod(label string, max int) bool {
	n, err := strconv.Atoi(strings.TrimSpace(label))
	return err == nil && n >= 0 && n <= max
}

// periodEntry pairs a raw period record with the label it was keyed under.
type periodEntry struct {
	label string
	raw   RawPeriod
}

func decodePeriods(raw json.RawMessage) []periodEntry {
	entries := Collect(raw)
	out := make([]periodEntry, 0, len(entries))
	for _, e := range entries {
		var rp RawPeriod
		if err := json.Unmarshal(e.Value, &rp); err != nil {
			continue
		}
		label := e.Key
		if label == "" {
			label = rp.Period
		}
		if label == "" {
			label = rp.Title
		}
		if label == "" {
			continue
		}
		out = append(out, periodEntry{label: label, raw: rp})
	}
	return out
}

func findPeriod(periods []periodEntry, label string) *RawPeriod {
	for i := range periods {
		if LabelsMatch(periods[i].label, label) {
			return &periods[i].raw
		}
	}
	return nil
}

func decodeVariations(raw json.RawMessage) []Variation {
	entries := Collect(raw)
	out := make([]Variation, 0, len(entries))
	for _, e := range entries {
		var v Variation
		if err := json.Unmarshal(e.Value, &v); err != nil {
			continue
		}
		if v.Period == "" {
			v.Period = e.Key
		}
		out = append(out, v)
	}
	return out
}

// subjectIndex resolves raw period titles to catalog entries by normalized
// label equality.
type subjectIndex map[string]*Subject

func indexSubjects(raw json.RawMessage) subjectIndex {
	idx := make(subjectIndex)
	for _, e := range Collect(raw) {
		var s Subject
		if err := json.Unmarshal(e.Value, &s); err != nil {
			continue
		}
		subj := s
		for _, key := range []string{e.Key, s.ShortTitle, s.Subject} {
			if nk := NormalizeLabel(key); nk != "" {
				if _, taken := idx[nk]; !taken {
					idx[nk] = &subj
				}
			}
		}
	}
	return idx
}

func (idx subjectIndex) lookup(title string) *Subject {
	if idx == nil {
		return nil
	}
	return idx[NormalizeLabel(title)]
}
