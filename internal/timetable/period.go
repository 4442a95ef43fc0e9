package timetable

import "strings"

// noCasualName is shown when a substitution has neither a surname nor a
// casual code attached.
const noCasualName = "No one"

// FormatCasual renders a casual teacher's login code as a display name. The
// code's last character is the given-name initial and the leading characters
// are the surname: "likourezosv" becomes "V Likourezos.". Empty input
// returns "".
func FormatCasual(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	runes := []rune(code)
	initial := strings.ToUpper(string(runes[len(runes)-1]))
	if len(runes) == 1 {
		return initial + "."
	}
	surname := string(runes[:len(runes)-1])
	surname = strings.ToUpper(surname[:1]) + strings.ToLower(surname[1:])
	return initial + " " + surname + "."
}

// TransformPeriod builds one normalized Period from a bell slot, its raw
// period record, and whatever subject-catalog and variation records matched
// it. Any of raw, subj, classVar and roomVar may be nil.
//
// Rostered Teacher/FullTeacher/Room values are never overwritten; overlays
// surface only through the display fields and their flags.
func TransformPeriod(bell Bell, raw *RawPeriod, subj *Subject, classVar, roomVar *Variation, weekType string) Period {
	p := Period{Period: bell.Bell, WeekType: weekType}
	if bell.StartTime != "" && bell.EndTime != "" {
		p.Time = bell.StartTime + " - " + bell.EndTime
	}

	switch {
	case subj != nil && subj.Title != "":
		p.Subject = subj.Title
	case raw != nil && raw.Title != "":
		p.Subject = raw.Title
		if raw.Year != "" && !strings.HasPrefix(raw.Title, raw.Year) {
			p.Subject = raw.Year + " " + raw.Title
		}
	default:
		p.Subject = bell.BellDisplay
	}

	if raw != nil {
		p.Teacher = raw.Teacher
		p.FullTeacher = raw.FullTeacher
		p.Room = raw.Room
	}

	if classVar != nil && classVar.Type != "novariation" {
		base := p.FullTeacher
		if base == "" {
			base = p.Teacher
		}
		p.IsSubstitute = true
		p.Casual = classVar.Casual
		p.CasualSurname = classVar.CasualSurname
		p.OriginalTeacher = base
		switch {
		case classVar.CasualSurname != "":
			p.DisplayTeacher = classVar.CasualSurname
		case FormatCasual(classVar.Casual) != "":
			p.DisplayTeacher = FormatCasual(classVar.Casual)
		default:
			p.DisplayTeacher = noCasualName
		}
	}

	// Room changes must be genuine: a variation pointing at the room the
	// class is already in is not a change.
	if roomVar != nil && roomVar.RoomTo != "" && !strings.EqualFold(roomVar.RoomTo, p.Room) {
		p.RoomTo = roomVar.RoomTo
		p.DisplayRoom = roomVar.RoomTo
		p.IsRoomChange = true
	}

	return p
}
