package timetable

import "testing"

func TestFormatCasual(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "surname plus initial", code: "likourezosv", want: "V Likourezos."},
		{name: "uppercase input", code: "SMITHJ", want: "J Smith."},
		{name: "single character", code: "x", want: "X."},
		{name: "empty", code: "", want: ""},
		{name: "whitespace only", code: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCasual(tt.code); got != tt.want {
				t.Errorf("FormatCasual(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestTransformPeriodSubjectPreference(t *testing.T) {
	bell := Bell{Bell: "1", BellDisplay: "Period 1", StartTime: "9:05", EndTime: "10:05"}

	t.Run("catalog title wins", func(t *testing.T) {
		p := TransformPeriod(bell, &RawPeriod{Title: "10MaA"}, &Subject{Title: "Mathematics Advanced"}, nil, nil, "A")
		if p.Subject != "Mathematics Advanced" {
			t.Errorf("subject = %q, want catalog title", p.Subject)
		}
	})

	t.Run("raw title prefixed by year", func(t *testing.T) {
		p := TransformPeriod(bell, &RawPeriod{Title: "MaA", Year: "10"}, nil, nil, nil, "A")
		if p.Subject != "10 MaA" {
			t.Errorf("subject = %q, want %q", p.Subject, "10 MaA")
		}
	})

	t.Run("year already in title", func(t *testing.T) {
		p := TransformPeriod(bell, &RawPeriod{Title: "10MaA", Year: "10"}, nil, nil, nil, "A")
		if p.Subject != "10MaA" {
			t.Errorf("subject = %q, want %q", p.Subject, "10MaA")
		}
	})

	t.Run("bell display fallback", func(t *testing.T) {
		p := TransformPeriod(bell, nil, nil, nil, nil, "")
		if p.Subject != "Period 1" {
			t.Errorf("subject = %q, want bell display name", p.Subject)
		}
		if p.Time != "9:05 - 10:05" {
			t.Errorf("time = %q, want %q", p.Time, "9:05 - 10:05")
		}
	})
}

func TestTransformPeriodSubstitution(t *testing.T) {
	bell := Bell{Bell: "3", StartTime: "11:30", EndTime: "12:30"}
	raw := &RawPeriod{Title: "HIS B", Teacher: "ABC", FullTeacher: "A Teacher", Room: "201"}

	t.Run("casual surname preferred", func(t *testing.T) {
		v := &Variation{Period: "3", Casual: "likourezosv", CasualSurname: "Likourezos"}
		p := TransformPeriod(bell, raw, nil, v, nil, "A")
		if !p.IsSubstitute {
			t.Fatal("IsSubstitute = false, want true")
		}
		if p.DisplayTeacher != "Likourezos" {
			t.Errorf("DisplayTeacher = %q, want casual surname", p.DisplayTeacher)
		}
		if p.OriginalTeacher != "A Teacher" {
			t.Errorf("OriginalTeacher = %q, want pre-overlay teacher", p.OriginalTeacher)
		}
		if p.Teacher != "ABC" || p.FullTeacher != "A Teacher" {
			t.Errorf("rostered teacher fields changed: %q / %q", p.Teacher, p.FullTeacher)
		}
	})

	t.Run("formatted casual code without surname", func(t *testing.T) {
		v := &Variation{Period: "3", Casual: "likourezosv"}
		p := TransformPeriod(bell, raw, nil, v, nil, "A")
		if p.DisplayTeacher != "V Likourezos." {
			t.Errorf("DisplayTeacher = %q, want %q", p.DisplayTeacher, "V Likourezos.")
		}
	})

	t.Run("no casual at all", func(t *testing.T) {
		v := &Variation{Period: "3"}
		p := TransformPeriod(bell, raw, nil, v, nil, "A")
		if p.DisplayTeacher != "No one" {
			t.Errorf("DisplayTeacher = %q, want %q", p.DisplayTeacher, "No one")
		}
	})

	t.Run("novariation type leaves period untouched", func(t *testing.T) {
		v := &Variation{Period: "3", Type: "novariation", Casual: "likourezosv"}
		p := TransformPeriod(bell, raw, nil, v, nil, "A")
		if p.IsSubstitute || p.DisplayTeacher != "" || p.OriginalTeacher != "" {
			t.Errorf("novariation applied an overlay: %+v", p)
		}
	})

	t.Run("short teacher code as original", func(t *testing.T) {
		v := &Variation{Period: "3", CasualSurname: "Likourezos"}
		p := TransformPeriod(bell, &RawPeriod{Title: "HIS B", Teacher: "ABC"}, nil, v, nil, "A")
		if p.OriginalTeacher != "ABC" {
			t.Errorf("OriginalTeacher = %q, want short code fallback", p.OriginalTeacher)
		}
	})
}

func TestTransformPeriodRoomChange(t *testing.T) {
	bell := Bell{Bell: "3", StartTime: "11:30", EndTime: "12:30"}
	raw := &RawPeriod{Title: "HIS B", Room: "201"}

	t.Run("genuine change", func(t *testing.T) {
		v := &Variation{Period: "3", RoomTo: "203"}
		p := TransformPeriod(bell, raw, nil, nil, v, "A")
		if !p.IsRoomChange || p.DisplayRoom != "203" || p.RoomTo != "203" {
			t.Errorf("room change not applied: %+v", p)
		}
		if p.Room != "201" {
			t.Errorf("rostered room changed to %q", p.Room)
		}
	})

	t.Run("same room is not a change", func(t *testing.T) {
		v := &Variation{Period: "3", RoomTo: "201"}
		p := TransformPeriod(bell, raw, nil, nil, v, "A")
		if p.IsRoomChange || p.DisplayRoom != "" {
			t.Errorf("spurious room change: %+v", p)
		}
	})

	t.Run("same room case-insensitive", func(t *testing.T) {
		v := &Variation{Period: "3", RoomTo: "b12"}
		p := TransformPeriod(bell, &RawPeriod{Room: "B12"}, nil, nil, v, "A")
		if p.IsRoomChange {
			t.Errorf("spurious room change: %+v", p)
		}
	})

	t.Run("empty roomTo ignored", func(t *testing.T) {
		v := &Variation{Period: "3"}
		p := TransformPeriod(bell, raw, nil, nil, v, "A")
		if p.IsRoomChange || p.DisplayRoom != "" {
			t.Errorf("spurious room change: %+v", p)
		}
	})
}
