package bells

import (
	"testing"
	"time"
)

func TestPattern(t *testing.T) {
	tests := []struct {
		day  time.Weekday
		want string
	}{
		{day: time.Monday, want: PatternMonTue},
		{day: time.Tuesday, want: PatternMonTue},
		{day: time.Wednesday, want: PatternWedThu},
		{day: time.Thursday, want: PatternWedThu},
		{day: time.Friday, want: PatternFri},
		{day: time.Saturday, want: ""},
		{day: time.Sunday, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.day.String(), func(t *testing.T) {
			if got := Pattern(tt.day); got != tt.want {
				t.Errorf("Pattern(%v) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}
}

func TestTimes(t *testing.T) {
	for _, pattern := range []string{PatternMonTue, PatternWedThu, PatternFri} {
		ts := Times(pattern)
		if len(ts) == 0 {
			t.Errorf("Times(%q) is empty", pattern)
		}
	}
	if Times("nope") != nil {
		t.Error("unknown pattern should yield nil")
	}

	// Callers get a copy, not the shared table.
	a := Times(PatternFri)
	a[0].Period = "mutated"
	if b := Times(PatternFri); b[0].Period == "mutated" {
		t.Error("Times returned the shared backing slice")
	}
}

func TestAllTimes(t *testing.T) {
	all := AllTimes()
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for _, pattern := range []string{PatternMonTue, PatternWedThu, PatternFri} {
		if len(all[pattern]) == 0 {
			t.Errorf("missing bucket %q", pattern)
		}
	}
}
