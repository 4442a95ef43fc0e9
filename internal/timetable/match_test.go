package timetable

import "testing"

func TestLabelsMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "3", b: "3", want: true},
		{name: "normalized equality", a: "Period 3", b: "period3", want: true},
		{name: "case and punctuation ignored", a: "R.C.", b: "rc", want: true},
		{name: "digit run equality", a: "Period 3", b: "3", want: true},
		{name: "digit run with prefix", a: "P3", b: "3", want: true},
		{name: "different digits", a: "Period 3", b: "4", want: false},
		{name: "containment", a: "1", b: "11", want: true},
		{name: "label containment", a: "rollcall rc", b: "rc", want: true},
		{name: "unrelated labels", a: "recess", b: "lunch", want: false},
		{name: "both empty", a: "", b: "", want: false},
		{name: "one empty", a: "3", b: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelsMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("LabelsMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Matching is pure: the same inputs always decide the same way.
			if again := LabelsMatch(tt.a, tt.b); again != tt.want {
				t.Errorf("LabelsMatch(%q, %q) second call = %v, want %v", tt.a, tt.b, again, tt.want)
			}
		})
	}
}

func TestVariationMatchesPeriod(t *testing.T) {
	tests := []struct {
		name   string
		v      Variation
		label  string
		want   bool
	}{
		{name: "period key", v: Variation{Period: "3"}, label: "Period 3", want: true},
		{name: "title fallback key", v: Variation{Title: "P4"}, label: "4", want: true},
		{name: "period preferred over title", v: Variation{Period: "3", Title: "P4"}, label: "4", want: false},
		{name: "keyless variation never matches", v: Variation{}, label: "3", want: false},
		{name: "empty period label never matches", v: Variation{Period: "3"}, label: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.MatchesPeriod(tt.label); got != tt.want {
				t.Errorf("MatchesPeriod(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestVariationMatchesPeriodAndSubject(t *testing.T) {
	tests := []struct {
		name    string
		v       Variation
		label   string
		subject string
		want    bool
	}{
		{name: "no subject on variation", v: Variation{Period: "3"}, label: "3", subject: "HIS B", want: true},
		{name: "subject equality", v: Variation{Period: "3", Subject: "HIS B"}, label: "3", subject: "his b", want: true},
		{name: "subject containment", v: Variation{Period: "3", Subject: "HIS"}, label: "3", subject: "HIS B", want: true},
		{name: "subject mismatch", v: Variation{Period: "3", Subject: "MAT"}, label: "3", subject: "HIS B", want: false},
		{name: "subject gate with empty period subject", v: Variation{Period: "3", Subject: "HIS"}, label: "3", subject: "", want: false},
		{name: "period mismatch short-circuits", v: Variation{Period: "4", Subject: "HIS"}, label: "3", subject: "HIS", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.MatchesPeriodAndSubject(tt.label, tt.subject); got != tt.want {
				t.Errorf("MatchesPeriodAndSubject(%q, %q) = %v, want %v", tt.label, tt.subject, got, tt.want)
			}
		})
	}
}
