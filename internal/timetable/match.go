package timetable

import (
	"regexp"
	"strings"
)

// The portal is not consistent about period labels: the same slot shows up
// as "Period 3", "P3" or "3" depending on which document produced it, so
// matching variations to periods has to be fuzzy. All matching goes through
// this file; there is exactly one copy of the logic.

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	digitRun = regexp.MustCompile(`[0-9]+`)
)

// NormalizeLabel lowercases a label and strips everything that is not a
// letter or digit, so "Period 3" and "period3" compare equal.
func NormalizeLabel(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}

func firstDigits(s string) string {
	return digitRun.FindString(s)
}

// LabelsMatch reports whether two period labels refer to the same slot.
// Tiers, first hit wins:
//  1. normalized-label equality
//  2. first-digit-run equality ("Period 3" vs "3")
//  3. bidirectional containment of the normalized forms ("rc" vs "rollcall
//     rc"), both sides non-empty
func LabelsMatch(a, b string) bool {
	na, nb := NormalizeLabel(a), NormalizeLabel(b)
	if na != "" && na == nb {
		return true
	}
	if da, db := firstDigits(na), firstDigits(nb); da != "" && db != "" && da == db {
		return true
	}
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// label returns the key the variation was published under.
func (v Variation) label() string {
	if v.Period != "" {
		return v.Period
	}
	return v.Title
}

// MatchesPeriod reports whether the variation applies to a period label.
// This is the production-path test: period label only.
func (v Variation) MatchesPeriod(periodLabel string) bool {
	key := v.label()
	if key == "" || periodLabel == "" {
		return false
	}
	return LabelsMatch(key, periodLabel)
}

// MatchesPeriodAndSubject is the stricter test used by the mapping
// endpoints: when the variation names a subject, the subject text must also
// line up before the period match is accepted.
func (v Variation) MatchesPeriodAndSubject(periodLabel, subject string) bool {
	if !v.MatchesPeriod(periodLabel) {
		return false
	}
	if v.Subject == "" {
		return true
	}
	na, nb := NormalizeLabel(v.Subject), NormalizeLabel(subject)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}

// findVariation returns the first variation matching the period label, or
// nil when none applies.
func findVariation(vars []Variation, periodLabel string) *Variation {
	for i := range vars {
		if vars[i].MatchesPeriod(periodLabel) {
			return &vars[i]
		}
	}
	return nil
}
