package timetable

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"synchron/internal/bells"
)

// Source markers for the merged response.
const (
	// SourceNone signals total upstream failure; the client falls back to
	// bundled sample data.
	SourceNone = "none"
)

// Fetcher supplies the three upstream documents. The portal client
// implements it; tests substitute canned documents. Every method returns the
// decoded document, the raw body for diagnostic passthrough, and the name of
// the host that served it. A nil document means "no data", never an error.
type Fetcher interface {
	DayTimetable(ctx context.Context, date string) (*DayResponse, json.RawMessage, string)
	FullTimetable(ctx context.Context) (*FullResponse, json.RawMessage, string)
	Bells(ctx context.Context, date string) (*BellsResponse, json.RawMessage, string)
}

// Upstream carries the raw portal payloads through to the client for
// inspection.
type Upstream struct {
	Day   json.RawMessage `json:"day,omitempty"`
	Full  json.RawMessage `json:"full,omitempty"`
	Bells json.RawMessage `json:"bells,omitempty"`
}

// Result is the merged weekly schedule returned to clients.
type Result struct {
	Timetable       map[string][]Period         `json:"timetable"`
	TimetableByWeek map[string]*WeekBuckets     `json:"timetableByWeek"`
	WeekType        *string                     `json:"weekType"`
	BellTimes       map[string][]bells.BellTime `json:"bellTimes"`
	Source          string                      `json:"source"`
	Upstream        Upstream                    `json:"upstream"`
}

// Service runs the merge pipeline: fetch the three documents, seed the week
// from the cycle baseline, overlay the requested date's live data.
type Service struct {
	fetcher       Fetcher
	realPeriodMax int
	verbose       bool
}

func NewService(f Fetcher, realPeriodMax int, verbose bool) *Service {
	return &Service{fetcher: f, realPeriodMax: realPeriodMax, verbose: verbose}
}

// Schedule produces the merged weekly schedule for the requested date. It
// never fails: any subset of the upstream documents may be missing and the
// merge proceeds with whatever arrived, down to an all-empty schedule with
// Source "none".
func (s *Service) Schedule(ctx context.Context, date time.Time) *Result {
	var (
		wg                        sync.WaitGroup
		day                       *DayResponse
		full                      *FullResponse
		bellsDoc                  *BellsResponse
		dayRaw, fullRaw, bellsRaw json.RawMessage
		daySrc, fullSrc, bellsSrc string
	)
	dateStr := date.Format("2006-01-02")

	// The three documents are independent; fetch them concurrently. Host
	// fallback happens inside the fetcher, per document.
	wg.Add(3)
	go func() {
		defer wg.Done()
		day, dayRaw, daySrc = s.fetcher.DayTimetable(ctx, dateStr)
	}()
	go func() {
		defer wg.Done()
		full, fullRaw, fullSrc = s.fetcher.FullTimetable(ctx)
	}()
	go func() {
		defer wg.Done()
		bellsDoc, bellsRaw, bellsSrc = s.fetcher.Bells(ctx, dateStr)
	}()
	wg.Wait()

	dayNorm := NormalizeDay(day)
	byWeek := NormalizeCycle(full)

	res := &Result{
		Timetable:       make(map[string][]Period, len(Weekdays)),
		TimetableByWeek: byWeek,
		BellTimes:       bells.AllTimes(),
		Upstream:        Upstream{Day: dayRaw, Full: fullRaw, Bells: bellsRaw},
		Source:          firstNonEmpty(daySrc, fullSrc, bellsSrc, SourceNone),
	}
	if wt := dayNorm.WeekType; wt != "" {
		res.WeekType = &wt
	}

	// Seed every weekday from the cycle baseline.
	for _, wd := range Weekdays {
		res.Timetable[wd] = pickBucket(byWeek[wd], dayNorm.WeekType)
	}

	// The day document is authoritative for the requested date: overlay its
	// substitution-bearing periods, filtered down to actual classes, but
	// only if it produced any (an empty day keeps the cycle seed).
	if wd := weekdayName(date); wd != "" {
		real := make([]Period, 0, len(dayNorm.Periods))
		for _, p := range dayNorm.Periods {
			if RealPeriod(p.Period, s.realPeriodMax) {
				real = append(real, p)
			}
		}
		if len(real) > 0 {
			res.Timetable[wd] = real
		}
	}

	// Bell times: the requested date's pattern bucket is refreshed from
	// live data when any arrived; the other buckets keep the static tables.
	if pattern := bells.Pattern(date.Weekday()); pattern != "" {
		upstreamBells := dayNorm.Bells
		if len(upstreamBells) == 0 && bellsDoc != nil {
			upstreamBells = bellsDoc.Bells
		}
		if len(upstreamBells) > 0 {
			res.BellTimes[pattern] = toBellTimes(upstreamBells)
		}
	}

	if s.verbose {
		log.Printf("[timetable] %s: day=%s full=%s bells=%s weekType=%s periods=%d",
			dateStr, orNone(daySrc), orNone(fullSrc), orNone(bellsSrc), dayNorm.WeekType, len(dayNorm.Periods))
	}
	return res
}

// pickBucket selects a weekday's periods from its week-type buckets. The
// fallback chain is fixed: requested week type, then A, B, C, unknown.
func pickBucket(wb *WeekBuckets, weekType string) []Period {
	if wb == nil {
		return []Period{}
	}
	for _, ps := range [][]Period{wb.byType(weekType), wb.A, wb.B, wb.C, wb.Unknown} {
		if len(ps) > 0 {
			return ps
		}
	}
	return []Period{}
}

func (wb *WeekBuckets) byType(weekType string) []Period {
	switch weekType {
	case "A":
		return wb.A
	case "B":
		return wb.B
	case "C":
		return wb.C
	}
	return nil
}

func weekdayName(date time.Time) string {
	switch d := date.Weekday(); d {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		return d.String()
	}
	return ""
}

func toBellTimes(list []Bell) []bells.BellTime {
	out := make([]bells.BellTime, 0, len(list))
	for _, b := range list {
		label := b.BellDisplay
		if label == "" {
			label = b.Bell
		}
		bt := bells.BellTime{Period: label}
		if b.StartTime != "" && b.EndTime != "" {
			bt.Time = b.StartTime + " - " + b.EndTime
		}
		out = append(out, bt)
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func orNone(s string) string {
	if s == "" {
		return SourceNone
	}
	return s
}
