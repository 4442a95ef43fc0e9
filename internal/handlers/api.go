package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"

	"synchron/internal/bells"
	"synchron/internal/portal"
	"synchron/internal/timetable"
)

// Handlers holds the API dependencies.
type Handlers struct {
	Schedule *timetable.Service
	Portal   *portal.Client

	// In-memory cache of merged schedules, keyed by date.
	respCache *gocache.Cache
}

func New(schedule *timetable.Service, p *portal.Client, cacheTTL time.Duration) *Handlers {
	return &Handlers{
		Schedule:  schedule,
		Portal:    p,
		respCache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// GetTimetable handles GET /api/timetable?date=YYYY-MM-DD. The date defaults
// to today. The merge itself never fails; total upstream failure comes back
// as an empty schedule with source "none".
func (h *Handlers) GetTimetable(c *fiber.Ctx) error {
	date, err := queryDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date, want YYYY-MM-DD"})
	}

	key := "timetable:" + date.Format("2006-01-02")
	if cached, found := h.respCache.Get(key); found {
		return c.JSON(cached)
	}

	res := h.Schedule.Schedule(context.Background(), date)
	if res.Source != timetable.SourceNone {
		h.respCache.Set(key, res, gocache.DefaultExpiration)
	}
	return c.JSON(res)
}

// GetBells handles GET /api/bells?date=YYYY-MM-DD: the bell table for the
// date's day pattern, with the slot currently in progress marked.
func (h *Handlers) GetBells(c *fiber.Ctx) error {
	date, err := queryDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date, want YYYY-MM-DD"})
	}

	pattern := bells.Pattern(date.Weekday())
	if pattern == "" {
		return c.JSON(fiber.Map{"day": nil, "bells": []bells.BellTime{}, "current": nil})
	}

	table := bells.Times(pattern)
	now := time.Now()
	var current interface{}
	for _, bt := range table {
		r := timetable.ParseTimeRange(bt.Time, date)
		if r.Unknown() {
			continue
		}
		if !now.Before(r.Start) && now.Before(r.End) {
			current = bt.Period
			break
		}
	}

	return c.JSON(fiber.Map{"day": pattern, "bells": table, "current": current})
}

// Proxy forwards GET /api/portal/* to the portal hosts with the usual host
// fallback, for the documents the UI renders without normalization (awards,
// notices, calendar). Only known document roots are forwarded.
func (h *Handlers) Proxy(c *fiber.Ctx) error {
	path := c.Params("*")
	if !allowedProxyPath(path) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown portal document"})
	}
	if qs := string(c.Request().URI().QueryString()); qs != "" {
		path += "?" + qs
	}

	body, src := h.Portal.Fetch(context.Background(), "/"+path, "")
	if body == nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "portal unavailable"})
	}

	c.Set("Content-Type", "application/json")
	c.Set("X-Synchron-Source", src)
	return c.Send(body)
}

// Health handles GET /api/health.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

var proxyRoots = []string{"details", "awards", "diarycalendar", "dailynews"}

func allowedProxyPath(path string) bool {
	for _, root := range proxyRoots {
		if path == root || strings.HasPrefix(path, root+"/") {
			return true
		}
	}
	return false
}

func queryDate(c *fiber.Ctx) (time.Time, error) {
	if v := c.Query("date"); v != "" {
		return time.ParseInLocation("2006-01-02", v, time.Local)
	}
	return time.Now(), nil
}
