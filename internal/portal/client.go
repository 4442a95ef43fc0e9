// Package portal fetches timetable documents from the school's portal
// hosts. Every fetch is best-effort: hosts are tried in priority order and
// any failure degrades to "no data" rather than an error, because the
// pipeline downstream merges whatever subset of documents arrived.
package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"synchron/internal/cache"
	"synchron/internal/timetable"
)

// TokenProvider supplies the bearer token for portal requests. Token
// exchange and refresh live in the auth service; this package only ever
// sees an opaque access token.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider returning a fixed token. The empty token
// sends unauthenticated requests.
type StaticToken string

func (t StaticToken) AccessToken(context.Context) (string, error) {
	return string(t), nil
}

// Host is one upstream base URL with the name reported as the document
// source.
type Host struct {
	Name    string
	BaseURL string
}

// Client fetches portal documents with host fallback and an optional
// document cache in front.
type Client struct {
	hosts   []Host
	http    *http.Client
	tokens  TokenProvider
	docs    *cache.Cache
	verbose bool
}

func NewClient(hosts []Host, tokens TokenProvider, docs *cache.Cache, timeout time.Duration, verbose bool) *Client {
	return &Client{
		hosts:   hosts,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		docs:    docs,
		verbose: verbose,
	}
}

// DayTimetable fetches the date-specific timetable document.
func (c *Client) DayTimetable(ctx context.Context, date string) (*timetable.DayResponse, json.RawMessage, string) {
	body, src := c.Fetch(ctx, "/timetable/daytimetable.json?date="+date, "day:"+date)
	if body == nil {
		return nil, nil, ""
	}
	var doc timetable.DayResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		log.Printf("[portal] decode day timetable: %v", err)
		return nil, nil, ""
	}
	return &doc, body, src
}

// FullTimetable fetches the cycle timetable document.
func (c *Client) FullTimetable(ctx context.Context) (*timetable.FullResponse, json.RawMessage, string) {
	body, src := c.Fetch(ctx, "/timetable/timetable.json", "full")
	if body == nil {
		return nil, nil, ""
	}
	var doc timetable.FullResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		log.Printf("[portal] decode full timetable: %v", err)
		return nil, nil, ""
	}
	return &doc, body, src
}

// Bells fetches the bell-times document for a date.
func (c *Client) Bells(ctx context.Context, date string) (*timetable.BellsResponse, json.RawMessage, string) {
	body, src := c.Fetch(ctx, "/timetable/bells.json?date="+date, "bells:"+date)
	if body == nil {
		return nil, nil, ""
	}
	var doc timetable.BellsResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		log.Printf("[portal] decode bells: %v", err)
		return nil, nil, ""
	}
	return &doc, body, src
}

// Fetch returns the first valid JSON body for the path, trying the document
// cache, then each host in priority order. It returns nil and "" when every
// host failed; failures are logged, never raised.
func (c *Client) Fetch(ctx context.Context, path, cacheKey string) ([]byte, string) {
	if cacheKey != "" {
		if body := c.docs.GetDoc(ctx, cacheKey); body != nil {
			return body, "cache"
		}
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		log.Printf("[portal] access token: %v", err)
		token = ""
	}

	for _, h := range c.hosts {
		body, err := c.get(ctx, h.BaseURL+path, token)
		if err != nil {
			log.Printf("[portal] %s %s: %v", h.Name, path, err)
			continue
		}
		if c.verbose {
			log.Printf("[portal] %s %s: %d bytes", h.Name, path, len(body))
		}
		if cacheKey != "" {
			c.docs.SetDoc(ctx, cacheKey, body)
		}
		return body, h.Name
	}
	return nil, ""
}

func (c *Client) get(ctx context.Context, url, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	// The portal answers some expired sessions with an HTML login page and a
	// 200; treat anything that isn't JSON as unavailable.
	if !json.Valid(body) {
		return nil, fmt.Errorf("GET %s: non-JSON body", url)
	}
	return body, nil
}
