// Package router maps (verb, path) pairs onto repository and service
// operations — a REST-shaped surface with no network underneath. Rules live
// in one statically ordered table: the first matching rule wins, so
// registration order encodes priority and specific sub-resource rules must be
// registered before their generic collection rules. Patterns anchor on whole
// path segments, never substrings.
package router

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"depot/internal/config"
	"depot/internal/infra"
	"depot/internal/repository"
	"depot/internal/service"

	"github.com/rs/zerolog/log"
)

// Verb is the dispatcher's operation kind.
type Verb string

const (
	Read   Verb = "read"
	Create Verb = "create"
	Update Verb = "update"
	Delete Verb = "delete"
)

// Empty is the result of an unmatched route and of failed lookups: a normal,
// successful, contentless resolution. Callers must probe the payload shape —
// "not found" is observationally identical to "no data".
func Empty() map[string]any { return map[string]any{} }

// Params carries everything a handler can use: path captures, the parsed
// query map, and the optional body.
type Params struct {
	Captures map[string]string
	Query    map[string]string
	Body     map[string]any
}

// IntID parses the {id} capture as an integer. String-keyed collections
// (warehouses, users) read the capture directly instead.
func (p Params) IntID() int {
	n, _ := strconv.Atoi(p.Captures["id"])
	return n
}

func (p Params) ID() string { return p.Captures["id"] }

type handlerFunc func(p Params) (any, error)

type rule struct {
	verb Verb
	pat  pattern
	fn   handlerFunc
}

// pattern is a compiled path template. Each segment is either a literal or a
// named capture ("{id}"); matching compares segment counts and literals
// exactly.
type pattern struct {
	raw  string
	segs []patternSeg
}

type patternSeg struct {
	literal string
	capture string // non-empty → named capture
}

func compile(raw string) pattern {
	parts := strings.Split(strings.Trim(raw, "/"), "/")
	segs := make([]patternSeg, 0, len(parts))
	for _, part := range parts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			segs = append(segs, patternSeg{capture: part[1 : len(part)-1]})
			continue
		}
		segs = append(segs, patternSeg{literal: part})
	}
	return pattern{raw: raw, segs: segs}
}

func (p pattern) match(segs []string) (map[string]string, bool) {
	if len(segs) != len(p.segs) {
		return nil, false
	}
	var caps map[string]string
	for i, ps := range p.segs {
		if ps.capture != "" {
			if caps == nil {
				caps = make(map[string]string, 2)
			}
			caps[ps.capture] = segs[i]
			continue
		}
		if ps.literal != segs[i] {
			return nil, false
		}
	}
	return caps, true
}

// Dispatcher owns the rule table and the injected store. Build one per
// process via New.
type Dispatcher struct {
	rules   []rule
	latency time.Duration
}

// New wires the data-service dependencies and registers the rule table.
// Dependency graph: Dispatcher ← Services ← Store ← SlotStore
func New(cfg *config.Config, store *repository.Store, slots *infra.SlotStore) *Dispatcher {
	d := &Dispatcher{}
	if cfg != nil && cfg.LatencyMs > 0 {
		d.latency = time.Duration(cfg.LatencyMs) * time.Millisecond
	}

	authSvc := service.NewAuthService(store, slots)
	dashSvc := service.NewDashboardService(store)
	reportSvc := service.NewReportService(store)

	d.register(store, authSvc, dashSvc, reportSvc)
	return d
}

func (d *Dispatcher) add(verb Verb, path string, fn handlerFunc) {
	d.rules = append(d.rules, rule{verb: verb, pat: compile(path), fn: fn})
}

// Dispatch resolves one request. Every call pays the simulated network delay
// first; cancellation and timeouts do not exist — a dispatch always resolves.
// Only /auth/login ever returns a non-nil error.
func (d *Dispatcher) Dispatch(verb Verb, rawPath string, body map[string]any) (any, error) {
	if d.latency > 0 {
		time.Sleep(d.latency)
	}

	path, query := splitQuery(rawPath)
	segs := strings.Split(strings.Trim(path, "/"), "/")

	for _, r := range d.rules {
		if r.verb != verb {
			continue
		}
		caps, ok := r.pat.match(segs)
		if !ok {
			continue
		}
		return r.fn(Params{Captures: caps, Query: query, Body: body})
	}

	log.Debug().Str("verb", string(verb)).Str("path", rawPath).Msg("dispatch: no rule matched")
	return Empty(), nil
}

// splitQuery separates the query component and flattens it to single values.
// Malformed queries and repeated keys degrade silently.
func splitQuery(rawPath string) (string, map[string]string) {
	path, rawQuery, found := strings.Cut(rawPath, "?")
	if !found || rawQuery == "" {
		return path, nil
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return path, nil
	}
	query := make(map[string]string, len(values))
	for k := range values {
		query[k] = values.Get(k)
	}
	return path, query
}

// orEmpty renders failed lookups as the empty result.
func orEmpty[T any](v *T) (any, error) {
	if v == nil {
		return Empty(), nil
	}
	return v, nil
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
