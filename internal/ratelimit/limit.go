package ratelimit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var periods = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
}

// Limit allows Requests per Period.
type Limit struct {
	Requests int
	Period   time.Duration
	unit     string
}

// ParseLimit parses "<n>/<unit>" where unit is second, minute, hour or day
// (a trailing "s" is accepted).
func ParseLimit(s string) (Limit, error) {
	count, unit, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Limit{}, fmt.Errorf("%w: %q", ErrInvalidLimit, s)
	}

	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || n <= 0 {
		return Limit{}, fmt.Errorf("%w: %q: request count must be a positive integer", ErrInvalidLimit, s)
	}

	unit = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(unit)), "s")
	period, ok := periods[unit]
	if !ok {
		return Limit{}, fmt.Errorf("%w: %q: unknown period %q", ErrInvalidLimit, s, unit)
	}

	return Limit{Requests: n, Period: period, unit: unit}, nil
}

// MustParseLimit is like ParseLimit but panics on error. It is meant for
// limits declared in code.
func MustParseLimit(s string) Limit {
	l, err := ParseLimit(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String renders the limit as "15 per 1 minute".
func (l Limit) String() string {
	unit := l.unit
	if unit == "" {
		unit = l.Period.String()
	}
	return fmt.Sprintf("%d per 1 %s", l.Requests, unit)
}

// Result is the outcome of a single [Store.Allow] call.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int

	// RetryAfter is how long a rejected client should wait.
	RetryAfter time.Duration
}
