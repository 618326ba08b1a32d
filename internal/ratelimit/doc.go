// Package ratelimit throttles requests per key.
//
// Limits are written as "<n>/<unit>" (e.g. "15/minute"). Two [Store]
// implementations exist: an in-memory token bucket per key built on
// golang.org/x/time/rate, and a Redis fixed-window counter shared between
// instances. [NewStore] picks one from [config.RateLimit].
package ratelimit
