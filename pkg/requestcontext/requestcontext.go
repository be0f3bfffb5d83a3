// Package requestcontext provides request-scoped values carried through
// context. All tracker decisions within one observed outcome use the same
// "now" timestamp, ensuring consistent window arithmetic for a single event
// and letting tests place signals on exact window boundaries.
package requestcontext

import (
	"context"
	"time"
)

type contextKeyTime struct{}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (workers, production callers that do
// not pin a timestamp).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(contextKeyTime{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for:
//   - Unit tests that simulate dedup/reset window boundaries deterministically
//   - Callers that want one consistent timestamp across several tracker calls
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, contextKeyTime{}, t)
}
