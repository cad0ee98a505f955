package ephemeris

import (
	"context"

	"github.com/aryabhata-go/panchangam/observability"
)

// SolarLongitudeWithContext is SolarLongitude with a tracing span around
// the call, for callers on the hot path of a single panchang lookup
// where per-field spans are useful (mirrors the teacher's pattern of
// wrapping ephemeris calls for the overall daily computation trace).
func SolarLongitudeWithContext(ctx context.Context, t float64) (context.Context, float64) {
	ctx, span := observability.Observer().CreateSpan(ctx, "ephemeris.SolarLongitude")
	defer span.End()
	return ctx, SolarLongitude(t)
}

// LunarLongitudeWithContext is LunarLongitude with a tracing span.
func LunarLongitudeWithContext(ctx context.Context, t float64) (context.Context, float64) {
	ctx, span := observability.Observer().CreateSpan(ctx, "ephemeris.LunarLongitude")
	defer span.End()
	return ctx, LunarLongitude(t)
}
