package utils

import "time"

// Clock lets services take "now" as a dependency so trial windows and cache
// expiries can be tested at exact boundaries.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds returns the zero time for non-positive input so callers
// can decide how to render missing timestamps.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
