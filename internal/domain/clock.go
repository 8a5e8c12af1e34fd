package domain

import "time"

// Clock returns the current time. Entries take a Clock rather than calling
// time.Now directly so tests can control timestamps.
type Clock func() time.Time

// TimestampPrecision is the resolution of entry timestamps. It matches the
// microsecond precision of Postgres timestamptz so values survive a round trip.
const TimestampPrecision = time.Microsecond

// SystemClock returns the current UTC time truncated to TimestampPrecision.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(TimestampPrecision)
}
