// Package impl contains the implementation of the application's business logic.
package impl

import "time"

// isoTimeLayout matches the minute-precision local timestamps stored in the
// data files, e.g. "2025-08-21T10:00". No timezone is recorded.
const isoTimeLayout = "2006-01-02T15:04"

func nowIso() string {
	return time.Now().Format(isoTimeLayout)
}

func parseIsoDateTime(value string) (time.Time, error) {
	return time.Parse(isoTimeLayout, value)
}
