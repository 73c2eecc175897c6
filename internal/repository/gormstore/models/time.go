package models

import "time"

// storedTime is t as the databases keep it: UTC at microsecond precision,
// the finest a Postgres timestamp holds.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
