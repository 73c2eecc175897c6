package service

import "time"

// Clock returns the current time. Services stamp new records with it.
type Clock func() time.Time

// SystemClock is the default Clock: wall time in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return SystemClock
	}
	return c
}
