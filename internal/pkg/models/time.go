package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// NowMillis returns the current Unix time in milliseconds
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
