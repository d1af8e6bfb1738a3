// internal/app/store/adminstate/export_test.go
package adminstate

import "time"

// SetTimeNow pins the clock used for audit timestamps and returns a
// restore function.
func SetTimeNow(fn func() time.Time) func() {
	prev := timeNow
	timeNow = fn
	return func() { timeNow = prev }
}
