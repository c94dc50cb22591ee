// Package globaltime is a process-wide clock that tests can freeze, so that
// request signing material (curtime, salt) is deterministic under test.
package globaltime

import (
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	nowFunc = time.Now
)

func Now() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return nowFunc()
}

func UTC() time.Time {
	return Now().UTC()
}

// UnixMilli returns the current clock value in milliseconds since the epoch.
func UnixMilli() int64 {
	return Now().UnixMilli()
}

func SetMockTime(t time.Time) {
	mu.Lock()
	defer mu.Unlock()
	nowFunc = func() time.Time { return t }
}

func ResetTime() {
	mu.Lock()
	defer mu.Unlock()
	nowFunc = time.Now
}
