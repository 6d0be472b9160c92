package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// coarseInterval is how often the coarse clock refreshes
const coarseInterval = 500 * time.Microsecond

var (
	coarseOnce sync.Once
	coarseNow  atomic.Pointer[time.Time]
)

// StartCoarseClock starts the goroutine that refreshes CoarseNow. Calling
// it again is a no-op. The goroutine lives for the rest of the process.
func StartCoarseClock() {
	coarseOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(coarseInterval)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the cached time, or time.Now when the coarse clock
// was never started.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}
