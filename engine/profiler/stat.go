package profiler

import (
	"errors"
	"runtime"
	"time"
)

var (
	// ErrDisabled is returned by exports in builds without the profile tag.
	ErrDisabled = errors.New("profiler: built without -tags profile")
	// ErrNoEvents is returned by exports before any scope was recorded.
	ErrNoEvents = errors.New("profiler: no events to dump")
)

// Stat aggregates every closed instance of one named scope.
type Stat struct {
	Name  string
	Count int64
	Total time.Duration
	Max   time.Duration
}

func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}

func NumCPU() int {
	return runtime.NumCPU()
}
