//go:build profile

package profiler

import (
	"sync/atomic"
)

// ---------- event ring ----------

type evEntry struct {
	AtNS    int64
	FrameID int
	Open    bool
}

// evRing keeps the last cap events. Writers claim a slot with one atomic add.
type evRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []evEntry
}

var evrb evRing

func (r *evRing) init(capacity int) {
	r.ready.Store(false)
	r.cap = uint64(capacity)
	r.evs = make([]evEntry, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *evRing) reset() { r.write.Store(0) }

func (r *evRing) push(e evEntry) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot preserves write order, oldest first.
func (r *evRing) snapshot() []evEntry {
	n := r.write.Load()
	if n == 0 || r.cap == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]evEntry, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}
