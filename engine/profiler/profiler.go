//go:build profile

package profiler

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "profiler")

// -------- public API --------

// Init must be called once (e.g., on app start) with a capacity (#events).
// Example: profiler.Init(1 << 16)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	evrb.init(capacity)
}

// Start begins a named scope and returns the func that closes it. Every scope
// feeds the aggregates; once Init has run it also records open/close events.
// Example: defer profiler.Start("frame.render")()
func Start(name string) func() {
	t0 := time.Now()
	recording := evrb.ready.Load()
	var fid int
	if recording {
		fid = intern(name)
		evrb.push(evEntry{AtNS: t0.UnixNano(), FrameID: fid, Open: true})
	}
	return func() {
		end := time.Now()
		if recording {
			evrb.push(evEntry{AtNS: max(end.UnixNano(), t0.UnixNano()), FrameID: fid})
		}
		aggregate(name, end.Sub(t0))
	}
}

// Dump writes the recorded events to path as a speedscope evented profile.
func Dump(path string) error {
	evs := evrb.snapshot()
	if len(evs) == 0 {
		return ErrNoEvents
	}
	return dumpSpeedscopeEvents(evs, path)
}

// OpenProfilerGraph dumps into a temporary speedscope file and opens it with the
// speedscope CLI when it is on PATH. The file path is returned either way.
func OpenProfilerGraph() (string, error) {
	profilePath := filepath.Join(os.TempDir(), "pixelgrove.profile.speedscope.json")
	if err := Dump(profilePath); err != nil {
		return "", err
	}

	bin, err := exec.LookPath("speedscope")
	if err != nil {
		log.WithField("path", profilePath).Info("speedscope not installed, profile written")
		return profilePath, nil
	}
	cmd := exec.Command(bin, profilePath)
	cmd.SysProcAttr = hideWindowAttr()
	if err := cmd.Start(); err != nil {
		log.WithError(err).Warn("launching speedscope")
	}
	return profilePath, nil
}

// ---------- aggregates ----------

type scope struct {
	count int64
	total time.Duration
	max   time.Duration
}

var (
	mu     sync.Mutex
	scopes = map[string]*scope{}
)

func aggregate(name string, d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	s, ok := scopes[name]
	if !ok {
		s = &scope{}
		scopes[name] = s
	}
	s.count++
	s.total += d
	if d > s.max {
		s.max = d
	}
}

// Stats returns a snapshot of every scope, sorted by name.
func Stats() []Stat {
	mu.Lock()
	out := make([]Stat, 0, len(scopes))
	for name, s := range scopes {
		out = append(out, Stat{Name: name, Count: s.count, Total: s.total, Max: s.max})
	}
	mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset drops the aggregates and any recorded events.
func Reset() {
	mu.Lock()
	clear(scopes)
	mu.Unlock()
	evrb.reset()
}

// Report logs one line per scope.
func Report() {
	for _, s := range Stats() {
		log.WithFields(logrus.Fields{
			"scope": s.Name,
			"count": s.Count,
			"mean":  s.Mean(),
			"max":   s.Max,
		}).Info("profile")
	}
}

// ---------- string interner ----------

var (
	muFrames sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	muFrames.Lock()
	defer muFrames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}

func frameNames() []string {
	muFrames.Lock()
	defer muFrames.Unlock()
	return append([]string(nil), frames...)
}

// Enabled reports whether this build records scopes.
func Enabled() bool { return true }
