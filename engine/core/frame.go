package core

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "core")

// FrameReport describes one paced iteration.
type FrameReport struct {
	Elapsed time.Duration // work time, before any sleep
	Budget  time.Duration
	Overrun bool
}

func (r FrameReport) String() string {
	return fmt.Sprintf("%.2fms / %.2fms", ms(r.Elapsed), ms(r.Budget))
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }

// FrameController paces a loop to a target frame rate. It is advisory only: it
// sleeps away leftover budget and reports overruns, but never drops frames.
type FrameController struct {
	budget time.Duration
	start  time.Time
	now    func() time.Time
	sleep  func(time.Duration)
}

type FrameOption func(*FrameController)

// WithClock replaces the wall clock and sleep, for tests.
func WithClock(now func() time.Time, sleep func(time.Duration)) FrameOption {
	return func(fc *FrameController) {
		fc.now = now
		fc.sleep = sleep
	}
}

// NewFrameController targets fps frames per second. fps <= 0 disables pacing.
func NewFrameController(fps int, opts ...FrameOption) *FrameController {
	fc := &FrameController{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		fc.budget = time.Second / time.Duration(fps)
	}
	for _, o := range opts {
		o(fc)
	}
	fc.start = fc.now()
	return fc
}

// Budget is the per-frame time target.
func (fc *FrameController) Budget() time.Duration { return fc.budget }

// Begin marks the start of a frame's work.
func (fc *FrameController) Begin() { fc.start = fc.now() }

// End is called once the frame's work is done. Within budget it sleeps the
// remainder; over budget it logs a warning and returns immediately.
func (fc *FrameController) End() FrameReport {
	elapsed := fc.now().Sub(fc.start)
	r := FrameReport{Elapsed: elapsed, Budget: fc.budget}
	if fc.budget == 0 {
		return r
	}
	if elapsed > fc.budget {
		r.Overrun = true
		log.WithFields(logrus.Fields{
			"elapsed": elapsed,
			"budget":  fc.budget,
		}).Warn("frame overran its budget")
		return r
	}
	fc.sleep(fc.budget - elapsed)
	return r
}
