//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopesAggregate(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		end := Start("work")
		time.Sleep(time.Millisecond)
		end()
	}
	Start("other")()

	stats := Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, "other", stats[0].Name)
	assert.Equal(t, "work", stats[1].Name)
	assert.Equal(t, int64(3), stats[1].Count)
	assert.GreaterOrEqual(t, stats[1].Max, time.Millisecond)
	assert.GreaterOrEqual(t, stats[1].Total, 3*time.Millisecond)
	assert.True(t, Enabled())
}

func TestDumpWritesSpeedscope(t *testing.T) {
	Init(64)
	Reset()

	endFrame := Start("frame.update")
	Start("Layer2D.OnRender")()
	endFrame()

	path := filepath.Join(t.TempDir(), "capture.speedscope.json")
	require.NoError(t, Dump(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc ssFile
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Len(t, doc.Profiles, 1)
	p := doc.Profiles[0]
	assert.Equal(t, "evented", p.Type)
	assert.Equal(t, "microseconds", p.Unit)
	require.Len(t, p.Events, 4)
	assert.Equal(t, []string{"O", "O", "C", "C"},
		[]string{p.Events[0].Type, p.Events[1].Type, p.Events[2].Type, p.Events[3].Type})

	outer := doc.Shared.Frames[p.Events[0].Frame].Name
	inner := doc.Shared.Frames[p.Events[1].Frame].Name
	assert.Equal(t, "frame.update", outer)
	assert.Equal(t, "Layer2D.OnRender", inner)
	assert.Equal(t, p.Events[0].Frame, p.Events[3].Frame)
	assert.NoFileExists(t, path+".tmp")
}

func TestDumpWithoutEvents(t *testing.T) {
	Init(8)
	Reset()
	assert.ErrorIs(t, Dump(filepath.Join(t.TempDir(), "x.json")), ErrNoEvents)
}

func TestRingKeepsNewest(t *testing.T) {
	var r evRing
	r.init(4)
	for i := 0; i < 6; i++ {
		r.push(evEntry{AtNS: int64(i)})
	}
	got := r.snapshot()
	require.Len(t, got, 4)
	for i, e := range got {
		assert.Equal(t, int64(i+2), e.AtNS)
	}
}

func TestSpeedscopeEventsBalances(t *testing.T) {
	evs := []evEntry{
		{AtNS: 0, FrameID: 1, Open: false}, // open was overwritten by the ring
		{AtNS: 1000, FrameID: 0, Open: true},
		{AtNS: 3000, FrameID: 2, Open: true},
		{AtNS: 2000, FrameID: 2, Open: false}, // clock went backwards
	}
	out, end := speedscopeEvents(evs)
	require.Len(t, out, 4)
	assert.Equal(t, ssEvent{Type: "O", At: 1, Frame: 0}, out[0])
	assert.Equal(t, ssEvent{Type: "C", At: 3, Frame: 2}, out[2])
	assert.Equal(t, ssEvent{Type: "C", At: 3, Frame: 0}, out[3])
	assert.Equal(t, int64(3), end)
}
