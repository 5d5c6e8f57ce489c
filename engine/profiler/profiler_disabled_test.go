//go:build !profile

package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledExports(t *testing.T) {
	Init(16)
	Start("noop")()
	assert.False(t, Enabled())
	assert.Nil(t, Stats())
	assert.ErrorIs(t, Dump(t.TempDir()+"/x.json"), ErrDisabled)
	_, err := OpenProfilerGraph()
	assert.ErrorIs(t, err, ErrDisabled)
}
