package input

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"dome-preview/internal/sim"
)

func TestSanitizeRejectsNonFinite(t *testing.T) {
	assert.Equal(t, sim.LookDelta{}, sanitize(math32.NaN(), 2))
	assert.Equal(t, sim.LookDelta{}, sanitize(1, math32.Inf(1)))
	assert.Equal(t, sim.LookDelta{}, sanitize(math32.Inf(-1), math32.NaN()))
	assert.Equal(t, sim.LookDelta{DX: 3, DY: -4}, sanitize(3, -4))
}

func TestNotReadyReturnsZeroFrame(t *testing.T) {
	tr := New()
	tr.Ready = func() bool { return false }
	assert.Equal(t, sim.Frame{}, tr.Poll())
}
