package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	t.Parallel()

	out, err := SMA(barsFromCloses(1, 2, 3, 4, 5, 6), 3)
	require.NoError(t, err)
	require.Len(t, out, 6)

	// Back-filled from the first computable average (mean of 1,2,3).
	assert.InDelta(t, 2.0, out[0], 1e-9)
	assert.InDelta(t, 2.0, out[1], 1e-9)

	assert.InDelta(t, 2.0, out[2], 1e-9)
	assert.InDelta(t, 3.0, out[3], 1e-9)
	assert.InDelta(t, 4.0, out[4], 1e-9)
	assert.InDelta(t, 5.0, out[5], 1e-9)
}

func TestSMA_WindowOfOne(t *testing.T) {
	t.Parallel()

	out, err := SMA(barsFromCloses(10, 20, 30), 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, out)
}

func TestSMA_Errors(t *testing.T) {
	t.Parallel()

	_, err := SMA(barsFromCloses(1, 2, 3), 0)
	assert.Error(t, err)

	_, err = SMA(barsFromCloses(1, 2, 3), -1)
	assert.Error(t, err)

	_, err = SMA(barsFromCloses(1, 2), 3)
	assert.Error(t, err)
}
