package boxes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapsMatrix(t *testing.T) {
	dets := []Box{
		{0, 0, 10, 10},
		{100, 100, 110, 110},
	}
	gts := []Box{
		{0, 0, 10, 10},
		{5, 0, 15, 10},
		{200, 200, 210, 210},
	}

	m, err := Overlaps(dets, gts)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, []int(m.Shape()))

	data, ok := m.Data().([]float32)
	require.True(t, ok, "overlap matrix backing must be float32")

	// Row 0: exact match, half shift (50/150), disjoint.
	assert.InDelta(t, 1.0, data[0], 1e-5)
	assert.InDelta(t, 1.0/3.0, data[1], 1e-5)
	assert.InDelta(t, 0.0, data[2], 1e-5)

	// Row 1: disjoint from every ground truth.
	assert.InDelta(t, 0.0, data[3], 1e-5)
	assert.InDelta(t, 0.0, data[4], 1e-5)
	assert.InDelta(t, 0.0, data[5], 1e-5)
}

func TestOverlapsEmptyInput(t *testing.T) {
	_, err := Overlaps(nil, []Box{{0, 0, 1, 1}})
	assert.Error(t, err)

	_, err = Overlaps([]Box{{0, 0, 1, 1}}, nil)
	assert.Error(t, err)
}
