package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateAxisAligned(t *testing.T) {
	// 11 x 6 nodes over a 1000 x 500 rectangle: 100 m spacing on both
	// axes, inline along +x.
	g, err := New(0, 0, 1000, 0, 0, 500, 11, 6)
	require.NoError(t, err)

	tests := []struct {
		x, y   float64
		il, cl int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{1000, 500, 10, 5, true},
		{500, 200, 5, 2, true},
		{540, 160, 5, 2, true}, // rounds to the nearest node
		{-100, 0, 0, 0, false},
		{0, 700, 0, 0, false},
		{2000, 0, 0, 0, false},
	}

	for i := range tests {
		il, cl, ok := g.Locate(tests[i].x, tests[i].y)
		if ok != tests[i].ok {
			t.Errorf("Locate(%g, %g) ok = %v.", tests[i].x, tests[i].y, ok)
			continue
		}
		if ok && (il != tests[i].il || cl != tests[i].cl) {
			t.Errorf("Locate(%g, %g) = (%d, %d), but I expected (%d, %d).",
				tests[i].x, tests[i].y, il, cl, tests[i].il, tests[i].cl)
		}
	}
}

func TestLocateRotated(t *testing.T) {
	// Inline along the diagonal (3, 4)/5, crossline along (-4, 3)/5:
	// still an orthogonal pair, 5 m node spacing.
	g, err := New(0, 0, 30, 40, -40, 30, 11, 11)
	require.NoError(t, err)

	il, cl, ok := g.Locate(0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, il)
	assert.Equal(t, 0, cl)

	il, cl, ok = g.Locate(30, 40)
	require.True(t, ok)
	assert.Equal(t, 10, il)
	assert.Equal(t, 0, cl)

	il, cl, ok = g.Locate(-40, 30)
	require.True(t, ok)
	assert.Equal(t, 0, il)
	assert.Equal(t, 10, cl)

	// One node in along both axes: (3, 4) + (-4, 3).
	il, cl, ok = g.Locate(-1, 7)
	require.True(t, ok)
	assert.Equal(t, 1, il)
	assert.Equal(t, 1, cl)
}

func TestNewRejectsBadCounts(t *testing.T) {
	_, err := New(0, 0, 100, 0, 0, 100, 0, 5)
	assert.Error(t, err)
	_, err = New(0, 0, 100, 0, 0, 100, 5, -1)
	assert.Error(t, err)
}

func TestNewCoincidentCornerResets(t *testing.T) {
	// The crossline-end corner coincides with the first corner. The grid
	// still builds; the crossline axis resets to unit spacing.
	g, err := New(0, 0, 100, 0, 0, 0, 11, 3)
	require.NoError(t, err)

	il, cl, ok := g.Locate(50, 1)
	require.True(t, ok)
	assert.Equal(t, 5, il)
	assert.Equal(t, 1, cl)
}

func TestSingleNodeAxis(t *testing.T) {
	g, err := New(0, 0, 1000, 0, 500, 0, 11, 1)
	require.NoError(t, err)

	il, cl, ok := g.Locate(300, 0)
	require.True(t, ok)
	assert.Equal(t, 3, il)
	assert.Equal(t, 0, cl)
}
