package trace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onesTrace(ns int, dt, delrt float64) *Trace {
	tr := &Trace{NS: ns, Dt: dt, Delrt: delrt, Data: make([]float32, ns)}
	for i := range tr.Data {
		tr.Data[i] = 1
	}
	return tr
}

func TestTaperValues(t *testing.T) {
	got := Taper(4)
	want := []float64{
		math.Pow(math.Sin(math.Pi/8), 2),
		math.Pow(math.Sin(2*math.Pi/8), 2),
		math.Pow(math.Sin(3*math.Pi/8), 2),
		math.Pow(math.Sin(4*math.Pi/8), 2),
	}
	require.Len(t, got, 4)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6)
	}
	assert.InDelta(t, 1.0, got[3], 1e-12)

	assert.Len(t, Taper(0), 0)
}

func TestMuteAboveExactBoundary(t *testing.T) {
	// t = 0.3 s at dt = 4 ms zeroes exactly the first 75 samples.
	ap, err := NewApplier(MuteAbove, 0, 0, 0)
	require.NoError(t, err)

	tr := onesTrace(100, 0.004, 0)
	ap.Apply(tr, 0.3)

	for i := 0; i < 75; i++ {
		assert.Equal(t, float32(0), tr.Data[i], "sample %d", i)
	}
	for i := 75; i < 100; i++ {
		assert.Equal(t, float32(1), tr.Data[i], "sample %d", i)
	}
	assert.Equal(t, 0.3, tr.MuteStart)
}

func TestMuteAboveTaper(t *testing.T) {
	ap, err := NewApplier(MuteAbove, 4, 0, 0)
	require.NoError(t, err)

	tr := onesTrace(20, 0.004, 0)
	ap.Apply(tr, 0.04) // 10 samples

	taper := Taper(4)
	for i := 0; i < 10; i++ {
		assert.Equal(t, float32(0), tr.Data[i])
	}
	for i := 0; i < 4; i++ {
		assert.InDelta(t, taper[i], float64(tr.Data[10+i]), 1e-6)
	}
	for i := 14; i < 20; i++ {
		assert.Equal(t, float32(1), tr.Data[i])
	}
}

func TestMuteAboveRespectsStartTime(t *testing.T) {
	// A nonzero recording start time shifts the zeroed region.
	ap, err := NewApplier(MuteAbove, 0, 0, 0)
	require.NoError(t, err)

	tr := onesTrace(100, 0.004, 0.1)
	ap.Apply(tr, 0.3) // (0.3 - 0.1) / 0.004 = 50 samples

	assert.Equal(t, float32(0), tr.Data[49])
	assert.Equal(t, float32(1), tr.Data[50])
}

func TestMuteAboveClampsToTrace(t *testing.T) {
	ap, err := NewApplier(MuteAbove, 0, 0, 0)
	require.NoError(t, err)

	// Mute time past the end of the trace zeroes everything.
	tr := onesTrace(50, 0.004, 0)
	ap.Apply(tr, 10.0)
	for i := range tr.Data {
		assert.Equal(t, float32(0), tr.Data[i])
	}

	// Mute time before the start touches nothing.
	tr = onesTrace(50, 0.004, 0)
	ap.Apply(tr, -1.0)
	for i := range tr.Data {
		assert.Equal(t, float32(1), tr.Data[i])
	}
}

func TestMuteBelow(t *testing.T) {
	ap, err := NewApplier(MuteBelow, 0, 0, 0)
	require.NoError(t, err)

	// End time is 0.4 s; t = 0.3 zeroes the last 25 samples.
	tr := onesTrace(100, 0.004, 0)
	ap.Apply(tr, 0.3)

	for i := 0; i < 75; i++ {
		assert.Equal(t, float32(1), tr.Data[i], "sample %d", i)
	}
	for i := 75; i < 100; i++ {
		assert.Equal(t, float32(0), tr.Data[i], "sample %d", i)
	}
	assert.Equal(t, 0.3, tr.MuteEnd)
}

func TestMuteBelowTaper(t *testing.T) {
	ap, err := NewApplier(MuteBelow, 4, 0, 0)
	require.NoError(t, err)

	tr := onesTrace(20, 0.004, 0)
	ap.Apply(tr, 0.04) // zero region starts at sample 10

	taper := Taper(4)
	for i := 10; i < 20; i++ {
		assert.Equal(t, float32(0), tr.Data[i])
	}
	// taper[0] sits against the zeroed region.
	for i := 0; i < 4; i++ {
		assert.InDelta(t, taper[i], float64(tr.Data[9-i]), 1e-6)
	}
	for i := 0; i < 6; i++ {
		assert.Equal(t, float32(1), tr.Data[i])
	}
}

func TestMuteLinearBand(t *testing.T) {
	// v = 250 m/s, dt = 4 ms, offset = 500 m, tzero = 0:
	// center = round(500/250/0.004) = 500, band time 0.08 s = 20 samples.
	ap, err := NewApplier(MuteLinear, 0, 0, 250)
	require.NoError(t, err)

	tr := onesTrace(1000, 0.004, 0)
	tr.Offset = 500
	ap.Apply(tr, 0.08)

	for i := 0; i < 490; i++ {
		assert.Equal(t, float32(1), tr.Data[i], "sample %d", i)
	}
	for i := 490; i <= 510; i++ {
		assert.Equal(t, float32(0), tr.Data[i], "sample %d", i)
	}
	for i := 511; i < 1000; i++ {
		assert.Equal(t, float32(1), tr.Data[i], "sample %d", i)
	}
}

func TestMuteLinearBandNegativeOffset(t *testing.T) {
	// A signed negative offset pushes the band center below zero; only the
	// in-range part of the band is zeroed.
	ap, err := NewApplier(MuteLinear, 0, 0.4, 250)
	require.NoError(t, err)

	tr := onesTrace(1000, 0.004, 0)
	tr.Offset = -500
	// center = round(0.4/0.004 - 500) = -400: entirely off the trace.
	ap.Apply(tr, 0.08)
	for i := range tr.Data {
		assert.Equal(t, float32(1), tr.Data[i])
	}
}

func TestMuteHyperbolicBand(t *testing.T) {
	// tzero = 1.2 s, v = 250 m/s, dt = 4 ms, offset = 400:
	// t0 = 300 samples, x = 400 samples, center = 500 samples.
	ap, err := NewApplier(MuteHyperbolic, 0, 1.2, 250)
	require.NoError(t, err)

	tr := onesTrace(1000, 0.004, 0)
	tr.Offset = 400
	ap.Apply(tr, 0.008) // 2 samples -> half-width 1

	for i := 0; i < 499; i++ {
		assert.Equal(t, float32(1), tr.Data[i], "sample %d", i)
	}
	for i := 499; i <= 501; i++ {
		assert.Equal(t, float32(0), tr.Data[i], "sample %d", i)
	}
	for i := 502; i < 1000; i++ {
		assert.Equal(t, float32(1), tr.Data[i], "sample %d", i)
	}
}

func TestMuteBandTaperBothEdges(t *testing.T) {
	ap, err := NewApplier(MuteLinear, 2, 0.4, 250)
	require.NoError(t, err)

	tr := onesTrace(200, 0.004, 0)
	tr.Offset = 0 // center = 100
	ap.Apply(tr, 0.04) // 10 samples -> band [95, 105]

	taper := Taper(2)
	for i := 95; i <= 105; i++ {
		assert.Equal(t, float32(0), tr.Data[i])
	}
	assert.InDelta(t, taper[0], float64(tr.Data[94]), 1e-6)
	assert.InDelta(t, taper[1], float64(tr.Data[93]), 1e-6)
	assert.InDelta(t, taper[0], float64(tr.Data[106]), 1e-6)
	assert.InDelta(t, taper[1], float64(tr.Data[107]), 1e-6)
	assert.Equal(t, float32(1), tr.Data[92])
	assert.Equal(t, float32(1), tr.Data[108])
}

func TestNewApplierValidation(t *testing.T) {
	_, err := NewApplier(Mode(17), 0, 0, 0)
	assert.Error(t, err)

	_, err = NewApplier(MuteAbove, -1, 0, 0)
	assert.Error(t, err)

	_, err = NewApplier(MuteLinear, 0, 0, 0)
	assert.Error(t, err, "band mode with zero velocity")

	_, err = NewApplier(MuteHyperbolic, 0, 0, -5)
	assert.Error(t, err, "band mode with negative velocity")

	_, err = NewApplier(MuteAbove, 0, 0, 0)
	assert.NoError(t, err, "above mode ignores velocity")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		s     string
		m     Mode
		valid bool
	}{
		{"above", MuteAbove, true},
		{"below", MuteBelow, true},
		{"linear", MuteLinear, true},
		{"hyperbolic", MuteHyperbolic, true},
		{"", MuteAbove, false},
		{"sideways", MuteAbove, false},
	}
	for i := range tests {
		m, err := ParseMode(tests[i].s)
		if (err == nil) != tests[i].valid {
			t.Errorf("ParseMode('%s') validity was %v.", tests[i].s,
				err == nil)
		} else if tests[i].valid && m != tests[i].m {
			t.Errorf("ParseMode('%s') = %s.", tests[i].s, m)
		}
	}
}
