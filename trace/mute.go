package trace

import (
	"fmt"
	"math"
)

// Mode selects which part of the trace a resolved mute time removes.
type Mode int

const (
	// MuteAbove zeroes everything earlier than the mute time.
	MuteAbove Mode = iota
	// MuteBelow zeroes everything later than the mute time.
	MuteBelow
	// MuteLinear zeroes a band around a straight line t = tzero + x/v,
	// the usual air-wave geometry.
	MuteLinear
	// MuteHyperbolic zeroes a band around the constant-velocity hyperbola
	// t = sqrt(tzero² + (x/v)²).
	MuteHyperbolic
)

func (m Mode) String() string {
	switch m {
	case MuteAbove:
		return "above"
	case MuteBelow:
		return "below"
	case MuteLinear:
		return "linear"
	case MuteHyperbolic:
		return "hyperbolic"
	}
	return "invalid"
}

// ParseMode converts a config-file mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "above":
		return MuteAbove, nil
	case "below":
		return MuteBelow, nil
	case "linear":
		return MuteLinear, nil
	case "hyperbolic":
		return MuteHyperbolic, nil
	}
	return MuteAbove, fmt.Errorf(
		"The mute mode '%s' isn't one of 'above', 'below', 'linear', or "+
			"'hyperbolic'.", s,
	)
}

// Taper returns the sine-squared amplitude ramp of length n,
// taper[i] = sin²((i+1)π/(2n)). taper[0] is the most attenuated coefficient
// and taper[n-1] is 1, so the ramp is laid down with index 0 against the
// zeroed region. n = 0 returns an empty ramp.
func Taper(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		s := math.Sin(float64(i+1) * math.Pi / (2 * float64(n)))
		w[i] = s * s
	}
	return w
}

// Applier applies resolved mute times to traces. The taper table is built
// once and shared read-only; Apply itself keeps no state across traces.
type Applier struct {
	mode  Mode
	taper []float64

	// Band geometry for MuteLinear and MuteHyperbolic.
	tzero float64 // intercept time (s)
	v     float64 // velocity (world units per second)
}

// NewApplier validates the mute configuration. ntaper is the taper length in
// samples (0 disables tapering). tzero and v are only consulted by the band
// modes, but a non-positive velocity is rejected up front regardless, before
// any trace is touched.
func NewApplier(mode Mode, ntaper int, tzero, v float64) (*Applier, error) {
	if mode < MuteAbove || mode > MuteHyperbolic {
		return nil, fmt.Errorf("The mute mode value %d isn't valid.", int(mode))
	}
	if ntaper < 0 {
		return nil, fmt.Errorf(
			"The taper length is %d, but it can't be negative.", ntaper,
		)
	}
	if (mode == MuteLinear || mode == MuteHyperbolic) && v <= 0 {
		return nil, fmt.Errorf(
			"The %s mode needs a positive velocity, but got %g.", mode, v,
		)
	}
	return &Applier{mode: mode, taper: Taper(ntaper), tzero: tzero, v: v}, nil
}

// Apply mutes tr in place using the resolved time t. The affected region is
// restricted to the trace's own time range here, just before application, so
// times resolved from signed offsets and negative start times pass through
// unclamped until this point.
func (ap *Applier) Apply(tr *Trace, t float64) {
	switch ap.mode {
	case MuteAbove:
		ap.muteAbove(tr, t)
	case MuteBelow:
		ap.muteBelow(tr, t)
	case MuteLinear, MuteHyperbolic:
		ap.muteBand(tr, t)
	}
}

func (ap *Applier) muteAbove(tr *Trace, t float64) {
	nzero := int(math.Round((t - tr.Delrt) / tr.Dt))
	if nzero > tr.NS {
		nzero = tr.NS
	}
	if nzero < 0 {
		nzero = 0
	}

	for i := 0; i < nzero; i++ {
		tr.Data[i] = 0
	}
	for i := 0; i < len(ap.taper) && nzero+i < tr.NS; i++ {
		tr.Data[nzero+i] = float32(float64(tr.Data[nzero+i]) * ap.taper[i])
	}

	tr.MuteStart = t
}

func (ap *Applier) muteBelow(tr *Trace, t float64) {
	nzero := int(math.Round((tr.EndTime() - t) / tr.Dt))
	if nzero > tr.NS {
		nzero = tr.NS
	}
	if nzero < 0 {
		nzero = 0
	}
	start := tr.NS - nzero

	for i := start; i < tr.NS; i++ {
		tr.Data[i] = 0
	}
	for i := 0; i < len(ap.taper) && start-1-i >= 0; i++ {
		tr.Data[start-1-i] = float32(float64(tr.Data[start-1-i]) * ap.taper[i])
	}

	tr.MuteEnd = t
}

// muteBand zeroes a band of width round(t/dt) samples centered on the
// air-wave arrival and tapers outward from both band edges.
func (ap *Applier) muteBand(tr *Trace, t float64) {
	x := tr.Offset / ap.v / tr.Dt
	t0 := ap.tzero / tr.Dt

	var ntair int
	if ap.mode == MuteLinear {
		ntair = int(math.Round(t0 + x))
	} else {
		ntair = int(math.Round(math.Sqrt(t0*t0 + x*x)))
	}

	nmute := int(math.Round(t / tr.Dt))
	if nmute <= 0 {
		return
	}

	lo := ntair - nmute/2
	hi := ntair + nmute/2

	for i := lo; i <= hi; i++ {
		if i >= 0 && i < tr.NS {
			tr.Data[i] = 0
		}
	}
	for i := 0; i < len(ap.taper); i++ {
		if j := lo - 1 - i; j >= 0 && j < tr.NS {
			tr.Data[j] = float32(float64(tr.Data[j]) * ap.taper[i])
		}
		if j := hi + 1 + i; j >= 0 && j < tr.NS {
			tr.Data[j] = float32(float64(tr.Data[j]) * ap.taper[i])
		}
	}

	clampedLo, clampedHi := lo, hi
	if clampedLo < 0 {
		clampedLo = 0
	}
	if clampedHi >= tr.NS {
		clampedHi = tr.NS - 1
	}
	if clampedLo <= clampedHi {
		tr.MuteStart = tr.Delrt + float64(clampedLo)*tr.Dt
		tr.MuteEnd = tr.Delrt + float64(clampedHi)*tr.Dt
	}
}
