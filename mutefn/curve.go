package mutefn

// Curve is one mute function: a time-vs-offset curve attached to a survey
// grid location. Offsets are strictly increasing; times carry no ordering
// requirement. Curves are immutable once built and owned by their Store.
type Curve struct {
	Inline, Crossline int

	offsets axis
	times   []float64
}

// NewCurve validates and builds a mute function for the grid location
// (inline, crossline). Offsets that are not strictly increasing are a fatal
// ConfigError: they are never sorted silently, since out-of-order input
// almost always means a mangled parameter list rather than a shuffled one.
func NewCurve(inline, crossline int, offsets, times []float64) (*Curve, error) {
	if len(offsets) == 0 {
		return nil, configErrorf(
			"The mute function at (%d, %d) has no offset/time pairs.",
			inline, crossline,
		)
	}
	if len(offsets) != len(times) {
		return nil, configErrorf(
			"The mute function at (%d, %d) has %d offsets but %d times.",
			inline, crossline, len(offsets), len(times),
		)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			return nil, configErrorf(
				"The offsets of the mute function at (%d, %d) must be "+
					"strictly increasing, but offset %d is %g and offset "+
					"%d is %g.",
				inline, crossline, i-1, offsets[i-1], i, offsets[i],
			)
		}
	}

	return &Curve{
		Inline:    inline,
		Crossline: crossline,
		offsets:   newAxis(offsets),
		times:     times,
	}, nil
}

// Eval returns the mute time at the given offset, linearly interpolating
// between the bracketing offset/time pairs and applying policy at the ends
// of the tabulated offset range.
func (c *Curve) Eval(offset float64, policy Extrap) float64 {
	lo, w := c.offsets.locate(offset, policy)
	if c.offsets.size() == 1 {
		return c.times[0]
	}
	return c.times[lo] + w*(c.times[lo+1]-c.times[lo])
}

// MinOffset and MaxOffset report the tabulated offset range. The check mode
// uses them to summarize table coverage.
func (c *Curve) MinOffset() float64 { return c.offsets.vals[0] }

func (c *Curve) MaxOffset() float64 { return c.offsets.vals[len(c.offsets.vals)-1] }
