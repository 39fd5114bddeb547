/*package mutefn computes interpolated mute times on a rectangular survey
grid. A Store holds one time-vs-offset Curve per grid location; a Resolver
brackets a query location on both grid axes and bilinearly blends the four
neighboring curve evaluations into a single mute time.
*/
package mutefn

// Extrap controls how a bracketing search behaves when the query falls
// outside the tabulated range.
type Extrap int

const (
	// ExtrapNone holds the boundary value constant on both ends.
	ExtrapNone Extrap = iota
	// ExtrapBoth linearly extends the boundary slope on both ends.
	ExtrapBoth
	// ExtrapLow extends the low end only and holds the high end constant.
	ExtrapLow
	// ExtrapHigh extends the high end only and holds the low end constant.
	ExtrapHigh
)

func (e Extrap) String() string {
	switch e {
	case ExtrapNone:
		return "none"
	case ExtrapBoth:
		return "both"
	case ExtrapLow:
		return "low"
	case ExtrapHigh:
		return "high"
	}
	return "invalid"
}

// ParseExtrap converts a config-file policy name into an Extrap value.
func ParseExtrap(s string) (Extrap, error) {
	switch s {
	case "none":
		return ExtrapNone, nil
	case "both":
		return ExtrapBoth, nil
	case "low":
		return ExtrapLow, nil
	case "high":
		return ExtrapHigh, nil
	}
	return ExtrapNone, configErrorf(
		"The extrapolation policy '%s' isn't one of "+
			"'none', 'both', 'low', or 'high'.", s,
	)
}

// axis is a strictly increasing sequence of bracket coordinates. dx caches
// the mean spacing so that lookups on near-uniform axes can skip the binary
// search.
type axis struct {
	vals []float64
	dx   float64
}

func newAxis(vals []float64) axis {
	a := axis{vals: vals}
	if len(vals) > 1 {
		a.dx = (vals[len(vals)-1] - vals[0]) / float64(len(vals)-1)
	}
	return a
}

func (a axis) size() int { return len(a.vals) }

// locate returns the index lo such that vals[lo] and vals[lo+1] bracket x,
// and the fractional position w of x within that bracket. lo is always in
// [0, size-2], so lo+1 is a valid index; a single-element axis brackets to
// (0, 0). Outside the tabulated range, an end permitted by policy keeps the
// raw weight (linearly extending the boundary slope: w < 0 or w > 1) and a
// disallowed end clamps w to 0 or 1, holding the boundary value constant.
func (a axis) locate(x float64, policy Extrap) (lo int, w float64) {
	n := len(a.vals)
	if n == 1 {
		return 0, 0
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - a.vals[0]) / a.dx)
	if guess >= 0 && guess < n-1 &&
		a.vals[guess] <= x && a.vals[guess+1] >= x {
		lo = guess
	} else {
		hi := n - 1
		for hi-lo > 1 {
			mid := (lo + hi) / 2
			if x >= a.vals[mid] {
				lo = mid
			} else {
				hi = mid
			}
		}
	}

	w = (x - a.vals[lo]) / (a.vals[lo+1] - a.vals[lo])
	if x < a.vals[0] && policy != ExtrapBoth && policy != ExtrapLow {
		w = 0
	} else if x > a.vals[n-1] && policy != ExtrapBoth && policy != ExtrapHigh {
		w = 1
	}
	return lo, w
}

func intsToFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = float64(xs[i])
	}
	return out
}
