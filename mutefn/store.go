package mutefn

import (
	"sort"
)

// Store owns the full set of mute functions for a run, arranged on a
// rectangular survey grid. The set of (inline, crossline) locations must
// form the complete Cartesian product of the distinct inline and crossline
// values present; a store that only spans one inline or one crossline is
// degenerate and collapses the bilinear blend to a single-axis blend.
//
// A Store is read-only after construction and may be shared across
// goroutines.
type Store struct {
	// curves[c][i] is the function at crossline rank c, inline rank i.
	curves [][]*Curve

	inlines, crosslines axis
}

// NewStore validates an unordered set of mute functions and arranges them on
// the grid. It fails with a ConfigError when the set is empty and with a
// GeometryError when two functions share a location or when the locations do
// not form an aligned rectangle.
func NewStore(curves []*Curve) (*Store, error) {
	if len(curves) == 0 {
		return nil, configErrorf(
			"I need at least one mute function, but the table is empty.",
		)
	}

	sorted := make([]*Curve, len(curves))
	copy(sorted, curves)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Crossline != sorted[j].Crossline {
			return sorted[i].Crossline < sorted[j].Crossline
		}
		return sorted[i].Inline < sorted[j].Inline
	})

	for k := 1; k < len(sorted); k++ {
		if sorted[k].Inline == sorted[k-1].Inline &&
			sorted[k].Crossline == sorted[k-1].Crossline {
			return nil, geometryErrorf(
				"Two mute functions are defined at the same grid "+
					"location (%d, %d).",
				sorted[k].Inline, sorted[k].Crossline,
			)
		}
	}

	inlineVals := distinctInlines(sorted)
	crosslineVals := distinctCrosslines(sorted)
	ni, nc := len(inlineVals), len(crosslineVals)

	// Aligned-rectangle invariant: walking the sorted set must reproduce
	// the full crossline-major Cartesian product.
	if ni*nc != len(sorted) {
		il, cl := firstMissing(sorted, inlineVals, crosslineVals)
		return nil, geometryErrorf(
			"The mute function locations do not form an aligned "+
				"rectangle: %d distinct inlines and %d distinct "+
				"crosslines imply %d functions, but I found %d. The "+
				"first missing location is (%d, %d).",
			ni, nc, ni*nc, len(sorted), il, cl,
		)
	}
	for c := 0; c < nc; c++ {
		for i := 0; i < ni; i++ {
			cv := sorted[c*ni+i]
			if cv.Inline != inlineVals[i] || cv.Crossline != crosslineVals[c] {
				return nil, geometryErrorf(
					"The mute function locations do not form an aligned "+
						"rectangle: I expected a function at (%d, %d).",
					inlineVals[i], crosslineVals[c],
				)
			}
		}
	}

	grid := make([][]*Curve, nc)
	for c := 0; c < nc; c++ {
		grid[c] = sorted[c*ni : (c+1)*ni]
	}

	return &Store{
		curves:     grid,
		inlines:    newAxis(intsToFloats(inlineVals)),
		crosslines: newAxis(intsToFloats(crosslineVals)),
	}, nil
}

// NInline returns the number of distinct inline values present.
func (s *Store) NInline() int { return s.inlines.size() }

// NCrossline returns the number of distinct crossline values present.
func (s *Store) NCrossline() int { return s.crosslines.size() }

// At returns the function at the given axis ranks.
func (s *Store) At(inlineRank, crosslineRank int) *Curve {
	return s.curves[crosslineRank][inlineRank]
}

// Degenerate reports whether the store spans only a single inline or a
// single crossline, collapsing the spatial blend to one axis.
func (s *Store) Degenerate() bool {
	return s.NInline() == 1 || s.NCrossline() == 1
}

// Single reports whether the store holds exactly one function.
func (s *Store) Single() bool {
	return s.NInline() == 1 && s.NCrossline() == 1
}

func distinctInlines(sorted []*Curve) []int {
	seen := map[int]bool{}
	vals := []int{}
	for _, c := range sorted {
		if !seen[c.Inline] {
			seen[c.Inline] = true
			vals = append(vals, c.Inline)
		}
	}
	sort.Ints(vals)
	return vals
}

func distinctCrosslines(sorted []*Curve) []int {
	vals := []int{}
	for _, c := range sorted {
		if len(vals) == 0 || c.Crossline != vals[len(vals)-1] {
			vals = append(vals, c.Crossline)
		}
	}
	return vals
}

func firstMissing(sorted []*Curve, inlineVals, crosslineVals []int) (int, int) {
	present := map[[2]int]bool{}
	for _, c := range sorted {
		present[[2]int{c.Inline, c.Crossline}] = true
	}
	for _, cl := range crosslineVals {
		for _, il := range inlineVals {
			if !present[[2]int{il, cl}] {
				return il, cl
			}
		}
	}
	return inlineVals[0], crosslineVals[0]
}
