package mutefn

import (
	"strconv"

	"github.com/patrickmn/go-cache"
)

// Resolver converts a (grid location, offset) query into a single mute time
// by bilinearly blending the evaluations of the four neighboring mute
// functions. It is read-only after construction.
type Resolver struct {
	store *Store

	inlinePolicy    Extrap
	crosslinePolicy Extrap
	offsetPolicy    Extrap

	// Trace streams arrive grouped by location, so the bracketing work for
	// a coordinate is memoized. Recomputing per trace is always valid; this
	// only saves the axis searches.
	neighborhoods *cache.Cache
}

// neighborhood is the bracketing state for one grid coordinate: the four
// corner functions and the two axis weights. wi measures the position
// between the low- and high-inline columns, wc between the crossline rows.
type neighborhood struct {
	ll, hl, lh, hh *Curve
	wi, wc         float64
}

// NewResolver builds a resolver over store with one extrapolation policy per
// grid axis and one for the offset axis of the individual curves.
func NewResolver(
	store *Store, inlinePolicy, crosslinePolicy, offsetPolicy Extrap,
) (*Resolver, error) {
	for _, p := range []Extrap{inlinePolicy, crosslinePolicy, offsetPolicy} {
		if p < ExtrapNone || p > ExtrapHigh {
			return nil, configErrorf(
				"The extrapolation policy value %d isn't valid.", int(p),
			)
		}
	}
	return &Resolver{
		store:           store,
		inlinePolicy:    inlinePolicy,
		crosslinePolicy: crosslinePolicy,
		offsetPolicy:    offsetPolicy,
		neighborhoods:   cache.New(cache.NoExpiration, 0),
	}, nil
}

// Resolve returns the mute time for a trace at the given grid coordinate and
// offset. A single-function store evaluates that function directly. The
// blend is separable, so the inline-then-crossline nesting below is a
// convention, not a requirement.
func (r *Resolver) Resolve(inline, crossline int, offset float64) float64 {
	if r.store.Single() {
		return r.store.At(0, 0).Eval(offset, r.offsetPolicy)
	}

	nb := r.neighborhood(inline, crossline)

	tLL := nb.ll.Eval(offset, r.offsetPolicy)
	tHL := nb.hl.Eval(offset, r.offsetPolicy)
	tLH := nb.lh.Eval(offset, r.offsetPolicy)
	tHH := nb.hh.Eval(offset, r.offsetPolicy)

	tLo := (1-nb.wi)*tLL + nb.wi*tHL
	tHi := (1-nb.wi)*tLH + nb.wi*tHH
	return (1-nb.wc)*tLo + nb.wc*tHi
}

func (r *Resolver) neighborhood(inline, crossline int) *neighborhood {
	key := strconv.Itoa(inline) + ":" + strconv.Itoa(crossline)
	if v, ok := r.neighborhoods.Get(key); ok {
		return v.(*neighborhood)
	}

	iLo, wi := r.store.inlines.locate(float64(inline), r.inlinePolicy)
	cLo, wc := r.store.crosslines.locate(float64(crossline), r.crosslinePolicy)

	// A single-element axis brackets to (0, 0) with weight 0, so the
	// corresponding pair of corners coincides and the blend collapses to
	// the remaining axis on its own.
	iHi, cHi := iLo, cLo
	if r.store.NInline() > 1 {
		iHi = iLo + 1
	}
	if r.store.NCrossline() > 1 {
		cHi = cLo + 1
	}

	nb := &neighborhood{
		ll: r.store.At(iLo, cLo),
		hl: r.store.At(iHi, cLo),
		lh: r.store.At(iLo, cHi),
		hh: r.store.At(iHi, cHi),
		wi: wi,
		wc: wc,
	}
	r.neighborhoods.SetDefault(key, nb)
	return nb
}
