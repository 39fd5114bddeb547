/*package grid maps world coordinates onto a regular survey grid defined by
three corner points.
*/
package grid

import (
	"fmt"
	"math"

	"github.com/seisproc/gomute/logging"
)

// coincidentTol is the world-distance below which two grid corners are
// treated as the same point.
const coincidentTol = 1e-6

// Grid is a regular survey grid. Node (0, 0) sits at the first corner,
// inline numbers increase toward the inline-end corner, and crossline
// numbers increase toward the crossline-end corner.
type Grid struct {
	x0, y0 float64

	// Unit vectors along each axis and the world distance between
	// neighboring nodes on that axis.
	exi, eyi, stepI float64
	exc, eyc, stepC float64

	ni, nc int
}

// New builds a grid from its first corner (x0, y0), the far corner of the
// inline axis (xi, yi), the far corner of the crossline axis (xc, yc), and
// the node counts ni and nc. A near-coincident corner pair can't define an
// axis direction; it is reported as a warning and the axis is reset to a
// unit axis, matching how a single-line survey is usually keyed in.
func New(x0, y0, xi, yi, xc, yc float64, ni, nc int) (*Grid, error) {
	if ni < 1 || nc < 1 {
		return nil, fmt.Errorf(
			"The grid needs at least one node per axis, but got %d x %d.",
			ni, nc,
		)
	}

	g := &Grid{x0: x0, y0: y0, ni: ni, nc: nc}

	g.exi, g.eyi, g.stepI = axisSetup("inline", xi-x0, yi-y0, ni, 1, 0)
	g.exc, g.eyc, g.stepC = axisSetup("crossline", xc-x0, yc-y0, nc, 0, 1)

	return g, nil
}

func axisSetup(
	name string, dx, dy float64, n int, defEx, defEy float64,
) (ex, ey, step float64) {
	length := math.Hypot(dx, dy)
	if length < coincidentTol {
		if n > 1 {
			logging.Warnf(
				"the %s-end corner of the grid coincides with the first "+
					"corner; resetting the %s axis to unit spacing", name, name,
			)
		}
		return defEx, defEy, 1
	}
	ex, ey = dx/length, dy/length
	if n > 1 {
		step = length / float64(n-1)
	} else {
		step = length
	}
	return ex, ey, step
}

// NInline and NCrossline return the node counts of the two axes.
func (g *Grid) NInline() int { return g.ni }

func (g *Grid) NCrossline() int { return g.nc }

// Locate maps a world point to its nearest grid node. ok is false when the
// point falls outside the grid; the caller treats that as fatal, since a
// trace that can't be placed on the grid can't be muted correctly.
func (g *Grid) Locate(x, y float64) (inline, crossline int, ok bool) {
	dx, dy := x-g.x0, y-g.y0

	// A single-node axis has no direction to resolve along; everything
	// lands on node 0.
	if g.ni > 1 {
		inline = int(math.Round((dx*g.exi + dy*g.eyi) / g.stepI))
	}
	if g.nc > 1 {
		crossline = int(math.Round((dx*g.exc + dy*g.eyc) / g.stepC))
	}

	if inline < 0 || inline >= g.ni || crossline < 0 || crossline >= g.nc {
		return 0, 0, false
	}
	return inline, crossline, true
}
