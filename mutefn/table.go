package mutefn

import (
	"os"

	"gopkg.in/yaml.v3"
)

// tableEntry is one mute-function record in a table file. X and Y are world
// coordinates; the grid mapping converts them to (inline, crossline) at load
// time. Offsets may be omitted when the table supplies a shared top-level
// offset vector.
type tableEntry struct {
	X       float64   `yaml:"x"`
	Y       float64   `yaml:"y"`
	Offsets []float64 `yaml:"offsets,omitempty"`
	Times   []float64 `yaml:"times"`
}

type table struct {
	// Offsets, when present, is shared by every entry that doesn't carry
	// its own offset vector.
	Offsets   []float64    `yaml:"offsets,omitempty"`
	Functions []tableEntry `yaml:"functions"`
}

// Locator maps a world coordinate onto the survey grid. ok is false when the
// point falls outside the grid, which is fatal during table loading.
type Locator func(x, y float64) (inline, crossline int, ok bool)

// ReadTable loads a yaml mute-function table and converts each entry's world
// location to a grid coordinate through locate. Entries without their own
// offset vector take a copy of the table's shared vector; the choice is
// resolved here, once, so the rest of the pipeline only ever sees curves
// that own their offsets.
func ReadTable(fname string, locate Locator) ([]*Curve, error) {
	bs, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return parseTable(fname, bs, locate)
}

func parseTable(fname string, bs []byte, locate Locator) ([]*Curve, error) {
	tab := table{}
	if err := yaml.Unmarshal(bs, &tab); err != nil {
		return nil, configErrorf(
			"I couldn't parse the mute table %s: %s", fname, err.Error(),
		)
	}
	if len(tab.Functions) == 0 {
		return nil, configErrorf(
			"The mute table %s doesn't define any functions.", fname,
		)
	}

	curves := make([]*Curve, 0, len(tab.Functions))
	for i := range tab.Functions {
		e := &tab.Functions[i]

		offsets := e.Offsets
		if len(offsets) == 0 {
			if len(tab.Offsets) == 0 {
				return nil, configErrorf(
					"Function %d of the mute table %s has no offsets and "+
						"the table has no shared offset vector.", i, fname,
				)
			}
			offsets = append([]float64{}, tab.Offsets...)
		}

		il, cl, ok := locate(e.X, e.Y)
		if !ok {
			return nil, geometryErrorf(
				"The location (%g, %g) of function %d in the mute table "+
					"%s is outside the survey grid.", e.X, e.Y, i, fname,
			)
		}

		c, err := NewCurve(il, cl, offsets, e.Times)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}

	return curves, nil
}
