/*package cmd contains code for running gomute in its various command line
modes */
package cmd

import (
	"fmt"
	"io"

	"github.com/seisproc/gomute/grid"
	"github.com/seisproc/gomute/logging"
	"github.com/seisproc/gomute/mutefn"
	"github.com/seisproc/gomute/parse"
	"github.com/seisproc/gomute/trace"
)

var ModeNames map[string]Mode = map[string]Mode{
	"apply": &ApplyConfig{},
	"check": &CheckConfig{},
}

// Mode represents the interface used by the main binary when interacting
// with a given command line mode.
type Mode interface {
	// ReadConfig reads a mode-specific config file and stores its contents
	// within the Mode.
	ReadConfig(fname string) error
	// ExampleConfig returns the text of an example config file of this mode.
	ExampleConfig() string
	// Run executes the mode. It takes a list of tokenized command line
	// flags, an initialized GlobalConfig struct, and the process's input
	// and output streams. Trace data moves through the streams raw; any
	// human-readable report goes to stdout as text.
	Run(flags []string, gConfig *GlobalConfig,
		stdin io.Reader, stdout io.Writer) error
}

// parseFlags interprets the command line flags shared by every mode and sets
// the global logging mode. Flags only control reporting; they never change
// what gets written to the trace stream.
func parseFlags(flags []string) error {
	logging.Mode = logging.Nil
	for _, flag := range flags {
		switch flag {
		case "-time":
			logging.Mode = logging.Performance
		case "-debug":
			logging.Mode = logging.Debug
		default:
			return fmt.Errorf("I don't recognize the flag '%s'.", flag)
		}
	}
	return nil
}

// GlobalConfig is the config file shared by every mode. It defines the
// survey grid, the mute table, and the muting parameters.
type GlobalConfig struct {
	gridFirstX, gridFirstY               float64
	gridInlineEndX, gridInlineEndY       float64
	gridCrosslineEndX, gridCrosslineEndY float64
	gridNInline, gridNCrossline          int64

	muteTable string

	muteMode    string
	taperLength int64
	velocity    float64
	tZero       float64

	inlineExtrapolation    string
	crosslineExtrapolation string
	offsetExtrapolation    string

	absoluteOffset bool
}

// ReadConfig reads a global config file and returns an error, if applicable.
func (config *GlobalConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("config")

	vars.Float(&config.gridFirstX, "GridFirstX", 0)
	vars.Float(&config.gridFirstY, "GridFirstY", 0)
	vars.Float(&config.gridInlineEndX, "GridInlineEndX", 0)
	vars.Float(&config.gridInlineEndY, "GridInlineEndY", 0)
	vars.Float(&config.gridCrosslineEndX, "GridCrosslineEndX", 0)
	vars.Float(&config.gridCrosslineEndY, "GridCrosslineEndY", 0)
	vars.Int(&config.gridNInline, "GridNInline", 1)
	vars.Int(&config.gridNCrossline, "GridNCrossline", 1)

	vars.String(&config.muteTable, "MuteTable", "")

	vars.String(&config.muteMode, "MuteMode", "above")
	vars.Int(&config.taperLength, "TaperLength", 0)
	vars.Float(&config.velocity, "Velocity", 0)
	vars.Float(&config.tZero, "TZero", 0)

	vars.String(&config.inlineExtrapolation, "InlineExtrapolation", "none")
	vars.String(&config.crosslineExtrapolation, "CrosslineExtrapolation",
		"none")
	vars.String(&config.offsetExtrapolation, "OffsetExtrapolation", "none")

	vars.Bool(&config.absoluteOffset, "AbsoluteOffset", false)

	err := parse.ReadConfig(fname, vars)
	if err != nil {
		return err
	}

	return config.validate()
}

// validate checks the user-generated fields of GlobalConfig. Everything
// here is fatal before the first trace is read.
func (config *GlobalConfig) validate() error {
	if config.muteTable == "" {
		return fmt.Errorf("The 'MuteTable' variable isn't set.")
	}

	if _, err := trace.ParseMode(config.muteMode); err != nil {
		return err
	}
	for _, s := range []string{
		config.inlineExtrapolation,
		config.crosslineExtrapolation,
		config.offsetExtrapolation,
	} {
		if _, err := mutefn.ParseExtrap(s); err != nil {
			return err
		}
	}

	if config.taperLength < 0 {
		return fmt.Errorf(
			"The 'TaperLength' variable is set to %d, but it can't be "+
				"negative.", config.taperLength,
		)
	}
	if config.gridNInline < 1 || config.gridNCrossline < 1 {
		return fmt.Errorf(
			"The grid needs at least one node per axis, but "+
				"'GridNInline' is %d and 'GridNCrossline' is %d.",
			config.gridNInline, config.gridNCrossline,
		)
	}

	mode, _ := trace.ParseMode(config.muteMode)
	if (mode == trace.MuteLinear || mode == trace.MuteHyperbolic) &&
		config.velocity <= 0 {
		return fmt.Errorf(
			"The '%s' mute mode needs a positive 'Velocity' variable, "+
				"but it is set to %g.", config.muteMode, config.velocity,
		)
	}

	return nil
}

// ExampleConfig returns the text of an example global config file.
func (config *GlobalConfig) ExampleConfig() string {
	return `[config]
# The survey grid is defined by three corner points in world coordinates:
# the first corner, the far corner of the inline axis, and the far corner
# of the crossline axis, along with the node count of each axis.
GridFirstX = 0
GridFirstY = 0
GridInlineEndX = 10000
GridInlineEndY = 0
GridCrosslineEndX = 0
GridCrosslineEndY = 5000
GridNInline = 101
GridNCrossline = 51

# MuteTable points at the yaml file defining the mute functions.
MuteTable = mutes.yaml

# MuteMode is one of 'above', 'below', 'linear', or 'hyperbolic'.
MuteMode = above

# TaperLength is the number of taper samples at each mute boundary.
# 0 disables tapering.
TaperLength = 20

# Velocity and TZero define the band center for the 'linear' and
# 'hyperbolic' modes and are ignored otherwise.
Velocity = 330
TZero = 0

# Extrapolation policies are one of 'none', 'both', 'low', or 'high'.
InlineExtrapolation = none
CrosslineExtrapolation = none
OffsetExtrapolation = none

# AbsoluteOffset looks mute times up by |offset| while still applying the
# band modes at the signed offset.
AbsoluteOffset = false`
}

// buildGrid constructs the survey grid described by the config.
func (config *GlobalConfig) buildGrid() (*grid.Grid, error) {
	return grid.New(
		config.gridFirstX, config.gridFirstY,
		config.gridInlineEndX, config.gridInlineEndY,
		config.gridCrosslineEndX, config.gridCrosslineEndY,
		int(config.gridNInline), int(config.gridNCrossline),
	)
}

// buildStore loads the mute table and validates it against the grid.
func (config *GlobalConfig) buildStore(g *grid.Grid) (*mutefn.Store, error) {
	curves, err := mutefn.ReadTable(config.muteTable, g.Locate)
	if err != nil {
		return nil, err
	}
	return mutefn.NewStore(curves)
}

func (config *GlobalConfig) buildResolver(
	store *mutefn.Store,
) (*mutefn.Resolver, error) {
	ip, _ := mutefn.ParseExtrap(config.inlineExtrapolation)
	cp, _ := mutefn.ParseExtrap(config.crosslineExtrapolation)
	op, _ := mutefn.ParseExtrap(config.offsetExtrapolation)
	return mutefn.NewResolver(store, ip, cp, op)
}

func (config *GlobalConfig) buildApplier() (*trace.Applier, error) {
	mode, _ := trace.ParseMode(config.muteMode)
	return trace.NewApplier(
		mode, int(config.taperLength), config.tZero, config.velocity,
	)
}
