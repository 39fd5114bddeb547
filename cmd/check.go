package cmd

import (
	"fmt"
	"io"
)

// CheckConfig is the config for the check mode, which validates the grid
// and the mute table without touching any traces.
type CheckConfig struct {
}

var _ Mode = &CheckConfig{}

func (config *CheckConfig) ExampleConfig() string { return "" }

func (config *CheckConfig) ReadConfig(fname string) error { return nil }

func (config *CheckConfig) Run(
	flags []string, gConfig *GlobalConfig, stdin io.Reader, stdout io.Writer,
) error {
	if err := parseFlags(flags); err != nil {
		return err
	}
	g, err := gConfig.buildGrid()
	if err != nil {
		return err
	}
	store, err := gConfig.buildStore(g)
	if err != nil {
		return err
	}
	if _, err := gConfig.buildResolver(store); err != nil {
		return err
	}
	if _, err := gConfig.buildApplier(); err != nil {
		return err
	}

	ni, nc := store.NInline(), store.NCrossline()
	fmt.Fprintf(stdout, "Grid: %d x %d nodes\n",
		g.NInline(), g.NCrossline())
	fmt.Fprintf(stdout, "Mute functions: %d (%d inlines x %d crosslines)\n",
		ni*nc, ni, nc)
	if store.Single() {
		fmt.Fprintf(stdout,
			"The single mute function applies to every trace.\n")
	} else if store.Degenerate() {
		fmt.Fprintf(stdout,
			"The function layout is degenerate: the blend collapses to "+
				"one axis.\n")
	}

	minOff, maxOff := store.At(0, 0).MinOffset(), store.At(0, 0).MaxOffset()
	for c := 0; c < nc; c++ {
		for i := 0; i < ni; i++ {
			cv := store.At(i, c)
			if cv.MinOffset() < minOff {
				minOff = cv.MinOffset()
			}
			if cv.MaxOffset() > maxOff {
				maxOff = cv.MaxOffset()
			}
		}
	}
	fmt.Fprintf(stdout, "Tabulated offsets: [%g, %g]\n", minOff, maxOff)

	return nil
}
