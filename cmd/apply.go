package cmd

import (
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/seisproc/gomute/grid"
	"github.com/seisproc/gomute/logging"
	"github.com/seisproc/gomute/mutefn"
	"github.com/seisproc/gomute/parse"
	"github.com/seisproc/gomute/suio"
	"github.com/seisproc/gomute/trace"
)

// ApplyConfig is the config for the apply mode, which streams SU traces
// from input to output, muting each one.
type ApplyConfig struct {
	traceInput  string
	traceOutput string
}

var _ Mode = &ApplyConfig{}

func (config *ApplyConfig) ExampleConfig() string {
	return `[apply]
# TraceInput and TraceOutput are SU trace files. Leave either blank to use
# the process's stdin or stdout instead.
TraceInput =
TraceOutput =`
}

func (config *ApplyConfig) ReadConfig(fname string) error {
	if fname == "" {
		return nil
	}
	vars := parse.NewConfigVars("apply")
	vars.String(&config.traceInput, "TraceInput", "")
	vars.String(&config.traceOutput, "TraceOutput", "")
	return parse.ReadConfig(fname, vars)
}

func (config *ApplyConfig) Run(
	flags []string, gConfig *GlobalConfig, stdin io.Reader, stdout io.Writer,
) error {
	if err := parseFlags(flags); err != nil {
		return err
	}
	var t0 time.Time
	if logging.Mode == logging.Performance {
		t0 = time.Now()
	}

	g, err := gConfig.buildGrid()
	if err != nil {
		return err
	}
	store, err := gConfig.buildStore(g)
	if err != nil {
		return err
	}
	resolver, err := gConfig.buildResolver(store)
	if err != nil {
		return err
	}
	applier, err := gConfig.buildApplier()
	if err != nil {
		return err
	}

	in, out := stdin, stdout
	if config.traceInput != "" {
		f, err := os.Open(config.traceInput)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	// The output file's Close error matters: a write that only fails at
	// close time would otherwise truncate the stream silently.
	var outFile *os.File
	if config.traceOutput != "" {
		f, err := os.Create(config.traceOutput)
		if err != nil {
			return err
		}
		outFile = f
		out = f
	}

	n, err := muteTraces(gConfig, g, resolver, applier, in, out)
	if outFile != nil {
		cerr := outFile.Close()
		if err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}

	if logging.Mode == logging.Performance {
		log.Printf("Muted %d traces in %s.", n, time.Since(t0))
		log.Printf("Memory:\n%s", logging.MemString())
	}
	return nil
}

// muteTraces streams SU records from in to out, muting each one in place.
// It returns the number of traces written.
func muteTraces(
	gConfig *GlobalConfig, g *grid.Grid, resolver *mutefn.Resolver,
	applier *trace.Applier, in io.Reader, out io.Writer,
) (int, error) {
	rd := suio.NewReader(in)
	wr := suio.NewWriter(out)

	n := 0
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}

		tr := rec.Trace()
		il, cl, ok := g.Locate(tr.SX, tr.SY)
		if !ok {
			return n, mutefn.NewGeometryError(
				"Trace %d at world location (%g, %g) is outside the "+
					"survey grid.", n, tr.SX, tr.SY,
			)
		}

		key := tr.Offset
		if gConfig.absoluteOffset {
			key = math.Abs(key)
		}

		t := resolver.Resolve(il, cl, key)
		applier.Apply(tr, t)
		rec.SetMute(tr)

		if err := wr.Write(rec); err != nil {
			return n, err
		}
		n++
	}

	return n, wr.Flush()
}
