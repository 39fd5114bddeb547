/*gomute applies grid-interpolated mute functions to SU trace streams.*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/seisproc/gomute/cmd"
)

var helpStrings = map[string]string{
	"apply": `The apply mode reads SU traces from stdin (or TraceInput),
resolves a mute time for each trace from the mute table, mutes the trace in
place, and writes it to stdout (or TraceOutput).

The -time flag reports the elapsed time and memory usage to stderr after the
last trace is written. The -debug flag turns on verbose logging.`,
	"check": `The check mode validates the survey grid and the mute table and
prints a short summary without reading any traces.`,

	"config":       new(cmd.GlobalConfig).ExampleConfig(),
	"apply.config": cmd.ModeNames["apply"].ExampleConfig(),
	"check.config": `The check mode does not have a non-global config file.`,
}

var modeDescriptions = `My help modes are:
gomute help
gomute help [ apply | check ]
gomute help [ config | apply.config ]

My processing modes are:
gomute apply [flags] ____.config [____.apply.config]
gomute check ____.config`

func main() {
	args := os.Args
	if len(args) <= 1 {
		fmt.Fprintf(
			os.Stderr, "I was not supplied with a mode.\nFor help, type "+
				"'./gomute help'.\n",
		)
		os.Exit(1)
	}

	if args[1] == "help" {
		switch len(args) - 2 {
		case 0:
			fmt.Println(modeDescriptions)
		case 1:
			text, ok := helpStrings[args[2]]
			if !ok {
				fmt.Printf("I don't recognize the help target '%s'\n", args[2])
			} else {
				fmt.Println(text)
			}
		default:
			fmt.Println("The help mode can only take a single argument.")
		}
		os.Exit(0)
	}

	mode, ok := cmd.ModeNames[args[1]]
	if !ok {
		fmt.Fprintf(
			os.Stderr, "I don't recognize the mode '%s'.\nFor help, type "+
				"'./gomute help'.\n", args[1],
		)
		os.Exit(1)
	}

	flags, configs := splitFlags(args[2:])
	if len(configs) == 0 {
		fmt.Fprintf(
			os.Stderr, "The %s mode needs a global config file.\nFor an "+
				"example, type './gomute help config'.\n", args[1],
		)
		os.Exit(1)
	}

	gConfig := &cmd.GlobalConfig{}
	if err := gConfig.ReadConfig(configs[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error running mode %s:\n%s\n",
			args[1], err.Error())
		os.Exit(1)
	}

	modeConfig := ""
	if len(configs) > 1 {
		modeConfig = configs[1]
	}
	if err := mode.ReadConfig(modeConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error running mode %s:\n%s\n",
			args[1], err.Error())
		os.Exit(1)
	}

	err := mode.Run(flags, gConfig, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running mode %s:\n%s\n",
			args[1], err.Error())
		os.Exit(1)
	}
}

// splitFlags separates leading '-' flags from the trailing config file
// names.
func splitFlags(args []string) (flags, configs []string) {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
		} else {
			configs = append(configs, a)
		}
	}
	return flags, configs
}
