// Command rexlex compiles a YAML rule file into a DFA and scans an
// input file (or stdin) into a lexeme stream.
package main

import (
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/rexlex/rexlex/internal/cli"
)

func main() {
	opts, err := cli.ParseFlags()
	if err != nil {
		gologger.Fatal().Msgf("%s", err)
	}

	if err := cli.Run(opts); err != nil {
		gologger.Error().Msgf("%s", err)
		os.Exit(1)
	}
}
