// Package cli provides the rexlex command's pure, testable core: flag
// parsing and the run loop that connects a rule file to an input stream
// and writes out the scanned lexeme stream. It performs ordinary scoped
// file I/O — open, read fully, close on every exit path — and returns
// errors rather than logging or exiting, leaving that split to the
// command package that calls it.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/rexlex/rexlex/lexer"
	"github.com/rexlex/rexlex/rules"
)

const version = "0.1.0"

// Options holds the parsed command-line configuration.
type Options struct {
	RulesFile  string
	InputFile  string
	OutputFile string
	Init       string
}

// ParseFlags builds a goflags.FlagSet the same way alterx's
// internal/runner/config.go groups its flags, then parses os.Args.
func ParseFlags() (*Options, error) {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("rexlex: compile regex token rules into a DFA and scan text into a lexeme stream.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.RulesFile, "rules", "r", "", "YAML rule file (required unless --init is given)"),
		flagSet.StringVarP(&opts.InputFile, "input", "i", "", "input file to scan (default stdin)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.OutputFile, "output", "o", "", "where to write the lexeme stream (default stdout)"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Init, "init", "", "write a sample rule file to the given path and exit"),
		flagSet.CallbackVar(printVersion, "version", "display rexlex version"),
	)

	if err := flagSet.Parse(); err != nil {
		return nil, fmt.Errorf("could not read flags: %w", err)
	}

	if opts.Init == "" && opts.RulesFile == "" {
		return nil, fmt.Errorf("-r/--rules is required unless --init is given")
	}

	return opts, nil
}

func printVersion() {
	fmt.Printf("rexlex version %s\n", version)
	os.Exit(0)
}

// Run executes one CLI invocation: honor --init, else load rules, read
// the input, compile and scan, and write the lexeme stream.
func Run(opts *Options) error {
	if opts.Init != "" {
		if err := rules.GenerateSample(opts.Init); err != nil {
			return fmt.Errorf("writing sample rule file: %w", err)
		}
		return nil
	}

	if err := validateRulesPath(opts.RulesFile); err != nil {
		return err
	}

	loaded, err := rules.Load(opts.RulesFile)
	if err != nil {
		return err
	}
	lexRules := make([]lexer.Rule, len(loaded))
	for i, r := range loaded {
		lexRules[i] = lexer.Rule{Name: r.Name, Pattern: r.Pattern}
	}

	lx, err := lexer.New(lexRules)
	if err != nil {
		return fmt.Errorf("compiling rules: %w", err)
	}

	input, err := readInput(opts.InputFile)
	if err != nil {
		return err
	}

	lexemes, scanErr := lx.Lex(input)

	out, closeOut, err := openOutput(opts.OutputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	w := bufio.NewWriter(out)
	for _, lx := range lexemes {
		fmt.Fprintf(w, "%s\t%s\n", lx.Name, escape(lx.Text))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return scanErr
}

func validateRulesPath(path string) error {
	if !fileutil.FileExists(path) {
		return fmt.Errorf("rule file %q does not exist", path)
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "" {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(bin), nil
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file %q: %w", path, err)
	}
	return string(bin), nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output file %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\t", `\t`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
