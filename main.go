// Command calc is an interactive calculator over integers, floats and
// exact fractions.
//
//	$ calc '1/3 + 1/6' '2^-2'
//	1/2
//	1/4
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"go.creack.net/calc/config"
	"go.creack.net/calc/shell"
)

const usage = `calc

Usage:
  calc [-v] [-c FILE] [--] [EXPRESSION...]
  calc -h | --help
  calc --version

Arguments:
  EXPRESSION  Evaluated in order and printed, sharing one environment.

Options:
  -c, --config=FILE  Configuration file.
  -v, --verbose      Print tokens and trees before evaluating.
  -h, --help         Display this help.
  --version          Print calc version.

Expressions starting with a minus sign must follow --, as in calc -- -1+2.
Without expressions, a terminal on stdin starts the interactive shell.
Otherwise stdin is read one expression per line.
`

type options struct {
	Config     string   `docopt:"--config"`
	Verbose    bool     `docopt:"--verbose"`
	Expression []string `docopt:"EXPRESSION"`
	EndOfOpts  bool     `docopt:"--"`
}

func parseOptions(argv []string) (options, error) {
	var opts options
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}
	parsed, err := parser.ParseArgs(usage, argv, "calc v"+shell.Version)
	if err != nil {
		return opts, fmt.Errorf("parse args: %w", err)
	}
	if err := parsed.Bind(&opts); err != nil {
		return opts, fmt.Errorf("bind args: %w", err)
	}
	return opts, nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Printf("No configuration directory, using defaults: %s.", err)
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

func run(opts options) error {
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}

	sh := shell.New(cfg, os.Stdout, os.Stderr)
	sh.SetVerbose(opts.Verbose)

	switch {
	case len(opts.Expression) > 0:
		return sh.RunLines(opts.Expression)
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		return sh.RunInteractive()
	default:
		return sh.Run(os.Stdin)
	}
}

func main() {
	log.SetFlags(0)

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("Fail: %s.", err)
	}
	if err := run(opts); err != nil {
		if errors.Is(err, shell.ErrFailed) {
			os.Exit(1)
		}
		log.Fatalf("Fail: %s.", err)
	}
}
