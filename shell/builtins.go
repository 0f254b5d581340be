package shell

import (
	"fmt"
	"strings"

	"go.creack.net/calc/config"
)

// Version of the calculator.
const Version = "2.1.1"

type builtinFn func(s *Shell) (stop bool)

// builtins are the command words handled by the shell itself. Any other
// line is an expression.
var builtins = map[string]builtinFn{
	"info":    builtinInfo,
	"exit":    builtinExit,
	"help":    builtinHelp,
	"version": builtinVersion,
	"verbose": builtinVerbose,
}

func (s *Shell) say(msg string) {
	fmt.Fprintln(s.stdout, config.Paint("purple", msg))
}

func builtinInfo(s *Shell) bool {
	s.say(" calc v" + Version + " \n Exact rational expression calculator \n Written in Go \n")
	return false
}

func builtinExit(*Shell) bool {
	return true
}

func builtinHelp(s *Shell) bool {
	var b strings.Builder
	fmt.Fprintf(&b, " calc v%s Help \n", Version)
	for _, line := range []string{
		"info : show infos",
		"exit : exit the program",
		"help : print this help",
		"verbose : toggle the verbose",
		"version : prints the version",
	} {
		fmt.Fprintf(&b, " > %s \n", line)
	}
	s.say(b.String())
	return false
}

func builtinVersion(s *Shell) bool {
	s.say(" calc v" + Version + "\n")
	return false
}

func builtinVerbose(s *Shell) bool {
	s.verbose = !s.verbose
	state := "off"
	if s.verbose {
		state = "on"
	}
	fmt.Fprintln(s.stdout, config.Paint("purple", "You toggled the verbose : ")+config.Paint("red", state))
	return false
}
