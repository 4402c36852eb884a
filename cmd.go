package parley

import "fmt"

// Length limits for registration input. Help output is meant to fit an
// 80-column serial terminal, so the limits are deliberately tight.
const (
	MaxNameLen   = 10
	MaxAbbrevLen = 4
	MaxHelpLen   = 40
)

// RunFunc defines the arity and return signatures of a function that a Cmd
// will run.
//
// The integer result is printed by the dispatch loop; what it means is
// command-specific. Arguments arrive as unparsed string tokens, and any
// conversion (strconv.Atoi and friends) is the command's business. A non-nil
// error is reported to the output and the loop continues.
type RunFunc func(args []string) (int, error)

// Cmd defines the structure of a command that can be run.
type Cmd struct {
	// The full name of the command, e.g. "add".
	Name string

	// An optional abbreviated name, e.g. "a".
	Abbrev string

	// A brief, single line description of the command.
	Help string

	// Inclusive bounds on the number of arguments the command accepts.
	MinArgs int
	MaxArgs int

	// The function to run.
	Run RunFunc
}

// Register appends a command to the parser's table. Commands are matched in
// registration order, so an earlier command shadows a later one with the
// same name or abbreviation.
//
// Register will panic if name is empty or longer than MaxNameLen, if abbrev
// is longer than MaxAbbrevLen, if help is longer than MaxHelpLen, if
// min > max, or if run is nil. The table is built once at startup, and a bad
// registration is a developer error rather than something to absorb at run
// time.
func (p *Parser) Register(name, abbrev, help string, min, max int, run RunFunc) {
	if name == "" {
		panic("parley: cannot register nameless command")
	}
	if len(name) > MaxNameLen {
		panic(fmt.Sprintf("parley: command name %q exceeds %d bytes", name, MaxNameLen))
	}
	if len(abbrev) > MaxAbbrevLen {
		panic(fmt.Sprintf("parley: abbreviation %q exceeds %d bytes", abbrev, MaxAbbrevLen))
	}
	if len(help) > MaxHelpLen {
		panic(fmt.Sprintf("parley: help text for %q exceeds %d bytes", name, MaxHelpLen))
	}
	if min > max {
		panic(fmt.Sprintf("parley: command %q has min args %d > max args %d", name, min, max))
	}
	if run == nil {
		panic(fmt.Sprintf("parley: command %q has no run function", name))
	}

	p.cmds = append(p.cmds, &Cmd{
		Name:    name,
		Abbrev:  abbrev,
		Help:    help,
		MinArgs: min,
		MaxArgs: max,
		Run:     run,
	})
}

// Lookup returns the first registered command whose name or abbreviation
// equals token. Matching is case-sensitive. The boolean reports whether a
// command was found.
func (p *Parser) Lookup(token string) (*Cmd, bool) {
	for _, c := range p.cmds {
		if c.Name == token || (c.Abbrev != "" && c.Abbrev == token) {
			return c, true
		}
	}
	return nil, false
}
