package parley

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultBufferSize = 256

// isDelim reports whether r separates tokens on a command line.
func isDelim(r rune) bool {
	return r == ' ' || r == ',' || r == '.'
}

// Config carries the knobs for a Parser. The zero value is usable; New fills
// in a default for anything left unset.
type Config struct {
	// Input supplies command bytes. Defaults to os.Stdin.
	Input io.Reader

	// Output receives the echo, prompts, and results. Defaults to
	// os.Stdout.
	Output io.Writer

	// Prompt is the label printed ahead of the line counter. Defaults to
	// "Command".
	Prompt string

	// NoExit disables the built-in end command, so Run loops until its
	// input is exhausted.
	NoExit bool

	// BufferSize bounds the length of a single input line. Defaults to
	// 256 bytes.
	BufferSize int

	// Log receives dispatch traces. Defaults to the logrus standard
	// logger.
	Log *logrus.Logger
}

// Parser owns a command table and runs the read-dispatch loop over it.
//
// Register every command before calling Run; the table is read-only while
// the loop is running, and a Parser is not safe for concurrent use.
type Parser struct {
	prompt string
	noExit bool
	in     *LineReader
	out    io.Writer
	log    *logrus.Logger
	cmds   []*Cmd
	stop   bool
}

// New returns a Parser built from cfg. The built-in commands help (h) and
// end are always available at dispatch time; when cfg.NoExit is set, end is
// treated like any other unregistered token.
func New(cfg Config) *Parser {
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "Command"
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}

	return &Parser{
		prompt: cfg.Prompt,
		noExit: cfg.NoExit,
		in:     NewLineReader(cfg.Input, cfg.Output, cfg.BufferSize),
		out:    cfg.Output,
		log:    cfg.Log,
	}
}

// Run repeatedly prompts, reads a line, and dispatches it, until the end
// command is entered (unless NoExit is set) or the input is exhausted. A
// line that fails to dispatch is reported to the output and the loop keeps
// going; only a read failure other than io.EOF is returned as an error.
func (p *Parser) Run() error {
	p.stop = false
	for count := 1; !p.stop; count++ {
		fmt.Fprintf(p.out, "%s[%3d]> ", p.prompt, count)
		line, err := p.in.ReadLine()
		fmt.Fprintln(p.out)
		if err != nil {
			if err == io.EOF {
				// Whatever was typed before the stream closed still
				// counts as a line.
				p.dispatch(line, count)
				return nil
			}
			return errors.Wrap(err, "reading command line")
		}
		p.dispatch(line, count)
	}
	return nil
}

// dispatch tokenizes one line and runs whatever it names. Empty lines are a
// no-op. The built-ins are checked ahead of the table so a registered
// command cannot shadow them.
func (p *Parser) dispatch(line string, count int) {
	tokens := strings.FieldsFunc(line, isDelim)
	if len(tokens) == 0 {
		return
	}
	name, args := tokens[0], tokens[1:]

	switch name {
	case "help", "h":
		p.printHelp(args)
		return
	case "end":
		if !p.noExit {
			p.stop = true
			return
		}
		// With NoExit set, end is an ordinary (and here unknown) token.
	}

	cmd, ok := p.Lookup(name)
	if !ok {
		p.log.WithField("command", name).Warn("unknown command")
		fmt.Fprintf(p.out, "Output [%3d]> unknown command: %s\n", count, name)
		return
	}

	if len(args) < cmd.MinArgs {
		p.log.WithFields(logrus.Fields{"command": cmd.Name, "args": len(args)}).Warn("too few arguments")
		fmt.Fprintf(p.out, "Output [%3d]> ERROR: too few args (fewer than %d)\n", count, cmd.MinArgs)
		return
	}
	if len(args) > cmd.MaxArgs {
		p.log.WithFields(logrus.Fields{"command": cmd.Name, "args": len(args)}).Warn("too many arguments")
		fmt.Fprintf(p.out, "Output [%3d]> ERROR: too many args (more than %d)\n", count, cmd.MaxArgs)
		return
	}

	p.log.WithFields(logrus.Fields{"command": cmd.Name, "args": args}).Debug("dispatching command")
	result, err := cmd.Run(args)
	if err != nil {
		fmt.Fprintf(p.out, "Output [%3d]> error: %v\n", count, err)
		return
	}
	fmt.Fprintf(p.out, "Output [%3d]> %d\n", count, result)
}

// printHelp prints the command table, or the detail for a single command
// when a name is given.
func (p *Parser) printHelp(args []string) {
	if len(args) > 0 {
		c, ok := p.Lookup(args[0])
		if !ok {
			fmt.Fprintf(p.out, "no such command: %q\n", args[0])
			return
		}
		if c.Abbrev != "" {
			fmt.Fprintf(p.out, "%s (%s) - %s\n", c.Name, c.Abbrev, c.Help)
		} else {
			fmt.Fprintf(p.out, "%s - %s\n", c.Name, c.Help)
		}
		fmt.Fprintf(p.out, "arguments: %d to %d\n", c.MinArgs, c.MaxArgs)
		return
	}
	p.PrintCommands()
}

// PrintCommands writes the registered command table to the parser's output,
// in registration order, one row per command.
func (p *Parser) PrintCommands() {
	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Command\tAbbr\targs(max)\tDescription")
	for _, c := range p.cmds {
		fmt.Fprintf(tw, "%s\t%s\t%d(%d)\t%s\n", c.Name, c.Abbrev, c.MinArgs, c.MaxArgs, c.Help)
	}
	fmt.Fprintln(tw, "help\th\t0(1)\tList commands, or describe one")
	if !p.noExit {
		fmt.Fprintln(tw, "end\t\t0(0)\tStop the parser")
	}
	tw.Flush()
}
