package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/nesv/parley"
)

func main() {
	prompt := pflag.String("prompt", "Command", "label printed ahead of the line counter")
	noExit := pflag.Bool("no-exit", false, "disable the built-in end command")
	bufferSize := pflag.Int("buffer-size", 256, "maximum length of one input line in bytes")
	logLevel := pflag.String("log-level", "warning", "log level for dispatch traces")
	pflag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(*logLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("invalid log level %s, defaulting to warning", *logLevel)
	}

	if err := run(*prompt, *noExit, *bufferSize); err != nil {
		logrus.WithError(err).Fatal("parser stopped")
	}
}

func run(prompt string, noExit bool, bufferSize int) error {
	// The line editor wants to see every keystroke, so put the tty into
	// raw mode for the duration when stdin is one.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return errors.Wrap(err, "entering raw mode")
		}
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	p := parley.New(parley.Config{
		Prompt:     prompt,
		NoExit:     noExit,
		BufferSize: bufferSize,
	})

	p.Register("add", "a", "Add <P1> to <P2> [... to <P5>]", 2, 5, addCmd)
	p.Register("sub", "s", "Subtract <P2> from <P1>", 2, 2, subCmd)

	fmt.Println("Simple Command Parser")
	fmt.Println()
	p.PrintCommands()
	fmt.Println()

	return p.Run()
}

// addCmd sums its arguments as integers.
func addCmd(args []string) (int, error) {
	sum := 0
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, errors.Errorf("not an integer: %q", arg)
		}
		sum += n
	}
	return sum, nil
}

// subCmd subtracts each subsequent argument from the first.
func subCmd(args []string) (int, error) {
	result, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Errorf("not an integer: %q", args[0])
	}
	for _, arg := range args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, errors.Errorf("not an integer: %q", arg)
		}
		result -= n
	}
	return result, nil
}
