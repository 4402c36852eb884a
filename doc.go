// Package parley provides a lightweight means of running an interactive
// command loop over a line-based byte stream.
//
// The goal of this package is to provide something that is roughly comparable
// to a shell's read-eval-print loop, but small enough for constrained inputs
// such as a microcontroller's serial console: a fixed command table looked up
// by full name or abbreviation, a byte-at-a-time line editor that understands
// backspace, and a dispatch loop that validates argument counts before
// invoking a handler. There is no command history and no completion.
package parley
