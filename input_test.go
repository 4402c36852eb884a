package parley

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestReadLineStopsAtCR(t *testing.T) {
	echo := &bytes.Buffer{}
	lr := NewLineReader(strings.NewReader("hello\rrest"), echo, 0)

	line, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "hello" {
		t.Fatalf("got line %q", line)
	}
	if echo.String() != "hello" {
		t.Fatalf("got echo %q", echo.String())
	}
}

func TestReadLineStopsAtLF(t *testing.T) {
	lr := NewLineReader(strings.NewReader("hello\nrest"), io.Discard, 0)

	line, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "hello" {
		t.Fatalf("got line %q", line)
	}
}

func TestReadLineBackspaceRubsOut(t *testing.T) {
	echo := &bytes.Buffer{}
	lr := NewLineReader(strings.NewReader("abcd\x08\x08e\n"), echo, 0)

	line, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "abe" {
		t.Fatalf("got line %q", line)
	}
	if want := "abcd\b \b\b \be"; echo.String() != want {
		t.Fatalf("got echo %q, want %q", echo.String(), want)
	}
}

func TestReadLineDeleteKey(t *testing.T) {
	lr := NewLineReader(strings.NewReader("abx\x7fc\r"), io.Discard, 0)

	line, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "abc" {
		t.Fatalf("got line %q", line)
	}
}

func TestReadLineBackspaceAtLineStart(t *testing.T) {
	echo := &bytes.Buffer{}
	lr := NewLineReader(strings.NewReader("\x08hi\r"), echo, 0)

	line, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "hi" {
		t.Fatalf("got line %q", line)
	}
	// No rub-out sequence may be emitted for an empty line.
	if echo.String() != "hi" {
		t.Fatalf("got echo %q", echo.String())
	}
}

func TestReadLineFullBufferReturns(t *testing.T) {
	lr := NewLineReader(strings.NewReader("abcdef\n"), io.Discard, 4)

	line, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "abcd" {
		t.Fatalf("got line %q", line)
	}

	// The overflow stays in the stream for the next call.
	line, err = lr.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "ef" {
		t.Fatalf("got line %q", line)
	}
}

func TestReadLinePartialAtEOF(t *testing.T) {
	lr := NewLineReader(strings.NewReader("partial"), io.Discard, 0)

	line, err := lr.ReadLine()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if line != "partial" {
		t.Fatalf("got line %q", line)
	}
}
