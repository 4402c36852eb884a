package parley

import "io"

const (
	backspace = 0x08
	del       = 0x7f
)

// LineReader reads one line at a time from an underlying byte stream,
// echoing input as it goes and honouring backspace/delete for simple
// editing. The intended input is a serial port or a tty in raw mode, where
// keystrokes arrive one byte at a time and must be echoed individually.
type LineReader struct {
	r   io.Reader
	w   io.Writer
	buf []byte
}

// NewLineReader returns a LineReader that echoes to w and holds at most size
// bytes of pending line. ReadLine returns as soon as the buffer fills, so
// size bounds the length of any one command line.
func NewLineReader(r io.Reader, w io.Writer, size int) *LineReader {
	if size <= 0 {
		size = defaultBufferSize
	}
	return &LineReader{r: r, w: w, buf: make([]byte, 0, size)}
}

// ReadLine accumulates bytes until a carriage return, a line feed, or a full
// buffer, and returns the line read so far. A backspace or delete erases the
// previously echoed byte, rubbing it out on the echo writer; every other
// byte is echoed as-is. The terminator itself is neither stored nor echoed.
//
// If the stream ends mid-line, the partial line is returned together with
// the read error (typically io.EOF).
func (lr *LineReader) ReadLine() (string, error) {
	lr.buf = lr.buf[:0]

	var b [1]byte
	for len(lr.buf) < cap(lr.buf) {
		n, err := lr.r.Read(b[:])
		if err != nil {
			return string(lr.buf), err
		}
		if n == 0 {
			continue
		}

		switch b[0] {
		case '\r', '\n':
			return string(lr.buf), nil
		case backspace, del:
			// Nothing to rub out at the start of the line.
			if len(lr.buf) > 0 {
				lr.buf = lr.buf[:len(lr.buf)-1]
				io.WriteString(lr.w, "\b \b")
			}
		default:
			lr.buf = append(lr.buf, b[0])
			lr.w.Write(b[:1])
		}
	}
	return string(lr.buf), nil
}
