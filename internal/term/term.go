// Package term drives the controlling TTY: raw-mode lifecycle, byte-at-a-time
// key decoding, and window-size queries.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Key is a decoded logical keypress: either a raw byte (0-255) or one of the
// synthetic codes below for multi-byte escape sequences.
type Key int

const (
	Esc       Key = 0x1b
	Backspace Key = 127
)

const (
	ArrowLeft Key = iota + 1000
	ArrowRight
	ArrowUp
	ArrowDown
	Delete
	Home
	End
	PageUp
	PageDown
)

// Terminal owns the raw-mode lifecycle for one controlling TTY.
type Terminal struct {
	fd   int
	orig *unix.Termios
}

// New returns a Terminal bound to stdin/stdout.
func New() *Terminal {
	return &Terminal{fd: int(os.Stdin.Fd())}
}

// IsTerminal reports whether stdin is attached to a TTY.
func (t *Terminal) IsTerminal() bool {
	return xterm.IsTerminal(t.fd)
}

// EnableRaw disables echo, canonical buffering, signal-generating keys,
// software flow control, literal-next, CR->LF translation, break-to-interrupt,
// parity checks and 8th-bit stripping, and all output post-processing. It
// forces 8-bit characters and a ~100ms read timeout (VMIN=0, VTIME=1).
func (t *Terminal) EnableRaw() error {
	orig, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get terminal attributes: %w", err)
	}
	t.orig = orig

	raw := *orig
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, &raw); err != nil {
		return fmt.Errorf("set terminal attributes: %w", err)
	}
	return nil
}

// DisableRaw restores the attributes captured by EnableRaw. Safe to call
// more than once or without a prior EnableRaw.
func (t *Terminal) DisableRaw() error {
	if t.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, t.orig); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	return nil
}

// ReadKey blocks until a byte arrives (subject to the ~100ms read timeout
// firing repeatedly while idle) and decodes one logical key, demultiplexing
// ANSI escape sequences. A bare ESC with no continuation within the short
// timeout is returned as Esc.
func (t *Terminal) ReadKey() (Key, error) {
	c, err := t.readByte()
	if err != nil {
		return 0, err
	}
	if c != byte(Esc) {
		return Key(c), nil
	}

	var seq [3]byte
	b0, ok, err := t.tryReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return Esc, nil
	}
	seq[0] = b0

	b1, ok, err := t.tryReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return Esc, nil
	}
	seq[1] = b1

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			b2, ok, err := t.tryReadByte()
			if err != nil {
				return 0, err
			}
			if !ok || b2 != '~' {
				return Esc, nil
			}
			switch seq[1] {
			case '1', '7':
				return Home, nil
			case '3':
				return Delete, nil
			case '4', '8':
				return End, nil
			case '5':
				return PageUp, nil
			case '6':
				return PageDown, nil
			}
		} else {
			switch seq[1] {
			case 'A':
				return ArrowUp, nil
			case 'B':
				return ArrowDown, nil
			case 'C':
				return ArrowRight, nil
			case 'D':
				return ArrowLeft, nil
			case 'H':
				return Home, nil
			case 'F':
				return End, nil
			}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return Home, nil
		case 'F':
			return End, nil
		}
	}
	return Esc, nil
}

// readByte blocks until exactly one byte is read from stdin. A timed-out
// read (VMIN=0/VTIME=1 returns zero bytes, which os.File reports as io.EOF)
// is retried while raw mode is enabled; any other error, and EOF outside
// raw mode, is returned immediately rather than spun on forever.
func (t *Terminal) readByte() (byte, error) {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n == 1 {
			return buf[0], nil
		}
		if err != nil && !t.isReadTimeout(err) {
			return 0, fmt.Errorf("read key: %w", err)
		}
	}
}

// isReadTimeout reports whether err is the zero-byte read that the raw-mode
// read timeout produces.
func (t *Terminal) isReadTimeout(err error) bool {
	return t.orig != nil && errors.Is(err, io.EOF)
}

// tryReadByte reads one byte within the read timeout, reporting ok=false
// (no error) when nothing arrived in time, matching the "bare ESC" case.
func (t *Terminal) tryReadByte() (byte, bool, error) {
	buf := make([]byte, 1)
	n, err := os.Stdin.Read(buf)
	if n == 1 {
		return buf[0], true, nil
	}
	if err != nil && !t.isReadTimeout(err) {
		return 0, false, fmt.Errorf("read key: %w", err)
	}
	return 0, false, nil
}

// WindowSize returns (rows, cols). It prefers the ioctl interface and falls
// back to moving the cursor to (999,999) and parsing a cursor-position
// report.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}
	return t.windowSizeFallback()
}

func (t *Terminal) windowSizeFallback() (int, int, error) {
	if _, err := os.Stdout.Write([]byte("\x1b[999C\x1b[999B")); err != nil {
		return 0, 0, fmt.Errorf("query window size: %w", err)
	}
	return t.cursorPosition()
}

func (t *Terminal) cursorPosition() (int, int, error) {
	if _, err := os.Stdout.Write([]byte("\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("query cursor position: %w", err)
	}

	var buf [32]byte
	n := 0
	for n < len(buf) {
		b, err := t.readByte()
		if err != nil {
			return 0, 0, err
		}
		buf[n] = b
		n++
		if b == 'R' {
			break
		}
	}
	if n < 2 || buf[0] != byte(Esc) || buf[1] != '[' {
		return 0, 0, errors.New("malformed cursor position response")
	}

	var row, col int
	if _, err := fmt.Sscanf(string(buf[2:n-1]), "%d;%d", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("parse cursor position: %w", err)
	}
	return row, col, nil
}
