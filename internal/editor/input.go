package editor

import (
	"fmt"
	"os"

	"github.com/cedarwright/vied/internal/term"
)

// ctrlKey maps a character to its control-key code by stripping bits 5 and 6.
func ctrlKey(c byte) byte { return c & 0x1f }

// ShowError posts a non-fatal error to the message bar and the debug log.
func (e *Editor) ShowError(format string, args ...any) {
	e.log.Warn().Msg(fmt.Sprintf(format, args...))
	e.SetStatusMessage("Error: "+format, args...)
}

// Die restores the terminal, clears the screen, logs, and exits(1). Used for
// the fatal errors spec.md §7 calls out: terminal setup failure and any read
// failure other than "would block".
func (e *Editor) Die(op string, err error) {
	if e.term != nil {
		e.term.DisableRaw()
	}
	ClearAndHome()
	e.log.Error().Err(err).Str("op", op).Msg("fatal")
	fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
	os.Exit(1)
}

// ProcessKeypress reads one key and dispatches it to the document/viewport
// mutation it maps to. It returns false when the process should exit.
func (e *Editor) ProcessKeypress() bool {
	key, err := e.term.ReadKey()
	if err != nil {
		e.Die("read key", err)
	}

	switch key {
	case term.Key('\r'):
		e.InsertNewline()

	case term.Key(ctrlKey('q')):
		if e.Dirty() && e.quitTimesLeft > 1 {
			e.quitTimesLeft--
			e.SetStatusMessage("WARNING: unsaved changes. Press Ctrl-Q %d more time(s) to quit.", e.quitTimesLeft)
			return true
		}
		ClearAndHome()
		return false

	case term.Key(ctrlKey('s')):
		e.Save()

	case term.Key(ctrlKey('f')):
		e.Find()

	case term.Key(ctrlKey('o')):
		e.OpenPicker()

	case term.Key(ctrlKey('g')):
		e.ShowHelp()

	case term.Home:
		e.cx = 0

	case term.End:
		if e.cy < len(e.rows) {
			e.cx = e.rows[e.cy].Len()
		}

	case term.Backspace, term.Key(ctrlKey('h')), term.Delete:
		if key == term.Delete {
			e.MoveCursor(term.ArrowRight)
		}
		e.DeleteChar()

	case term.PageUp, term.PageDown:
		if key == term.PageUp {
			e.cy = e.rowOff
		} else {
			e.cy = e.rowOff + e.screenRows - 1
			if e.cy > len(e.rows) {
				e.cy = len(e.rows)
			}
		}
		for i := 0; i < e.screenRows; i++ {
			if key == term.PageUp {
				e.MoveCursor(term.ArrowUp)
			} else {
				e.MoveCursor(term.ArrowDown)
			}
		}

	case term.ArrowUp, term.ArrowDown, term.ArrowLeft, term.ArrowRight:
		e.MoveCursor(key)

	case term.Key(ctrlKey('l')), term.Esc:
		// no-op

	default:
		if key >= 0 && key < 256 {
			e.InsertChar(byte(key))
		}
	}

	e.quitTimesLeft = e.quitTimesInit
	return true
}
