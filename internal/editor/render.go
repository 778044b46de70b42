package editor

import (
	"fmt"
	"os"
	"time"
)

const (
	ansiClearScreen    = "\x1b[2J"
	ansiCursorHome     = "\x1b[H"
	ansiClearLine      = "\x1b[K"
	ansiCursorHide     = "\x1b[?25l"
	ansiCursorShow     = "\x1b[?25h"
	ansiInvertVideo    = "\x1b[7m"
	ansiResetAttrs     = "\x1b[m"
	ansiCursorPosition = "\x1b[%d;%dH"
)

const version = "0.1.0"

// appendBuffer is a growable byte container for one rendered frame. One
// instance is built per RefreshScreen call and flushed with a single write,
// coalescing dozens of escape-sequence writes into one syscall so the
// terminal never observes a partial frame.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s string) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendBytes(s []byte) {
	ab.b = append(ab.b, s...)
}

// RefreshScreen composes and flushes exactly one frame: text area, status
// bar, message bar, and cursor placement, bracketed by cursor hide/show.
func (e *Editor) RefreshScreen() {
	e.scroll()

	var ab appendBuffer
	ab.append(ansiCursorHide)
	ab.append(ansiCursorHome)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.append(fmt.Sprintf(ansiCursorPosition, e.cy-e.rowOff+1, e.rx-e.colOff+1))
	ab.append(ansiCursorShow)

	os.Stdout.Write(ab.b)
}

// ClearAndHome is used on fatal-error and quit paths to leave the terminal
// in a sane state before the process exits.
func ClearAndHome() {
	os.Stdout.Write([]byte(ansiClearScreen))
	os.Stdout.Write([]byte(ansiCursorHome))
}

func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOff
		if fileRow >= len(e.rows) {
			e.drawEmptyRow(ab, y)
		} else {
			e.drawTextRow(ab, &e.rows[fileRow])
		}
		ab.append(ansiClearLine)
		ab.append("\r\n")
	}
}

func (e *Editor) drawEmptyRow(ab *appendBuffer, y int) {
	if len(e.rows) == 0 && y == e.screenRows/3 {
		welcome := fmt.Sprintf("vied editor -- version %s", version)
		if len(welcome) > e.screenCols {
			welcome = welcome[:e.screenCols]
		}
		padding := (e.screenCols - len(welcome)) / 2
		if padding > 0 {
			ab.append("~")
			padding--
		}
		for ; padding > 0; padding-- {
			ab.append(" ")
		}
		ab.append(welcome)
		return
	}
	ab.append("~")
}

func (e *Editor) drawTextRow(ab *appendBuffer, row *Row) {
	lineLen := len(row.render) - e.colOff
	if lineLen < 0 {
		lineLen = 0
	}
	if lineLen > e.screenCols {
		lineLen = e.screenCols
	}

	start := e.colOff
	currentColor := -1
	for j := 0; j < lineLen; j++ {
		c := row.render[start+j]
		hl := row.hl[start+j]

		if isControl(c) {
			ab.append(ansiInvertVideo)
			ab.append(string(controlGlyph(c)))
			ab.append(ansiResetAttrs)
			if currentColor != -1 {
				ab.append(fmt.Sprintf("\x1b[%dm", currentColor))
			}
			continue
		}

		if hl == HLNormal {
			if currentColor != sgrDefault {
				ab.append(fmt.Sprintf("\x1b[%dm", sgrDefault))
				currentColor = sgrDefault
			}
		} else if color := sgrColor(hl); color != currentColor {
			ab.append(fmt.Sprintf("\x1b[%dm", color))
			currentColor = color
		}
		ab.append(string(c))
	}
	ab.append(fmt.Sprintf("\x1b[%dm", sgrDefault))
}

func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.append(ansiInvertVideo)

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	modified := ""
	if e.Dirty() {
		modified = "(modified)"
	}
	status := fmt.Sprintf("%s - %d lines %s", name, len(e.rows), modified)
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.Filetype
	}
	right := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.rows))

	ab.append(status)
	col := len(status)
	for col < e.screenCols {
		if e.screenCols-col == len(right) {
			ab.append(right)
			col += len(right)
			break
		}
		ab.append(" ")
		col++
	}

	ab.append(ansiResetAttrs)
	ab.append("\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.append(ansiClearLine)
	msg := e.statusMessage
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if len(msg) > 0 && time.Since(e.statusMessageTime) < statusMessageTTL {
		ab.append(msg)
	}
}

// SetStatusMessage formats and timestamps a new message-bar message.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}
