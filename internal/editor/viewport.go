package editor

import "github.com/cedarwright/vied/internal/term"

// scroll recomputes rx from the cursor and clamps the viewport offsets so
// the cursor stays within the visible rectangle.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = e.rows[e.cy].cxToRx(e.tabStop, e.cx)
	}

	if e.cy < e.rowOff {
		e.rowOff = e.cy
	}
	if e.cy >= e.rowOff+e.screenRows {
		e.rowOff = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOff {
		e.colOff = e.rx
	}
	if e.rx >= e.colOff+e.screenCols {
		e.colOff = e.rx - e.screenCols + 1
	}
}

// MoveCursor applies one of the arrow-key motions: LEFT wraps to the end of
// the previous row at column 0, RIGHT wraps to the start of the next row at
// end-of-row, UP/DOWN move cy within [0,N] (DOWN may land on the virtual
// tail row). cx is clamped to the new row's length afterward.
func (e *Editor) MoveCursor(key term.Key) {
	var rowLen int
	hasRow := e.cy < len(e.rows)
	if hasRow {
		rowLen = e.rows[e.cy].Len()
	}

	switch key {
	case term.ArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.rows[e.cy].Len()
		}
	case term.ArrowRight:
		if hasRow && e.cx < rowLen {
			e.cx++
		} else if hasRow && e.cx == rowLen {
			e.cy++
			e.cx = 0
		}
	case term.ArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case term.ArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	rowLen = 0
	if e.cy < len(e.rows) {
		rowLen = e.rows[e.cy].Len()
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}
