package editor

import (
	"bytes"

	"github.com/cedarwright/vied/internal/term"
)

// findState carries the incremental-search overlay's state across Prompt
// callback invocations: the last matched row (-1 = none yet), the search
// direction, and the highlight vector saved from the previously matched row
// so it can be restored before highlighting a new match (or on exit).
type findState struct {
	lastMatch   int
	direction   int
	savedRow    int
	savedHl     []Highlight
}

// Find saves the cursor and viewport, runs the prompt with an incremental
// search callback, and restores them if the user cancels (Esc).
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOff, savedRowOff := e.colOff, e.rowOff

	e.find = findState{lastMatch: -1, direction: 1}

	_, ok := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)
	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.colOff, e.rowOff = savedColOff, savedRowOff
	}
}

// findCallback implements the per-keystroke search behavior described in
// spec.md §4.H: restore any saved highlight, update direction from the
// arrow keys (any other edit resets the search), then scan all rows from
// lastMatch+direction, wrapping, for the first render containing query.
func (e *Editor) findCallback(query []byte, key term.Key) {
	if e.find.savedHl != nil {
		copy(e.rows[e.find.savedRow].hl, e.find.savedHl)
		e.find.savedHl = nil
	}

	switch key {
	case term.Key('\r'), term.Esc:
		e.find.lastMatch = -1
		e.find.direction = 1
		return
	case term.ArrowRight, term.ArrowDown:
		e.find.direction = 1
	case term.ArrowLeft, term.ArrowUp:
		e.find.direction = -1
	default:
		e.find.lastMatch = -1
		e.find.direction = 1
	}

	if e.find.lastMatch == -1 {
		e.find.direction = 1
	}

	current := e.find.lastMatch
	for range e.rows {
		current += e.find.direction
		if current == -1 {
			current = len(e.rows) - 1
		} else if current == len(e.rows) {
			current = 0
		}

		row := &e.rows[current]
		match := bytes.Index(row.render, query)
		if match == -1 {
			continue
		}

		e.find.lastMatch = current
		e.cy = current
		e.cx = row.rxToCx(e.tabStop, match)
		e.rowOff = len(e.rows)

		e.find.savedRow = current
		e.find.savedHl = make([]Highlight, len(row.hl))
		copy(e.find.savedHl, row.hl)
		for k := match; k < match+len(query) && k < len(row.hl); k++ {
			row.hl[k] = HLMatch
		}
		break
	}
}
