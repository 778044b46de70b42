package editor

import "slices"

// controlGlyph returns the single visible glyph drawn for a control byte:
// 1..26 map to @..Z (the Ctrl-letter they represent), anything else to '?'.
func controlGlyph(c byte) byte {
	if c >= 1 && c <= 26 {
		return c + '@'
	}
	return '?'
}

func isControl(c byte) bool { return c < 32 || c == 127 }

// cxToRx converts a logical column to a render column: a tab contributes
// TAB_STOP-(rx mod TAB_STOP), every other byte (control bytes included, per
// the data model: they are copied into render verbatim) contributes 1.
func (r *Row) cxToRx(tabStop, cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += tabStop - (rx % tabStop)
		} else {
			rx++
		}
	}
	return rx
}

// rxToCx returns the first logical column whose accumulated render column
// exceeds rxTarget, or the row length if none does.
func (r *Row) rxToCx(tabStop, rxTarget int) int {
	curRx := 0
	cx := 0
	for ; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += tabStop - (curRx % tabStop)
		} else {
			curRx++
		}
		if curRx > rxTarget {
			return cx
		}
	}
	return cx
}

// update fully recomputes render and highlight from chars. Total, not
// incremental: acceptable since per-row work is O(len(chars)). Control bytes
// are copied into render verbatim; controlGlyph substitution is purely a
// rendering-time concern (see render.go) and never changes render's length.
func (r *Row) update(e *Editor) {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.chars)+tabs*(e.tabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%e.tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
	r.updateSyntax(e)
}

// insertRow inserts a new row at index at in [0,N], shifting subsequent rows
// right and renumbering them. A no-op outside that range.
func (e *Editor) insertRow(at int, content []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	row := Row{idx: at, chars: slices.Clone(content)}
	e.rows = slices.Insert(e.rows, at, row)
	for j := at + 1; j < len(e.rows); j++ {
		e.rows[j].idx = j
	}
	e.rows[at].update(e)
	e.dirty++
}

// deleteRow frees row at, shifting subsequent rows left. A no-op for
// out-of-range at.
func (e *Editor) deleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = slices.Delete(e.rows, at, at+1)
	for j := at; j < len(e.rows); j++ {
		e.rows[j].idx = j
	}
	e.dirty++
}

// rowInsertChar inserts c at byte offset at, clamped to [0, len].
func (e *Editor) rowInsertChar(row *Row, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = slices.Insert(row.chars, at, c)
	row.update(e)
	e.dirty++
}

// rowDeleteChar removes the byte at offset at. A no-op outside [0, len).
func (e *Editor) rowDeleteChar(row *Row, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = slices.Delete(row.chars, at, at+1)
	row.update(e)
	e.dirty++
}

// rowAppendString appends s to the row's logical bytes.
func (e *Editor) rowAppendString(row *Row, s []byte) {
	row.chars = append(row.chars, s...)
	row.update(e)
	e.dirty++
}

// InsertChar inserts a single byte at the cursor and advances it. If the
// cursor sits on the virtual tail row, a new empty row is created first.
func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rowInsertChar(&e.rows[e.cy], e.cx, c)
	e.cx++
}

// InsertNewline splits the current row at the cursor (or inserts an empty
// row if the cursor is at column 0) and moves the cursor to the start of
// the new row.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		row := &e.rows[e.cy]
		tail := slices.Clone(row.chars[e.cx:])
		e.insertRow(e.cy+1, tail)
		row = &e.rows[e.cy]
		row.chars = row.chars[:e.cx]
		row.update(e)
	}
	e.cy++
	e.cx = 0
}

// DeleteChar implements backspace semantics: delete the byte before the
// cursor, or join the current row onto the previous one at column 0. A
// no-op on the virtual tail row or at the very start of the document.
func (e *Editor) DeleteChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.rows[e.cy]
	if e.cx > 0 {
		e.rowDeleteChar(row, e.cx-1)
		e.cx--
		return
	}

	e.cx = e.rows[e.cy-1].Len()
	e.rowAppendString(&e.rows[e.cy-1], row.chars)
	e.deleteRow(e.cy)
	e.cy--
}
