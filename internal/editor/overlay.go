package editor

// overlayState snapshots the document-view fields a modal overlay
// temporarily replaces, so the editor can be restored verbatim afterward.
type overlayState struct {
	rows           []Row
	cx, cy         int
	rowOff, colOff int
}

func (e *Editor) saveOverlayState() overlayState {
	return overlayState{
		rows:   e.rows,
		cx:     e.cx,
		cy:     e.cy,
		rowOff: e.rowOff,
		colOff: e.colOff,
	}
}

func (e *Editor) restoreOverlayState(s overlayState) {
	e.rows = s.rows
	e.cx, e.cy = s.cx, s.cy
	e.rowOff, e.colOff = s.rowOff, s.colOff
	e.mode = modeEdit
	e.SetStatusMessage("")
}

// textRow builds a read-only display row (no chars, just render/hl) used by
// the modal overlays to reuse the normal drawing pipeline for static text.
func textRow(idx int, text string) Row {
	return Row{idx: idx, render: []byte(text), hl: make([]Highlight, len(text))}
}

// highlightRow sets every byte of a display row to class hl; overlays use
// it with HLMatch to show the current selection and HLNormal to clear it.
func highlightRow(row *Row, hl Highlight) {
	for i := range row.hl {
		row.hl[i] = hl
	}
}
