package editor

import "github.com/cedarwright/vied/internal/term"

// modalScreen is a self-contained overlay that temporarily takes over the
// document view: its content rows replace e.rows and its handleKey decides
// when to hand control back. Adapted from the teacher's ModalScreen/
// ModalManager pair, collapsed into one interface plus one driver loop.
type modalScreen interface {
	content() []Row
	statusMessage() string
	initialize(e *Editor)
	// handleKey returns (close, restore): close ends the loop; restore
	// asks the driver to put back the document state saved by showModal.
	handleKey(key term.Key, e *Editor) (close, restore bool)
}

// showModal saves the current document view, switches to mode, installs the
// screen's content, and runs the read-refresh-dispatch loop until the screen
// reports it should close.
func (e *Editor) showModal(mode mode, screen modalScreen) {
	saved := e.saveOverlayState()

	e.mode = mode
	e.rows = screen.content()
	e.cx, e.cy = 0, 0
	e.rowOff, e.colOff = 0, 0
	e.SetStatusMessage("%s", screen.statusMessage())
	screen.initialize(e)

	for {
		e.RefreshScreen()

		key, err := e.term.ReadKey()
		if err != nil {
			e.ShowError("%v", err)
			continue
		}

		close, restore := screen.handleKey(key, e)
		if close {
			if restore {
				e.restoreOverlayState(saved)
			} else {
				e.mode = modeEdit
			}
			return
		}
	}
}
