package editor

import "github.com/cedarwright/vied/internal/term"

var helpText = []string{
	"=== vied help ===",
	"",
	"Navigation:",
	"  Arrow keys       move cursor",
	"  Page Up/Down     scroll a screen",
	"  Home/End         start/end of line",
	"",
	"Editing:",
	"  Ctrl-S           save file",
	"  Ctrl-Q           quit (press twice with unsaved changes)",
	"  Backspace/Delete delete a character",
	"",
	"Search:",
	"  Ctrl-F           find, Up/Down cycles matches, Esc cancels",
	"",
	"Files:",
	"  Ctrl-O           open file picker",
	"",
	"Other:",
	"  Ctrl-G           this help screen",
	"",
	"Press q or Esc to close.",
}

// helpScreen is a static, scrollable overlay listing key bindings.
// Grounded on the teacher's HelpScreen.
type helpScreen struct {
	rows []Row
}

func newHelpScreen() *helpScreen {
	rows := make([]Row, len(helpText))
	for i, line := range helpText {
		rows[i] = textRow(i, line)
	}
	return &helpScreen{rows: rows}
}

func (h *helpScreen) content() []Row        { return h.rows }
func (h *helpScreen) statusMessage() string { return "Help - Arrow keys scroll, q or Esc closes" }
func (h *helpScreen) initialize(e *Editor)  { e.cy, e.rowOff = 0, 0 }

func (h *helpScreen) handleKey(key term.Key, e *Editor) (close, restore bool) {
	switch key {
	case term.Esc, term.Key('q'):
		return true, true
	case term.ArrowUp:
		if e.cy > 0 {
			e.cy--
		}
	case term.ArrowDown:
		if e.cy < len(h.rows)-1 {
			e.cy++
		}
	case term.PageUp:
		e.cy = 0
	case term.PageDown:
		e.cy = len(h.rows) - 1
	}
	return false, false
}

// ShowHelp displays the key-binding reference overlay.
func (e *Editor) ShowHelp() {
	e.showModal(modeHelp, newHelpScreen())
}
