package editor

import (
	"github.com/cedarwright/vied/internal/term"
)

// promptCallback is invoked after every handled key while a Prompt is
// active, with the current buffer and the key that was just handled
// (including the commit/cancel key).
type promptCallback func(buf []byte, key term.Key)

// Prompt runs a modal single-line input loop: format must contain exactly
// one %s, substituted with the buffer-so-far and shown in the message bar.
// Enter commits (only if the buffer is non-empty) and returns (value, true);
// Esc cancels and returns ("", false). The full frame re-renders on every
// key so the prompt is visible through the normal status/message bars.
func (e *Editor) Prompt(format string, callback promptCallback) (string, bool) {
	buf := make([]byte, 0, 32)

	for {
		e.SetStatusMessage(format, string(buf))
		e.RefreshScreen()

		key, err := e.term.ReadKey()
		if err != nil {
			e.ShowError("%v", err)
			continue
		}

		switch key {
		case term.Delete, term.Backspace, term.Key(ctrlKey('h')):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case term.Esc:
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return "", false

		case term.Key('\r'):
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf), true
			}

		default:
			if key < 128 && !isControl(byte(key)) {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}
