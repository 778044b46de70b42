package editor

// Run drives the main loop: refresh, read and dispatch one key, repeat
// until ProcessKeypress signals exit (Ctrl-Q confirmed).
func (e *Editor) Run() {
	for {
		e.RefreshScreen()
		if !e.ProcessKeypress() {
			return
		}
	}
}
