package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cedarwright/vied/internal/term"
)

// explorerScreen lists the entries of a directory and loads whichever file
// the user selects into the single document buffer, replacing its contents.
// Grounded on the teacher's ExplorerScreen/ModalManager pair; this does not
// add multi-buffer management, it only picks what Open loads next.
type explorerScreen struct {
	dir       string
	hasParent bool
	entries   []os.DirEntry
	rows      []Row
	selected  int
}

func newExplorerScreen(e *Editor, dir string) *explorerScreen {
	ex := &explorerScreen{dir: dir}
	if err := ex.load(e); err != nil {
		e.ShowError("read directory: %v", err)
		return nil
	}
	return ex
}

func (ex *explorerScreen) load(e *Editor) error {
	entries, err := os.ReadDir(ex.dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})
	ex.entries = entries
	ex.hasParent = filepath.Clean(ex.dir) != "."

	rows := make([]Row, 0, len(entries)+2)
	rows = append(rows, textRow(0, fmt.Sprintf("=== %s ===", ex.dir)))
	if ex.hasParent {
		rows = append(rows, textRow(len(rows), ".. (parent directory)"))
	}
	for _, ent := range entries {
		label := ent.Name()
		if ent.IsDir() {
			label += "/"
		} else if info, err := ent.Info(); err == nil {
			label = fmt.Sprintf("%s (%d bytes)", label, info.Size())
		}
		rows = append(rows, textRow(len(rows), label))
	}
	ex.rows = rows
	ex.selected = ex.firstSelectable()
	return nil
}

func (ex *explorerScreen) firstSelectable() int {
	if ex.hasParent {
		return 1
	}
	if len(ex.entries) > 0 {
		return 1
	}
	return 0
}

func (ex *explorerScreen) content() []Row { return ex.rows }

func (ex *explorerScreen) statusMessage() string {
	return fmt.Sprintf("Explorer: %s - %d items (Enter open/enter dir, Esc/q cancel)", ex.dir, len(ex.entries))
}

func (ex *explorerScreen) initialize(e *Editor) {
	e.cy = ex.selected
	ex.highlight(e)
}

func (ex *explorerScreen) highlight(e *Editor) {
	for i := range ex.rows {
		highlightRow(&ex.rows[i], HLNormal)
	}
	if ex.selected > 0 && ex.selected < len(ex.rows) {
		highlightRow(&ex.rows[ex.selected], HLMatch)
	}
	e.rows = ex.rows
}

func (ex *explorerScreen) handleKey(key term.Key, e *Editor) (close, restore bool) {
	switch key {
	case term.Esc, term.Key('q'):
		return true, true

	case term.ArrowUp:
		if ex.selected > ex.firstSelectable() {
			ex.selected--
			ex.highlight(e)
		}

	case term.ArrowDown:
		if ex.selected < len(ex.rows)-1 {
			ex.selected++
			ex.highlight(e)
		}

	case term.Key('\r'):
		return ex.open(e)
	}
	return false, false
}

// entryIndex maps the selected display row back into ex.entries, accounting
// for the header row and the optional parent-directory row.
func (ex *explorerScreen) entryIndex() int {
	idx := ex.selected - 1
	if ex.hasParent {
		idx--
	}
	return idx
}

func (ex *explorerScreen) open(e *Editor) (close, restore bool) {
	if ex.hasParent && ex.selected == 1 {
		ex.dir = filepath.Dir(ex.dir)
		if err := ex.load(e); err != nil {
			e.ShowError("read directory: %v", err)
			return false, false
		}
		ex.reinstall(e)
		return false, false
	}

	idx := ex.entryIndex()
	if idx < 0 || idx >= len(ex.entries) {
		return false, false
	}
	entry := ex.entries[idx]

	if entry.IsDir() {
		ex.dir = filepath.Join(ex.dir, entry.Name())
		if err := ex.load(e); err != nil {
			e.ShowError("read directory: %v", err)
			return false, false
		}
		ex.reinstall(e)
		return false, false
	}

	if e.Dirty() {
		e.SetStatusMessage("Unsaved changes - save or discard before opening another file")
		return false, false
	}

	path := filepath.Join(ex.dir, entry.Name())
	if err := e.Open(path); err != nil {
		e.ShowError("open %s: %v", path, err)
		return false, false
	}
	return true, false
}

func (ex *explorerScreen) reinstall(e *Editor) {
	e.cy = ex.selected
	e.rowOff, e.colOff = 0, 0
	ex.highlight(e)
	e.SetStatusMessage("%s", ex.statusMessage())
}

// OpenPicker shows a directory listing starting at the working directory
// and loads whatever file the user selects.
func (e *Editor) OpenPicker() {
	screen := newExplorerScreen(e, ".")
	if screen == nil {
		return
	}
	e.showModal(modeExplorer, screen)
}
