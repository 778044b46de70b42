package editor

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// Open loads filename into a fresh set of rows, one per input line with any
// trailing \r/\n stripped, and activates the matching language. Dirty is
// reset to 0 on success.
func (e *Editor) Open(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer file.Close()

	e.rows = nil
	e.cx, e.cy = 0, 0
	e.rowOff, e.colOff = 0, 0
	e.rx = 0
	e.filename = filename
	e.SelectLanguage(filename)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		e.insertRow(len(e.rows), line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	e.dirty = 0
	e.log.Info().Str("file", filename).Int("rows", len(e.rows)).Msg("opened file")
	return nil
}

// rowsToBytes concatenates all rows, each terminated by \n, into one buffer.
func (e *Editor) rowsToBytes() []byte {
	var buf bytes.Buffer
	for _, row := range e.rows {
		buf.Write(row.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save writes the document to its filename, prompting for one first if
// none is set. It opens for read/write (creating with 0644), truncates to
// the exact output length, and writes the buffer — no temp file, no fsync.
// On success dirty resets to 0 and a byte-count message is posted; on any
// failure dirty is left set and an error message is posted instead.
func (e *Editor) Save() {
	if e.filename == "" {
		name, ok := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.SelectLanguage(e.filename)
	}

	buf := e.rowsToBytes()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.saveFailed(err)
		return
	}
	defer file.Close()

	if err := file.Truncate(int64(len(buf))); err != nil {
		e.saveFailed(err)
		return
	}
	if _, err := file.Write(buf); err != nil {
		e.saveFailed(err)
		return
	}

	e.dirty = 0
	e.SetStatusMessage("%d bytes written to disk", len(buf))
	e.log.Info().Str("file", e.filename).Int("bytes", len(buf)).Msg("saved file")
}

func (e *Editor) saveFailed(err error) {
	e.SetStatusMessage("Can't save! I/O error: %s", err.Error())
	e.log.Error().Err(err).Str("file", e.filename).Msg("save failed")
}
