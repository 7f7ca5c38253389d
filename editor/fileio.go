package editor

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// lineEnding is the row terminator used when serializing to disk: CRLF on
// Windows, bare LF elsewhere.
func lineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// RowsToBytes concatenates every row's raw bytes, each followed by one
// line ending — including after the last row.
func (e *Editor) RowsToBytes() ([]byte, int) {
	var buf strings.Builder
	ending := lineEnding()

	size := 0
	for _, row := range e.rows {
		size += len(row.chars) + len(ending)
	}
	buf.Grow(size)

	for _, row := range e.rows {
		buf.Write(row.chars)
		buf.WriteString(ending)
	}

	result := buf.String()
	return []byte(result), len(result)
}

// Open replaces the document with the contents of filename, stripping any
// trailing CR/LF from each line. Resets cursor, offsets and dirty state.
// A failure to open is fatal at the caller's discretion; Open itself only
// returns the error so callers mid-loop (e.g. the explorer) can show it
// instead of dying.
func (e *Editor) Open(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open file %q: %w", filename, err)
	}
	defer file.Close()

	e.filename = filename
	e.rows = nil
	e.totalRows = 0
	e.cx, e.cy, e.rx = 0, 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.SelectSyntaxHighlight()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		e.InsertRow(e.totalRows, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading file %q: %w", filename, err)
	}

	e.dirty = 0
	return nil
}

// Save writes the document to its filename, prompting for one first if
// the document was never named. Reports progress and errors through the
// status bar; never fatal.
func (e *Editor) Save() {
	if e.filename == "" {
		e.mode = SaveMode
		name := e.Prompt("Save as: %s (ESC to cancel)", nil)
		e.mode = EditMode
		if name == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.SelectSyntaxHighlight()
	}

	buf, length := e.RowsToBytes()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	defer file.Close()

	if err := file.Truncate(int64(length)); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}

	written, err := file.Write(buf)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	if written != length {
		e.SetStatusMessage("Can't save! Partial write: %d/%d bytes", written, length)
		return
	}

	e.SetStatusMessage("%d bytes written to disk", length)
	e.dirty = 0
}
