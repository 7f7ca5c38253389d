// Package editor implements a modeless, raw-terminal text editor: a
// read-decode-mutate-render loop over a line-oriented buffer with
// derived render/highlight views and a per-row syntax highlighter.
package editor

import (
	"fmt"
	"os"
	"time"
)

const (
	KEDIT_VERSION = "1.0.0"
	QUIT_TIMES    = 3
)

// Mode is the editor's current view: normal editing, or one of the modal
// screens/prompts that temporarily take over input.
type Mode int

const (
	EditMode Mode = iota
	ExplorerMode
	SearchMode
	SaveMode
	HelpMode
)

// Editor is the process-wide editor state: cursor, view offsets, the row
// store, and everything needed to render one frame.
type Editor struct {
	cx, cy    int
	rx        int
	rowOffset int
	colOffset int

	screenRows int
	screenCols int

	totalRows int
	rows      []Row
	dirty     int

	filename string

	statusMessage     string
	statusMessageTime time.Time

	syntax *Syntax
	mode   Mode

	terminal  *Terminal
	quitTimes int
}

// New creates an Editor with its terminal handle ready; call Init once
// raw mode is enabled to size the view and reset document state.
func New() *Editor {
	return &Editor{
		terminal:  newTerminal(),
		quitTimes: QUIT_TIMES,
	}
}

// EnableRawMode puts the controlling tty into raw mode. Callers must
// arrange for RestoreTerminal to run on every exit path.
func (e *Editor) EnableRawMode() error {
	return e.terminal.EnableRawMode()
}

// RestoreTerminal undoes EnableRawMode. Safe to call more than once.
func (e *Editor) RestoreTerminal() {
	e.terminal.Restore()
}

// Init sizes the view from the terminal and resets the document to an
// empty, clean state. Call before the first file Open (or before the
// main loop, for a no-argument empty-buffer start).
func (e *Editor) Init() error {
	e.cx, e.cy, e.rx = 0, 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.rows = nil
	e.totalRows = 0
	e.dirty = 0
	e.filename = ""
	e.statusMessage = ""
	e.statusMessageTime = time.Time{}
	e.syntax = nil
	e.mode = EditMode

	rows, cols, err := getWindowSize()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	e.screenRows = rows - 2 // reserve the status bar and message bar
	e.screenCols = cols
	return nil
}

// Die restores the terminal, clears the screen, prints a diagnostic tagged
// with the failing operation, and exits with status 1. Reserved for
// failures that cannot be recovered from mid-loop.
func (e *Editor) Die(format string, args ...any) {
	e.RestoreTerminal()
	os.Stdout.WriteString(CLEAR_SCREEN)
	os.Stdout.WriteString(CURSOR_HOME)
	fmt.Fprintf(os.Stderr, "kedit: "+format+"\n", args...)
	os.Exit(1)
}

// ShowError posts a status-bar message and lets editing continue. Used
// for every failure reachable from inside the running loop.
func (e *Editor) ShowError(format string, args ...any) {
	e.SetStatusMessage(format, args...)
}

// SetStatusMessage replaces the message bar's content and resets its age.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

// Redraw re-queries the window size and forces an immediate refresh —
// bound to Ctrl-R, since there is no SIGWINCH handling (see DESIGN.md).
func (e *Editor) Redraw() {
	rows, cols, err := getWindowSize()
	if err != nil {
		e.ShowError("%v", err)
		return
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	e.RefreshScreen()
}

/*** editing operations ***/

// InsertChar inserts a byte at the cursor and advances it. Typing at the
// virtual tail row first appends a fresh empty row.
func (e *Editor) InsertChar(c byte) {
	if e.cy == e.totalRows {
		e.InsertRow(e.totalRows, nil)
	}
	e.rows[e.cy].InsertChar(e, e.cx, c)
	e.cx++
}

// InsertNewline splits the current row at the cursor (or inserts an empty
// row when at column 0) and moves the cursor to column 0 of the new row.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.InsertRow(e.cy, nil)
	} else {
		row := &e.rows[e.cy]
		tail := append([]byte(nil), row.chars[e.cx:]...)
		e.InsertRow(e.cy+1, tail)

		row = &e.rows[e.cy]
		row.chars = row.chars[:e.cx]
		row.Update(e)
	}
	e.cy++
	e.cx = 0
}

// DeleteChar implements Backspace: deletes the byte before the cursor, or
// joins the current row onto the previous one at column 0. A no-op at
// the very start of the document or on the virtual tail row.
func (e *Editor) DeleteChar() {
	if e.cy == e.totalRows {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.rows[e.cy]
	if e.cx > 0 {
		row.DeleteChar(e, e.cx-1)
		e.cx--
		return
	}

	e.cx = len(e.rows[e.cy-1].chars)
	e.rows[e.cy-1].AppendBytes(e, row.chars)
	e.DeleteRow(e.cy)
	e.cy--
}

// MoveCursor applies one of the arrow keys, wrapping at row boundaries
// and clamping cx to the landing row's length.
func (e *Editor) MoveCursor(key Key) {
	var rowLen int
	hasRow := e.cy < e.totalRows
	if hasRow {
		rowLen = len(e.rows[e.cy].chars)
	}

	switch key {
	case ArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case ArrowRight:
		if hasRow && e.cx < rowLen {
			e.cx++
		} else if hasRow && e.cx == rowLen {
			e.cy++
			e.cx = 0
		}
	case ArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case ArrowDown:
		if e.cy < e.totalRows {
			e.cy++
		}
	}

	rowLen = 0
	if e.cy < e.totalRows {
		rowLen = len(e.rows[e.cy].chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

/*** controller loop ***/

// ProcessKeypress reads one token and dispatches it. Always resets the
// quit-confirmation counter unless the key itself is Ctrl-Q.
func (e *Editor) ProcessKeypress() {
	key, err := readKey()
	if err != nil {
		e.ShowError("%v", err)
		return
	}

	switch key {
	case '\r':
		e.InsertNewline()

	case withControlKey('q'):
		if e.dirty > 0 && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return
		}
		e.RestoreTerminal()
		os.Stdout.WriteString(CLEAR_SCREEN)
		os.Stdout.WriteString(CURSOR_HOME)
		os.Exit(0)

	case withControlKey('s'):
		e.Save()

	case withControlKey('e'):
		e.Explorer()
		e.mode = EditMode

	case withControlKey('f'):
		e.Find()

	case withControlKey('r'):
		e.Redraw()

	case withControlKey('h'):
		e.Help()

	case HomeKey:
		e.cx = 0

	case EndKey:
		if e.cy < e.totalRows {
			e.cx = len(e.rows[e.cy].chars)
		}

	case BACKSPACE, DeleteKey:
		if key == DeleteKey {
			e.MoveCursor(ArrowRight)
		}
		e.DeleteChar()

	case PageUp:
		e.cy = e.rowOffset
		for range e.screenRows {
			e.MoveCursor(ArrowUp)
		}

	case PageDown:
		e.cy = min(e.rowOffset+e.screenRows-1, e.totalRows)
		for range e.screenRows {
			e.MoveCursor(ArrowDown)
		}

	case ArrowLeft, ArrowRight, ArrowUp, ArrowDown:
		e.MoveCursor(key)

	case withControlKey('l'), EscapeKey:
		// absorbed: no-op

	default:
		if key >= 0 && key < 256 {
			e.InsertChar(byte(key))
		}
	}

	e.quitTimes = QUIT_TIMES
}

// Run is the main event loop: refresh, read one token, dispatch, forever.
func (e *Editor) Run() {
	for {
		e.RefreshScreen()
		e.ProcessKeypress()
	}
}
