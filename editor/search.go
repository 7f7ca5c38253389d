package editor

import "bytes"

// Incremental-search state, preserved across keystrokes within one Find
// session (there is only ever one search in flight, so package-level
// state mirrors the single-threaded resource model).
var (
	lastMatch   = -1
	direction   = 1
	savedHl     []int
	savedHlLine int
)

// Prompt reads a line on the status-message bar, invoking callback after
// every keystroke (including the final Enter/Escape). Returns the typed
// text, or "" if the prompt was cancelled with Escape; Enter on an empty
// input does not end the prompt.
func (e *Editor) Prompt(prompt string, callback func([]byte, Key)) string {
	bufSize := 128
	buf := make([]byte, 0, bufSize)

	for {
		e.SetStatusMessage(prompt, string(buf))
		e.RefreshScreen()

		key, err := readKey()
		if err != nil {
			e.ShowError("%v", err)
			continue
		}

		switch key {
		case DeleteKey, BACKSPACE, withControlKey('h'):
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case EscapeKey:
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return ""

		case '\r':
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf)
			}

		default:
			if key < 128 && !isControl(byte(key)) {
				if len(buf) == bufSize-1 {
					bufSize *= 2
					newBuf := make([]byte, len(buf), bufSize)
					copy(newBuf, buf)
					buf = newBuf
				}
				buf = append(buf, byte(key))
			}
		}
		if callback != nil {
			callback(buf, key)
		}
	}
}

// FindCallback drives one step of incremental search: it restores the
// previous match's highlight, picks the next/previous row to search
// depending on the arrow key that triggered this step, and re-highlights
// the new match with HL_MATCH.
func (e *Editor) FindCallback(query []byte, key Key) {
	if savedHl != nil {
		copy(e.rows[savedHlLine].hl, savedHl)
		savedHl = nil
	}

	switch key {
	case '\r', EscapeKey:
		lastMatch = -1
		direction = 1
		return
	case ArrowRight, ArrowDown:
		direction = 1
	case ArrowLeft, ArrowUp:
		direction = -1
	default:
		lastMatch = -1
		direction = 1
	}

	if lastMatch == -1 {
		direction = 1
	}
	current := lastMatch

	for range e.totalRows {
		current += direction
		if current == -1 {
			current = e.totalRows - 1
		} else if current == e.totalRows {
			current = 0
		}

		row := &e.rows[current]
		match := bytes.Index(row.render, query)
		if match != -1 {
			lastMatch = current
			e.cy = current
			e.cx = row.rxToCx(match)
			e.rowOffset = e.totalRows

			savedHlLine = current
			savedHl = make([]int, len(row.hl))
			copy(savedHl, row.hl)
			for k := match; k < match+len(query) && k < len(row.hl); k++ {
				row.hl[k] = HL_MATCH
			}
			break
		}
	}
}

// Find opens the incremental-search prompt, restoring the cursor and
// view offsets if the prompt was cancelled.
func (e *Editor) Find() {
	savedCx := e.cx
	savedCy := e.cy
	savedColOffset := e.colOffset
	savedRowOffset := e.rowOffset

	e.mode = SearchMode
	query := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.FindCallback)
	e.mode = EditMode

	if query == "" {
		e.cx = savedCx
		e.cy = savedCy
		e.colOffset = savedColOffset
		e.rowOffset = savedRowOffset
	}
}
