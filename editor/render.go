package editor

import (
	"fmt"
	"os"
	"time"
)

// appendBuffer accumulates one frame's worth of output so RefreshScreen
// can emit it in a single write.
type appendBuffer struct {
	b   []byte
	len int
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
	ab.len += len(s)
}

// Scroll recomputes rx from cx and adjusts the row/column offsets so the
// cursor stays within the visible viewport.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < e.totalRows {
		e.rx = e.rows[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

// DrawRows renders the document viewport, one screen row at a time, with
// per-byte color/style escapes driven by each row's highlight classes.
// Rows past the end of the document show a "~" gutter; an empty document
// shows a centered welcome banner one third down the screen.
func (e *Editor) DrawRows(abuf *appendBuffer) {
	for y := range e.screenRows {
		filerow := y + e.rowOffset
		if filerow >= e.totalRows {
			if e.totalRows == 0 && y == e.screenRows/3 {
				welcome := "kedit -- version " + KEDIT_VERSION
				welcomeLen := min(len(welcome), e.screenCols)
				padding := (e.screenCols - welcomeLen) / 2
				if padding > 0 {
					abuf.append([]byte("~"))
					padding--
				}
				for range padding {
					abuf.append([]byte(" "))
				}
				abuf.append([]byte(welcome[:welcomeLen]))
			} else {
				abuf.append([]byte("~"))
			}
		} else {
			lineLen := min(max(len(e.rows[filerow].render)-e.colOffset, 0), e.screenCols)
			start := e.colOffset
			hl := e.rows[filerow].hl
			render := e.rows[filerow].render
			currentColor := -1
			currentStyle := 0
			for j := range lineLen {
				c := render[start+j]
				h := hl[start+j]
				if h == HL_NORMAL {
					if currentColor != -1 {
						abuf.append(fmt.Appendf(nil, "\x1b[%dm", ANSI_COLOR_DEFAULT))
						currentColor = -1
					}
					if currentStyle != 0 {
						if resetCode := styleResetCode(currentStyle); resetCode != 0 {
							abuf.append(fmt.Appendf(nil, "\x1b[%dm", resetCode))
						}
						currentStyle = 0
					}
					abuf.append([]byte{c})
				} else {
					color, style := syntaxToGraphics(h)

					if currentStyle != style {
						if currentStyle != 0 {
							if resetCode := styleResetCode(currentStyle); resetCode != 0 {
								abuf.append(fmt.Appendf(nil, "\x1b[%dm", resetCode))
							}
						}
						if style != 0 {
							abuf.append(fmt.Appendf(nil, "\x1b[%dm", style))
						}
						currentStyle = style
					}

					if color != currentColor {
						currentColor = color
						abuf.append(fmt.Appendf(nil, "\x1b[%dm", color))
					}
					abuf.append([]byte{c})
				}
			}
			abuf.append(fmt.Appendf(nil, "\x1b[%dm", ANSI_COLOR_DEFAULT))
			if currentStyle != 0 {
				if resetCode := styleResetCode(currentStyle); resetCode != 0 {
					abuf.append(fmt.Appendf(nil, "\x1b[%dm", resetCode))
				}
			}
		}

		abuf.append([]byte(CLEAR_LINE))
		abuf.append([]byte("\r\n"))
	}
}

// DrawStatusBar renders the reverse-video status line: filename, dirty
// flag and line count on the left, filetype and cursor row on the right.
func (e *Editor) DrawStatusBar(abuf *appendBuffer) {
	abuf.append([]byte(COLORS_INVERT))

	var status, rstatus string
	filename := "[No Name]"
	if e.filename != "" {
		filename = e.filename
		if len(filename) > 20 {
			filename = filename[:20]
		}
	}
	dirtyFlag := ""
	if e.dirty > 0 {
		dirtyFlag = "(modified)"
	}
	switch e.mode {
	case ExplorerMode:
		status = fmt.Sprintf("Explorer - %s %s", filename, dirtyFlag)
	case HelpMode:
		status = "Help - press q or Escape to return"
	default:
		status = fmt.Sprintf("%.20s - %d lines %s", filename, e.totalRows, dirtyFlag)
	}
	statusLen := min(len(status), e.screenCols)

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.filetype
	}
	rstatus = fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, e.totalRows)
	rstatusLen := len(rstatus)
	abuf.append([]byte(status[:statusLen]))

	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.append([]byte(rstatus))
			break
		}
		abuf.append([]byte(" "))
		statusLen++
	}

	abuf.append([]byte(COLORS_RESET))
	abuf.append([]byte("\r\n"))
}

// DrawMessageBar renders the transient status message, as long as it is
// younger than five seconds.
func (e *Editor) DrawMessageBar(abuf *appendBuffer) {
	abuf.append([]byte(CLEAR_LINE))
	messageLen := min(len(e.statusMessage), e.screenCols)
	if time.Since(e.statusMessageTime) < 5*time.Second {
		abuf.append([]byte(e.statusMessage[:messageLen]))
	}
}

// RefreshScreen composes one frame into an appendBuffer and writes it in
// a single syscall, hiding the cursor while drawing to avoid flicker.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	var abuf appendBuffer
	abuf.append([]byte(CURSOR_HIDE))
	abuf.append([]byte(CURSOR_HOME))

	e.DrawRows(&abuf)
	e.DrawStatusBar(&abuf)
	e.DrawMessageBar(&abuf)

	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT, e.cy-e.rowOffset+1, e.rx-e.colOffset+1))
	abuf.append([]byte(CURSOR_SHOW))

	os.Stdout.Write(abuf.b)
}
