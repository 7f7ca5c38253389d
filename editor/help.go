package editor

import "fmt"

// HelpScreen implements ModalScreen as a static, scrollable keybinding
// reference.
type HelpScreen struct {
	content []Row
}

func NewHelpScreen(editor *Editor) *HelpScreen {
	lines := []string{
		"=== KEDIT HELP ===",
		"",
		"NAVIGATION:",
		"  Arrow Keys       - Move cursor",
		"  Page Up/Down     - Scroll by page",
		"  Home/End         - Move to line start/end",
		"",
		"EDITING:",
		"  Ctrl+S           - Save file",
		"  Ctrl+Q           - Quit (with confirmation if unsaved)",
		"  Delete/Backspace - Delete characters",
		"",
		"SEARCH:",
		"  Ctrl+F           - Find text",
		"  Arrow Up/Down    - Navigate search results",
		"  Escape           - Cancel search",
		"",
		"FILE OPERATIONS:",
		"  Ctrl+E           - Open file explorer",
		"",
		"OTHER:",
		"  Ctrl+H           - Show this help",
		"  Ctrl+R           - Redraw screen",
		"",
		"About kedit:",
		fmt.Sprintf("  Version: %s", KEDIT_VERSION),
		"  A small terminal-based text editor",
		"",
		"Press 'q' or Escape to close this help screen.",
	}

	content := make([]Row, len(lines))
	for i, line := range lines {
		content[i] = Row{idx: i, chars: []byte(line)}
		content[i].Update(editor)
	}

	return &HelpScreen{content: content}
}

func (h *HelpScreen) GetContent() []Row { return h.content }

func (h *HelpScreen) GetStatusMessage() string {
	return "Help Screen - Use Arrow Keys to scroll, 'q' or Escape to exit"
}

func (h *HelpScreen) Initialize(e *Editor) {
	e.cy = 0
	e.rowOffset = 0
}

func (h *HelpScreen) HandleKey(key Key, e *Editor) (bool, bool) {
	switch key {
	case 'q', 'Q', EscapeKey:
		return true, true

	case ArrowUp:
		if e.cy > 0 {
			e.cy--
		} else if e.rowOffset > 0 {
			e.rowOffset--
		}

	case ArrowDown:
		maxCy := len(h.content) - 1
		if e.cy < e.screenRows-1 && e.cy < maxCy {
			e.cy++
		} else if e.rowOffset+e.screenRows < len(h.content) {
			e.rowOffset++
		}

	case PageUp:
		for i := 0; i < e.screenRows && (e.cy > 0 || e.rowOffset > 0); i++ {
			if e.cy > 0 {
				e.cy--
			} else if e.rowOffset > 0 {
				e.rowOffset--
			}
		}

	case PageDown:
		for i := 0; i < e.screenRows && e.rowOffset+e.cy < len(h.content)-1; i++ {
			maxCy := len(h.content) - 1
			if e.cy < e.screenRows-1 && e.cy < maxCy {
				e.cy++
			} else if e.rowOffset+e.screenRows < len(h.content) {
				e.rowOffset++
			}
		}

	case HomeKey:
		e.cy = 0
		e.rowOffset = 0

	case EndKey:
		maxRows := len(h.content)
		if maxRows <= e.screenRows {
			e.cy = maxRows - 1
			e.rowOffset = 0
		} else {
			e.cy = e.screenRows - 1
			e.rowOffset = maxRows - e.screenRows
		}
	}

	return false, false
}

// Help displays the keybinding reference screen.
func (e *Editor) Help() {
	NewModalManager(e, NewHelpScreen(e)).Show(HelpMode)
}
