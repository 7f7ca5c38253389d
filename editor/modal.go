package editor

// ModalScreen is a full-screen view that temporarily takes over input and
// rendering — the file explorer and help screen both implement it. It
// generalizes the simpler single-line Prompt used by Save/Search, which
// replaces only the message bar rather than the whole document view.
type ModalScreen interface {
	// GetContent returns the rows to display in place of the document.
	GetContent() []Row

	// GetStatusMessage returns the message-bar text while this screen is
	// active.
	GetStatusMessage() string

	// HandleKey processes one key. The first return value reports whether
	// the screen wants to close; the second, meaningful only when closing,
	// reports whether the editor's prior state should be restored (true)
	// or the screen's effect on document state kept (false, e.g. a file
	// chosen in the explorer).
	HandleKey(key Key, e *Editor) (close bool, restore bool)

	// Initialize positions the cursor and anything else the screen needs
	// set up before its first frame.
	Initialize(e *Editor)
}

// EditorState is a snapshot of everything a modal screen displaces,
// restored verbatim when the screen exits without keeping its effect.
type EditorState struct {
	rows      []Row
	totalRows int
	cx, cy    int
	colOffset int
	rowOffset int
}

func (e *Editor) getEditorState() EditorState {
	return EditorState{
		rows:      e.rows,
		totalRows: e.totalRows,
		cx:        e.cx,
		cy:        e.cy,
		colOffset: e.colOffset,
		rowOffset: e.rowOffset,
	}
}

func (e *Editor) setEditorState(state EditorState) {
	e.rows = state.rows
	e.totalRows = state.totalRows
	e.cx = state.cx
	e.cy = state.cy
	e.colOffset = state.colOffset
	e.rowOffset = state.rowOffset
	e.mode = EditMode
}

// ModalManager runs one ModalScreen's display/input loop on top of a
// saved Editor snapshot.
type ModalManager struct {
	savedState EditorState
	screen     ModalScreen
	editor     *Editor
}

func NewModalManager(editor *Editor, screen ModalScreen) *ModalManager {
	return &ModalManager{
		savedState: editor.getEditorState(),
		screen:     screen,
		editor:     editor,
	}
}

// Show displaces the document with the screen's content and runs its own
// read-dispatch-render loop until the screen reports it wants to close.
func (m *ModalManager) Show(mode Mode) {
	m.setupModalDisplay(m.screen.GetContent(), mode)
	m.screen.Initialize(m.editor)

	for {
		m.editor.RefreshScreen()

		key, err := readKey()
		if err != nil {
			m.editor.ShowError("%v", err)
			continue
		}

		close, restore := m.screen.HandleKey(key, m.editor)
		if close {
			if restore {
				m.restoreState()
			}
			break
		}
	}
}

func (m *ModalManager) setupModalDisplay(content []Row, mode Mode) {
	m.editor.mode = mode
	m.editor.rows = content
	m.editor.totalRows = len(content)
	m.editor.cx = 0
	m.editor.cy = 0
	m.editor.colOffset = 0
	m.editor.rowOffset = 0
	m.editor.SetStatusMessage("%s", m.screen.GetStatusMessage())
}

func (m *ModalManager) restoreState() {
	m.editor.setEditorState(m.savedState)
	m.editor.SetStatusMessage("Returned to editor")
}
