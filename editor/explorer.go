package editor

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExplorerScreen lists one directory's entries as document rows and lets
// the user navigate into directories or open a file, implementing
// ModalScreen.
type ExplorerScreen struct {
	currentDir   string
	files        []os.DirEntry
	hasParentDir bool
	content      []Row
	editor       *Editor
}

// NewExplorerScreen builds an explorer rooted at startDir. Returns nil
// (having already posted a status-bar error) if the directory can't be
// read.
func NewExplorerScreen(editor *Editor, startDir string) *ExplorerScreen {
	explorer := &ExplorerScreen{
		currentDir: startDir,
		editor:     editor,
	}
	if err := explorer.refreshContent(); err != nil {
		editor.ShowError("Failed to read directory: %v", err)
		return nil
	}
	return explorer
}

func (ex *ExplorerScreen) refreshContent() error {
	files, err := os.ReadDir(ex.currentDir)
	if err != nil {
		return err
	}

	ex.files = files
	ex.hasParentDir = ex.currentDir != "." && ex.currentDir != "/"
	ex.content = ex.createExplorerRows(files, ex.currentDir)
	return nil
}

func (ex *ExplorerScreen) createExplorerRows(files []os.DirEntry, currentDir string) []Row {
	rows := make([]Row, 0, len(files)+2)

	headerRow := Row{idx: 0, chars: []byte(fmt.Sprintf("=== File Explorer: %s ===", currentDir))}
	headerRow.Update(ex.editor)
	rows = append(rows, headerRow)

	if ex.hasParentDir {
		parentRow := Row{idx: 1, chars: []byte("📂 .. (parent directory)")}
		parentRow.Update(ex.editor)
		rows = append(rows, parentRow)
	}

	for i, file := range files {
		fileRow := ex.createFileDisplayRow(i, file)
		fileRow.Update(ex.editor)
		rows = append(rows, fileRow)
	}

	return rows
}

func (ex *ExplorerScreen) createFileDisplayRow(index int, file os.DirEntry) Row {
	var text string
	if file.IsDir() {
		text = fmt.Sprintf("📁 %s/", file.Name())
	} else {
		size := ""
		if info, err := file.Info(); err == nil {
			size = fmt.Sprintf(" (%d bytes)", info.Size())
		}
		text = fmt.Sprintf("📄 %s%s", file.Name(), size)
	}

	return Row{idx: index + 2, chars: []byte(text)}
}

func (ex *ExplorerScreen) GetContent() []Row { return ex.content }

func (ex *ExplorerScreen) GetStatusMessage() string {
	return fmt.Sprintf("File Explorer: %s - %d items (Enter=open/navigate, ESC/q=quit)", ex.currentDir, len(ex.files))
}

func (ex *ExplorerScreen) Initialize(e *Editor) {
	if ex.hasParentDir {
		e.cy = 2
	} else {
		e.cy = 1
	}
	ex.highlightSelectedFile(e)
}

func (ex *ExplorerScreen) HandleKey(key Key, e *Editor) (bool, bool) {
	switch key {
	case 'q', 'Q', EscapeKey:
		return true, true

	case ArrowUp, ArrowDown:
		ex.handleExplorerNavigation(key, e)
		ex.highlightSelectedFile(e)

	case '\r':
		postedAt := e.statusMessageTime
		if ex.openSelectedFile(e) {
			return true, false
		}
		if ex.hasParentDir {
			e.cy = 2
		} else {
			e.cy = 1
		}
		e.rowOffset = 0
		e.rows = ex.content
		e.totalRows = len(ex.content)
		// Keep a refusal or error message openSelectedFile just posted.
		if e.statusMessageTime.Equal(postedAt) {
			e.SetStatusMessage("%s", ex.GetStatusMessage())
		}
	}

	return false, false
}

func (ex *ExplorerScreen) handleExplorerNavigation(key Key, e *Editor) {
	minCy := 1
	maxItems := len(ex.files)
	if ex.hasParentDir {
		maxItems++
	}

	switch key {
	case ArrowUp:
		if e.cy > minCy {
			e.cy--
		}
	case ArrowDown:
		if e.cy < maxItems {
			e.cy++
		}
	}
}

func (ex *ExplorerScreen) highlightSelectedFile(e *Editor) {
	if e.cy <= 0 || e.cy >= len(ex.content) {
		return
	}

	for i := 1; i < len(ex.content); i++ {
		for j := range ex.content[i].hl {
			ex.content[i].hl[j] = HL_NORMAL
		}
	}
	for j := range ex.content[e.cy].hl {
		ex.content[e.cy].hl[j] = HL_MATCH
	}

	e.rows = ex.content
}

// openSelectedFile acts on the currently-selected row: navigates into a
// directory, steps up to the parent, or opens a file (refused if the
// current document has unsaved changes). Returns true only when a file
// was opened, telling the caller to close the explorer and keep it.
func (ex *ExplorerScreen) openSelectedFile(e *Editor) bool {
	selectedIndex := e.cy - 1

	if ex.hasParentDir && selectedIndex == 0 {
		ex.currentDir = filepath.Dir(ex.currentDir)
		if err := ex.refreshContent(); err != nil {
			e.ShowError("Failed to read directory: %v", err)
		}
		return false
	}

	if ex.hasParentDir {
		selectedIndex--
	}
	if selectedIndex < 0 || selectedIndex >= len(ex.files) {
		return false
	}

	selectedFile := ex.files[selectedIndex]

	if selectedFile.IsDir() {
		ex.currentDir = filepath.Join(ex.currentDir, selectedFile.Name())
		if err := ex.refreshContent(); err != nil {
			e.ShowError("Failed to read directory: %v", err)
		}
		return false
	}

	if e.dirty > 0 {
		e.SetStatusMessage("File has unsaved changes")
		return false
	}

	if err := e.Open(filepath.Join(ex.currentDir, selectedFile.Name())); err != nil {
		e.ShowError("Failed to open file: %v", err)
		return false
	}

	return true
}

// Explorer opens the current directory in the file explorer modal.
func (e *Editor) Explorer() {
	explorerScreen := NewExplorerScreen(e, ".")
	if explorerScreen == nil {
		return
	}
	NewModalManager(e, explorerScreen).Show(ExplorerMode)
}
