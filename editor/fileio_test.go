package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	original := "line one\nline two\nline three"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	e := newTestEditor()
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if e.totalRows != 3 {
		t.Fatalf("totalRows = %d, want 3", e.totalRows)
	}
	if e.dirty != 0 {
		t.Errorf("dirty = %d after Open, want 0", e.dirty)
	}

	e.Save()
	if e.statusMessage == "" {
		t.Errorf("Save left no status message")
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back saved file: %v", err)
	}

	want := "line one" + lineEnding() + "line two" + lineEnding() + "line three" + lineEnding()
	if string(written) != want {
		t.Errorf("saved contents = %q, want %q", written, want)
	}
}

func TestOpenMissingFileReturnsError(t *testing.T) {
	e := newTestEditor()
	if err := e.Open("/does/not/exist/kedit-test-file"); err == nil {
		t.Fatal("expected an error opening a nonexistent file")
	}
}

func TestRowsToBytesTrailingEndingPerRow(t *testing.T) {
	e := newTestEditor()
	e.InsertRow(0, []byte("a"))
	e.InsertRow(1, []byte("b"))

	buf, n := e.RowsToBytes()
	want := "a" + lineEnding() + "b" + lineEnding()
	if string(buf) != want || n != len(want) {
		t.Errorf("RowsToBytes = %q (%d), want %q (%d)", buf, n, want, len(want))
	}
}

func TestSaveWritesToPresetFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newfile.txt")

	e := newTestEditor()
	e.InsertRow(0, []byte("hello"))

	// Save() prompts via e.Prompt when filename is empty, which needs a
	// TTY; setting the filename first makes Save write without prompting.
	e.filename = path
	e.Save()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "hello"+lineEnding() {
		t.Errorf("saved contents = %q", data)
	}
}
