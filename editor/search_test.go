package editor

import "testing"

func TestFindCallbackLocatesMatchAndHighlights(t *testing.T) {
	e := newTestEditor()
	e.InsertRow(0, []byte("the quick brown fox"))
	e.InsertRow(1, []byte("jumps over the lazy dog"))
	lastMatch = -1
	direction = 1
	savedHl = nil

	e.FindCallback([]byte("lazy"), 0)

	if e.cy != 1 {
		t.Fatalf("cy = %d, want 1", e.cy)
	}
	match := e.rows[1].rxToCx(15) // index of "lazy" in row 1's render
	if e.cx != match {
		t.Errorf("cx = %d, want %d", e.cx, match)
	}

	found := false
	for _, h := range e.rows[1].hl {
		if h == HL_MATCH {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no HL_MATCH highlight applied to the matched row")
	}
}

func TestFindCallbackEscapeResetsSearchState(t *testing.T) {
	lastMatch = 3
	direction = -1
	savedHl = nil

	e := newTestEditor()
	e.InsertRow(0, []byte("anything"))
	e.FindCallback([]byte("any"), EscapeKey)

	if lastMatch != -1 || direction != 1 {
		t.Errorf("lastMatch=%d direction=%d, want -1,1 after escape", lastMatch, direction)
	}
}

func TestFindCallbackRestoresPreviousHighlightOnNextStep(t *testing.T) {
	e := newTestEditor()
	e.InsertRow(0, []byte("foo bar"))
	lastMatch = -1
	direction = 1
	savedHl = nil

	e.FindCallback([]byte("bar"), 0)
	if savedHl == nil {
		t.Fatalf("expected savedHl snapshot after a match")
	}

	// A further step (e.g. typing another character) must restore the
	// previous row's highlight before searching again: "ba" matches at
	// 4..5, so the 'r' at index 6 must no longer be HL_MATCH.
	e.FindCallback([]byte("ba"), 0)
	for i, h := range e.rows[0].hl {
		if (i < len("foo ") || i >= len("foo ba")) && h == HL_MATCH {
			t.Errorf("stale HL_MATCH left at index %d after restore", i)
		}
	}
}
