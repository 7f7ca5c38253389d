package editor

// Key is a decoded input token: either a printable/control byte value in
// 0..127, or one of the named keys below (out of byte range on purpose so
// they can never collide with an ordinary keypress).
type Key int

const (
	BACKSPACE Key = 127 // ASCII backspace / DEL

	ArrowLeft Key = iota + 1000
	ArrowRight
	ArrowUp
	ArrowDown
	DeleteKey
	HomeKey
	EndKey
	PageUp
	PageDown
	EscapeKey
)

// withControlKey converts an ASCII letter to its control-key equivalent,
// e.g. withControlKey('q') == Ctrl-Q.
func withControlKey(c byte) Key {
	return Key(c & 0x1f)
}

// isControl reports whether b is a control byte (below 32, or DEL). Tab
// counts as one; the row store checks for tab first and expands it on its
// own terms.
func isControl(b byte) bool {
	return b < 32 || b == 127
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
