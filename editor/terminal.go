package editor

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal owns the controlling tty's attribute set for the process
// lifetime. The attributes captured at EnableRawMode are restored exactly
// once, on Restore, which is safe to call more than once (and from a
// deferred fatal-error path) because it clears the saved state after the
// first restore.
type Terminal struct {
	originalState *term.State
}

func newTerminal() *Terminal {
	return &Terminal{}
}

// EnableRawMode disables echo, line buffering, signal keys and output
// post-processing on stdin/stdout, so the editor can read every byte as
// it arrives and fully control the screen.
func (t *Terminal) EnableRawMode() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("not running in a terminal")
	}

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("enabling terminal raw mode: %w", err)
	}
	t.originalState = state
	return nil
}

// Restore puts the tty back the way EnableRawMode found it. Safe to call
// multiple times or when raw mode was never entered.
func (t *Terminal) Restore() {
	if t.originalState != nil {
		term.Restore(int(os.Stdin.Fd()), t.originalState)
		t.originalState = nil
	}
}

// readKey blocks until one token is decoded from stdin. term.MakeRaw sets
// VMIN=1 and VTIME=0, so every read, including the reads that follow an
// ESC byte, waits for a byte to arrive; no read timeout is configured.
func readKey() (Key, error) {
	buf := make([]byte, 1)
	var nread int
	var err error

	for nread, err = os.Stdin.Read(buf); nread != 1; {
		if nread == -1 && err != nil {
			return 0, errors.New("reading keyboard input")
		}
		if err != nil {
			return 0, errors.New("reading keyboard input")
		}
	}

	c := buf[0]
	if c != '\x1b' {
		return Key(c), nil
	}

	seq := make([]byte, 3)
	if n, err := os.Stdin.Read(seq[0:1]); n != 1 || err != nil {
		return EscapeKey, nil
	}
	if n, err := os.Stdin.Read(seq[1:2]); n != 1 || err != nil {
		return EscapeKey, nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			if n, err := os.Stdin.Read(seq[2:3]); n != 1 || err != nil {
				return EscapeKey, nil
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return HomeKey, nil
				case '3':
					return DeleteKey, nil
				case '4', '8':
					return EndKey, nil
				case '5':
					return PageUp, nil
				case '6':
					return PageDown, nil
				}
			}
		} else {
			switch seq[1] {
			case 'A':
				return ArrowUp, nil
			case 'B':
				return ArrowDown, nil
			case 'C':
				return ArrowRight, nil
			case 'D':
				return ArrowLeft, nil
			case 'H':
				return HomeKey, nil
			case 'F':
				return EndKey, nil
			}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
	}
	return EscapeKey, nil
}

// getCursorPosition queries the terminal for the cursor's current
// position via ESC[6n and parses the ESC[rows;colsR response. Used only
// as the window-size fallback below.
func getCursorPosition() (rows, cols int, err error) {
	if _, err := os.Stdout.WriteString(CURSOR_GET_POSITION); err != nil {
		return 0, 0, err
	}

	buf := make([]byte, 0, 32)
	one := make([]byte, 1)
	for len(buf) < 31 {
		n, err := os.Stdin.Read(one)
		if n != 1 || err != nil {
			break
		}
		if one[0] == 'R' {
			break
		}
		buf = append(buf, one[0])
	}

	if len(buf) < 2 || buf[0] != '\x1b' || buf[1] != '[' {
		return 0, 0, errors.New("improper cursor position response")
	}
	if _, err := fmt.Sscanf(string(buf[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// getWindowSize asks the OS for the window size and falls back to the
// cursor-position trick when that fails or reports zero columns: push the
// cursor far right and down, then measure where it actually landed.
func getWindowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(os.Stdout.Fd()))
	if err == nil && cols != 0 {
		return rows, cols, nil
	}

	if _, err := os.Stdout.WriteString(CURSOR_BOTTOM_RIGHT); err != nil {
		return 0, 0, err
	}
	return getCursorPosition()
}
