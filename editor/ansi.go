package editor

// ANSI escape sequences for terminal control.

const (
	CLEAR_SCREEN = "\x1b[2J" // Erase entire screen
	CLEAR_LINE   = "\x1b[K"  // Erase from cursor to end of line
	CURSOR_HOME  = "\x1b[H"  // Move cursor to top-left (1,1)

	CURSOR_HIDE = "\x1b[?25l"
	CURSOR_SHOW = "\x1b[?25h"

	CURSOR_BOTTOM_RIGHT = "\x1b[999C\x1b[999B" // Window-size fallback: shove cursor to the corner
	CURSOR_GET_POSITION = "\x1b[6n"            // Query cursor position; response ends in 'R'

	CURSOR_POSITION_FORMAT = "\x1b[%d;%dH" // 1-indexed row;col

	COLORS_RESET  = "\x1b[m"
	COLORS_INVERT = "\x1b[7m"
)

// Foreground color codes used by syntaxToGraphics.
const (
	ANSI_COLOR_DEFAULT = 39
	ANSI_COLOR_RED     = 31
	ANSI_COLOR_GREEN   = 32
	ANSI_COLOR_YELLOW  = 33
	ANSI_COLOR_BLUE    = 34
	ANSI_COLOR_MAGENTA = 35
	ANSI_COLOR_CYAN    = 36
)

// Style codes (and their matching resets) layered on top of a color.
const (
	ANSI_REVERSE       = 7
	ANSI_REVERSE_RESET = 27
)

var styleResetCodes = map[int]int{
	ANSI_REVERSE: ANSI_REVERSE_RESET,
}
