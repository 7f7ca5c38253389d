package editor

import (
	"bytes"
	"strings"
)

// Highlight classes, one per rendered byte.
const (
	HL_NORMAL = iota
	HL_COMMENT
	HL_MLCOMMENT
	HL_KEYWORD1
	HL_KEYWORD2
	HL_STRING
	HL_NUMBER
	HL_MATCH
	HL_CONTROL
)

// Syntax highlighting feature flags.
const (
	HL_HIGHLIGHT_NUMBERS = 1 << 0
	HL_HIGHLIGHT_STRINGS = 1 << 1
)

// Syntax describes one filetype's highlighting rules. keywords[0] is the
// primary (Keyword1) list, keywords[1] the secondary (Keyword2) list.
type Syntax struct {
	filetype               string
	filematch              []string
	keywords               [][]string
	singlelineCommentStart string
	multilineCommentStart  string
	multilineCommentEnd    string
	flags                  int
}

var syntaxDB = []Syntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: [][]string{
			{"switch", "if", "while", "for", "break", "continue", "return", "else",
				"struct", "union", "typedef", "static", "enum", "class", "case"},
			{"int", "long", "double", "float", "char", "unsigned", "signed", "void"},
		},
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		filetype:  "go",
		filematch: []string{".go", ".mod", ".sum"},
		keywords: [][]string{
			{"break", "case", "chan", "const", "continue", "default", "defer", "else",
				"fallthrough", "for", "go", "goto", "if", "import", "map", "package",
				"range", "return", "select", "struct", "switch", "type", "var"},
			{"interface", "func"},
		},
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
}

// isSeparator reports whether c may legally border a keyword or number.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0,
		',', '.', '(', ')', '+', '-', '/', '*', '=', '~', '%', '<', '>', '[', ']', ';':
		return true
	}
	return false
}

// updateSyntax recomputes row.hl from row.render given the document's
// syntax (if any) and the previous row's open_comment flag, then cascades
// into the next row whenever this row's open_comment status changed —
// an iterative fixed-point walk rather than unbounded recursion, so
// propagation depth never exceeds the number of rows actually affected.
func (row *Row) updateSyntax(e *Editor) {
	for r := row; r != nil; {
		r.hl = make([]int, len(r.render))

		if e.syntax == nil {
			break
		}

		prevOpen := r.idx > 0 && r.idx-1 < len(e.rows) && e.rows[r.idx-1].hlOpenComment
		wasOpen := r.hlOpenComment
		inComment := scanRow(r, e.syntax, prevOpen)
		r.hlOpenComment = inComment

		if inComment == wasOpen || r.idx+1 >= e.totalRows {
			break
		}
		r = &e.rows[r.idx+1]
	}
}

// scanRow runs the highlight scan over one row's render bytes and returns
// the row's resulting in-multiline-comment state.
func scanRow(row *Row, syn *Syntax, prevOpenComment bool) bool {
	scs := []byte(syn.singlelineCommentStart)
	mcs := []byte(syn.multilineCommentStart)
	mce := []byte(syn.multilineCommentEnd)

	prevSep := true
	var inString byte
	inComment := prevOpenComment

	render := row.render
	for i := 0; i < len(render); {
		c := render[i]
		prevHl := HL_NORMAL
		if i > 0 {
			prevHl = row.hl[i-1]
		}

		// Control-byte stand-ins (e.g. "^A") and a best-effort continuation
		// of "^[" into a pasted escape sequence, up to its terminating
		// letter or one of "~mHJK".
		if inString == 0 && !inComment && c == '^' && i+1 < len(render) {
			row.hl[i] = HL_CONTROL
			row.hl[i+1] = HL_CONTROL

			if render[i+1] == '[' {
				j := i + 2
				for j < len(render) {
					ch := render[j]
					row.hl[j] = HL_CONTROL
					j++
					if (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
						break
					}
					if ch == '~' || ch == 'm' || ch == 'H' || ch == 'J' || ch == 'K' {
						break
					}
				}
				i = j
			} else {
				i += 2
			}
			prevSep = true
			continue
		}

		if len(scs) > 0 && inString == 0 && !inComment && bytes.HasPrefix(render[i:], scs) {
			for j := i; j < len(render); j++ {
				row.hl[j] = HL_COMMENT
			}
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				row.hl[i] = HL_MLCOMMENT
				if bytes.HasPrefix(render[i:], mce) {
					for j := range len(mce) {
						if i+j < len(render) {
							row.hl[i+j] = HL_MLCOMMENT
						}
					}
					inComment = false
					prevSep = true
					i += len(mce)
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				for j := range len(mcs) {
					if i+j < len(render) {
						row.hl[i+j] = HL_MLCOMMENT
					}
				}
				inComment = true
				i += len(mcs)
				continue
			}
		}

		if syn.flags&HL_HIGHLIGHT_STRINGS != 0 {
			if inString != 0 {
				row.hl[i] = HL_STRING
				if c == '\\' && i+1 < len(render) {
					row.hl[i+1] = HL_STRING
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HL_STRING
				i++
				continue
			}
		}

		if syn.flags&HL_HIGHLIGHT_NUMBERS != 0 {
			if (isDigit(c) && (prevSep || prevHl == HL_NUMBER)) || (c == '.' && prevHl == HL_NUMBER) {
				row.hl[i] = HL_NUMBER
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if klen, kind, ok := matchKeyword(render[i:], syn.keywords); ok {
				for k := range klen {
					row.hl[i+k] = kind
				}
				i += klen
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return inComment
}

// matchKeyword tries each keyword (primary list first, then secondary) in
// order, requiring a trailing separator (or end of line) after the match.
func matchKeyword(rest []byte, keywords [][]string) (length, class int, ok bool) {
	for listIdx, list := range keywords {
		class := HL_KEYWORD1 + listIdx
		for _, kw := range list {
			klen := len(kw)
			if klen == 0 || klen > len(rest) {
				continue
			}
			if !bytes.Equal(rest[:klen], []byte(kw)) {
				continue
			}
			if klen < len(rest) && !isSeparator(rest[klen]) {
				continue
			}
			return klen, class, true
		}
	}
	return 0, 0, false
}

// syntaxToGraphics maps a highlight class to a foreground color and an
// optional style (e.g. reverse video for matches and control bytes).
func syntaxToGraphics(hl int) (color, style int) {
	switch hl {
	case HL_COMMENT, HL_MLCOMMENT:
		return ANSI_COLOR_CYAN, 0
	case HL_KEYWORD1:
		return ANSI_COLOR_YELLOW, 0
	case HL_KEYWORD2:
		return ANSI_COLOR_GREEN, 0
	case HL_STRING:
		return ANSI_COLOR_MAGENTA, 0
	case HL_NUMBER:
		return ANSI_COLOR_RED, 0
	case HL_MATCH:
		return ANSI_COLOR_BLUE, ANSI_REVERSE
	case HL_CONTROL:
		return ANSI_COLOR_RED, ANSI_REVERSE
	default:
		return ANSI_COLOR_DEFAULT, 0
	}
}

func styleResetCode(style int) int {
	return styleResetCodes[style]
}

// SelectSyntaxHighlight picks a Syntax whose filematch pattern matches the
// document's filename (exact-extension match for patterns starting with
// '.', substring match otherwise) and re-highlights every row.
func (e *Editor) SelectSyntaxHighlight() {
	e.syntax = nil
	if e.filename == "" {
		return
	}

	var ext string
	if dot := strings.LastIndex(e.filename, "."); dot != -1 {
		ext = e.filename[dot:]
	}

	for i := range syntaxDB {
		syn := &syntaxDB[i]
		for _, pattern := range syn.filematch {
			isExt := pattern[0] == '.'
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(e.filename, pattern)) {
				e.syntax = syn
				for i := range e.rows {
					e.rows[i].Update(e)
				}
				return
			}
		}
	}
}
