package termbox

import (
	"errors"
	"strings"
)

// ErrUnsupportedTerminal is returned by Init when the terminal name
// from the environment does not resolve to any built-in capability
// table.
var ErrUnsupportedTerminal = errors.New("termbox: unsupported terminal")

// keySeq pairs a raw input byte sequence with the symbolic key it
// decodes to. Tables must be ordered so that no sequence is a prefix
// of a later one in the same table; in practice no two
// F-key/arrow sequences collide this way, but extractEvent's
// first-match-wins behavior depends on this invariant holding.
type keySeq struct {
	seq []byte
	key Key
}

// termInfo is a fixed-index table of escape strings for one terminal
// type, plus its input key-sequence table. It is pure data: resolving
// a terminal name to a termInfo performs no I/O.
type termInfo struct {
	enterCA     string
	exitCA      string
	showCursor  string
	hideCursor  string
	clearScreen string
	sgr0        string
	underline   string
	bold        string
	blink       string
	enterKeypad string
	exitKeypad  string
	sgr         string // fmt verb taking fg, bg indices (0-7)
	moveCursor  string // fmt verb taking 1-based row, col

	keys []keySeq
}

// navKeys builds the common tail of a terminal's key table:
// insert, delete, home, end, pgup, pgdn, and the four arrows, in the
// order KeyInsert..KeyArrowRight expects.
func navKeys(insert, del, home, end, pgup, pgdn, up, down, left, right string) []keySeq {
	return []keySeq{
		{[]byte(insert), KeyInsert},
		{[]byte(del), KeyDelete},
		{[]byte(home), KeyHome},
		{[]byte(end), KeyEnd},
		{[]byte(pgup), KeyPgup},
		{[]byte(pgdn), KeyPgdn},
		{[]byte(up), KeyArrowUp},
		{[]byte(down), KeyArrowDown},
		{[]byte(left), KeyArrowLeft},
		{[]byte(right), KeyArrowRight},
	}
}

func fKeys(f1, f2, f3, f4, f5, f6, f7, f8, f9, f10, f11, f12 string) []keySeq {
	return []keySeq{
		{[]byte(f1), KeyF1},
		{[]byte(f2), KeyF2},
		{[]byte(f3), KeyF3},
		{[]byte(f4), KeyF4},
		{[]byte(f5), KeyF5},
		{[]byte(f6), KeyF6},
		{[]byte(f7), KeyF7},
		{[]byte(f8), KeyF8},
		{[]byte(f9), KeyF9},
		{[]byte(f10), KeyF10},
		{[]byte(f11), KeyF11},
		{[]byte(f12), KeyF12},
	}
}

func concatKeys(tables ...[]keySeq) []keySeq {
	var out []keySeq
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

var termXterm = &termInfo{
	enterCA: "\x1b[?1049h", exitCA: "\x1b[?1049l",
	showCursor: "\x1b[?12l\x1b[?25h", hideCursor: "\x1b[?25l",
	clearScreen: "\x1b[H\x1b[2J",
	sgr0:        "\x1b(B\x1b[m", underline: "\x1b[4m", bold: "\x1b[1m", blink: "\x1b[5m",
	enterKeypad: "\x1b[?1h\x1b=", exitKeypad: "\x1b[?1l\x1b>",
	sgr: "\x1b[3%d;4%dm", moveCursor: "\x1b[%d;%dH",
	keys: concatKeys(
		fKeys("\x1bOP", "\x1bOQ", "\x1bOR", "\x1bOS", "\x1b[15~", "\x1b[17~",
			"\x1b[18~", "\x1b[19~", "\x1b[20~", "\x1b[21~", "\x1b[23~", "\x1b[24~"),
		navKeys("\x1b[2~", "\x1b[3~", "\x1b[1~", "\x1b[4~", "\x1b[5~", "\x1b[6~",
			"\x1bOA", "\x1bOB", "\x1bOD", "\x1bOC"),
	),
}

var termLinux = &termInfo{
	enterCA: "", exitCA: "",
	showCursor: "\x1b[?25h\x1b[?0c", hideCursor: "\x1b[?25l\x1b[?1c",
	clearScreen: "\x1b[H\x1b[J",
	sgr0:        "\x1b[0;10m", underline: "\x1b[4m", bold: "\x1b[1m", blink: "\x1b[5m",
	enterKeypad: "", exitKeypad: "",
	sgr: "\x1b[3%d;4%dm", moveCursor: "\x1b[%d;%dH",
	keys: concatKeys(
		fKeys("\x1b[[A", "\x1b[[B", "\x1b[[C", "\x1b[[D", "\x1b[[E", "\x1b[17~",
			"\x1b[18~", "\x1b[19~", "\x1b[20~", "\x1b[21~", "\x1b[23~", "\x1b[24~"),
		navKeys("\x1b[2~", "\x1b[3~", "\x1b[1~", "\x1b[4~", "\x1b[5~", "\x1b[6~",
			"\x1b[A", "\x1b[B", "\x1b[D", "\x1b[C"),
	),
}

var termScreen = &termInfo{
	enterCA: "\x1b[?1049h", exitCA: "\x1b[?1049l",
	showCursor: "\x1b[34h\x1b[?25h", hideCursor: "\x1b[?25l",
	clearScreen: "\x1b[H\x1b[J",
	sgr0:        "\x1b[m\x0f", underline: "\x1b[4m", bold: "\x1b[1m", blink: "\x1b[5m",
	enterKeypad: "\x1b[?1h\x1b=", exitKeypad: "\x1b[?1l\x1b>",
	sgr: "\x1b[3%d;4%dm", moveCursor: "\x1b[%d;%dH",
	keys: concatKeys(
		fKeys("\x1bOP", "\x1bOQ", "\x1bOR", "\x1bOS", "\x1b[15~", "\x1b[17~",
			"\x1b[18~", "\x1b[19~", "\x1b[20~", "\x1b[21~", "\x1b[23~", "\x1b[24~"),
		navKeys("\x1b[2~", "\x1b[3~", "\x1b[1~", "\x1b[4~", "\x1b[5~", "\x1b[6~",
			"\x1bOA", "\x1bOB", "\x1bOD", "\x1bOC"),
	),
}

var termRxvt256color = &termInfo{
	enterCA: "\x1b7\x1b[?47h", exitCA: "\x1b[2J\x1b[?47l\x1b8",
	showCursor: "\x1b[?25h", hideCursor: "\x1b[?25l",
	clearScreen: "\x1b[H\x1b[2J",
	sgr0:        "\x1b[m\x1b(B", underline: "\x1b[4m", bold: "\x1b[1m", blink: "\x1b[5m",
	enterKeypad: "\x1b=", exitKeypad: "\x1b>",
	sgr: "\x1b[3%d;4%dm", moveCursor: "\x1b[%d;%dH",
	keys: concatKeys(
		fKeys("\x1b[11~", "\x1b[12~", "\x1b[13~", "\x1b[14~", "\x1b[15~", "\x1b[17~",
			"\x1b[18~", "\x1b[19~", "\x1b[20~", "\x1b[21~", "\x1b[23~", "\x1b[24~"),
		navKeys("\x1b[2~", "\x1b[3~", "\x1b[7~", "\x1b[8~", "\x1b[5~", "\x1b[6~",
			"\x1b[A", "\x1b[B", "\x1b[D", "\x1b[C"),
	),
}

var termRxvtUnicode = &termInfo{
	enterCA: "\x1b[?1049h", exitCA: "\x1b[?1049l",
	showCursor: "\x1b[?25h", hideCursor: "\x1b[?25l",
	clearScreen: "\x1b[H\x1b[2J",
	sgr0:        "\x1b[m\x1b(B", underline: "\x1b[4m", bold: "\x1b[1m", blink: "\x1b[5m",
	enterKeypad: "\x1b=", exitKeypad: "\x1b>",
	sgr: "\x1b[3%d;4%dm", moveCursor: "\x1b[%d;%dH",
	keys: concatKeys(
		fKeys("\x1b[11~", "\x1b[12~", "\x1b[13~", "\x1b[14~", "\x1b[15~", "\x1b[17~",
			"\x1b[18~", "\x1b[19~", "\x1b[20~", "\x1b[21~", "\x1b[23~", "\x1b[24~"),
		navKeys("\x1b[2~", "\x1b[3~", "\x1b[7~", "\x1b[8~", "\x1b[5~", "\x1b[6~",
			"\x1b[A", "\x1b[B", "\x1b[D", "\x1b[C"),
	),
}

var termEterm = &termInfo{
	enterCA: "\x1b7\x1b[?47h", exitCA: "\x1b[2J\x1b[?47l\x1b8",
	showCursor: "\x1b[?25h", hideCursor: "\x1b[?25l",
	clearScreen: "\x1b[H\x1b[2J",
	sgr0:        "\x1b[0m", underline: "\x1b[4m", bold: "\x1b[1m", blink: "\x1b[5m",
	enterKeypad: "", exitKeypad: "",
	sgr: "\x1b[3%d;4%dm", moveCursor: "\x1b[%d;%dH",
	keys: concatKeys(
		fKeys("\x1b[11~", "\x1b[12~", "\x1b[13~", "\x1b[14~", "\x1b[15~", "\x1b[17~",
			"\x1b[18~", "\x1b[19~", "\x1b[20~", "\x1b[21~", "\x1b[23~", "\x1b[24~"),
		navKeys("\x1b[2~", "\x1b[3~", "\x1b[7~", "\x1b[8~", "\x1b[5~", "\x1b[6~",
			"\x1b[A", "\x1b[B", "\x1b[D", "\x1b[C"),
	),
}

var termTmux256color = &termInfo{
	enterCA: "\x1b[?1049h", exitCA: "\x1b[?1049l",
	showCursor: "\x1b[34h\x1b[?25h", hideCursor: "\x1b[?25l",
	clearScreen: "\x1b[H\x1b[J",
	sgr0:        "\x1b[m\x0f", underline: "\x1b[4m", bold: "\x1b[1m", blink: "\x1b[5m",
	enterKeypad: "\x1b[?1h\x1b=", exitKeypad: "\x1b[?1l\x1b>",
	sgr: "\x1b[3%d;4%dm", moveCursor: "\x1b[%d;%dH",
	keys: concatKeys(
		fKeys("\x1bOP", "\x1bOQ", "\x1bOR", "\x1bOS", "\x1b[15~", "\x1b[17~",
			"\x1b[18~", "\x1b[19~", "\x1b[20~", "\x1b[21~", "\x1b[23~", "\x1b[24~"),
		navKeys("\x1b[2~", "\x1b[3~", "\x1b[1~", "\x1b[4~", "\x1b[5~", "\x1b[6~",
			"\x1bOA", "\x1bOB", "\x1bOD", "\x1bOC"),
	),
}

// builtinTerms maps exact terminal names to their capability table.
// Unrecognized names fall back to a prefix match in resolveTermInfo,
// the way terminfo-derived name resolution conventionally degrades
// (e.g. "screen.xterm-256color" still wants the screen table).
var builtinTerms = map[string]*termInfo{
	"xterm":           termXterm,
	"xterm-256color":  termXterm,
	"linux":           termLinux,
	"screen":          termScreen,
	"screen-256color": termScreen,
	"rxvt-256color":   termRxvt256color,
	"rxvt-unicode":    termRxvtUnicode,
	"Eterm":           termEterm,
	"tmux":            termTmux256color,
	"tmux-256color":   termTmux256color,
}

// resolveTermInfo selects a built-in capability table for the given
// $TERM-style name. It tries an exact match first, then the longest
// prefix among the built-in names (so "screen.xterm-256color"
// resolves via "screen"), and returns ErrUnsupportedTerminal if
// neither succeeds.
func resolveTermInfo(name string) (*termInfo, error) {
	if ti, ok := builtinTerms[name]; ok {
		return ti, nil
	}
	best := ""
	var bestInfo *termInfo
	for prefix, ti := range builtinTerms {
		if strings.HasPrefix(name, prefix) && len(prefix) > len(best) {
			best = prefix
			bestInfo = ti
		}
	}
	if bestInfo != nil {
		return bestInfo, nil
	}
	return nil, ErrUnsupportedTerminal
}
