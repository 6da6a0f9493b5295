package termbox

// Key is a symbolic, non-printable key code. Key constants occupy the
// top of the 16-bit range (function and navigation keys) and the low
// range 0x00-0x1F plus 0x7F (control characters, some with named
// aliases below). For any key event other than the NUL byte
// (KeyCtrlTilde, 0x00), exactly one of Event.Ch or Event.Key is
// non-zero; NUL decodes to an event whose Ch and Key are both zero.
type Key uint16

// Function and navigation keys, indexed in the same order as the
// terminfo key-sequence table (see terminfo.go): KeyF1 is entry 0,
// KeyF2 entry 1, and so on through KeyArrowRight at entry 21.
const (
	KeyF1 Key = 0xFFFF - iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// Control characters and their conventional aliases. The wire value
// reported in Event.Key is always the raw byte; the aliases just give
// the common ones memorable names.
const (
	KeyCtrlTilde      Key = 0x00
	KeyCtrl2          Key = 0x00
	KeyCtrlA          Key = 0x01
	KeyCtrlB          Key = 0x02
	KeyCtrlC          Key = 0x03
	KeyCtrlD          Key = 0x04
	KeyCtrlE          Key = 0x05
	KeyCtrlF          Key = 0x06
	KeyCtrlG          Key = 0x07
	KeyBackspace      Key = 0x08
	KeyCtrlH          Key = 0x08
	KeyTab            Key = 0x09
	KeyCtrlI          Key = 0x09
	KeyCtrlJ          Key = 0x0A
	KeyCtrlK          Key = 0x0B
	KeyCtrlL          Key = 0x0C
	KeyEnter          Key = 0x0D
	KeyCtrlM          Key = 0x0D
	KeyCtrlN          Key = 0x0E
	KeyCtrlO          Key = 0x0F
	KeyCtrlP          Key = 0x10
	KeyCtrlQ          Key = 0x11
	KeyCtrlR          Key = 0x12
	KeyCtrlS          Key = 0x13
	KeyCtrlT          Key = 0x14
	KeyCtrlU          Key = 0x15
	KeyCtrlV          Key = 0x16
	KeyCtrlW          Key = 0x17
	KeyCtrlX          Key = 0x18
	KeyCtrlY          Key = 0x19
	KeyCtrlZ          Key = 0x1A
	KeyEsc            Key = 0x1B
	KeyCtrlLsqBracket Key = 0x1B
	KeyCtrl3          Key = 0x1B
	KeyCtrl4          Key = 0x1C
	KeyCtrlBackslash  Key = 0x1C
	KeyCtrl5          Key = 0x1D
	KeyCtrlRsqBracket Key = 0x1D
	KeyCtrl6          Key = 0x1E
	KeyCtrl7          Key = 0x1F
	KeyCtrlSlash      Key = 0x1F
	KeyCtrlUnderscore Key = 0x1F
	KeySpace          Key = 0x20
	KeyBackspace2     Key = 0x7F
	KeyCtrl8          Key = 0x7F
)

// Modifier is a bitmask of modifier flags accompanying a key event.
type Modifier uint16

// ModAlt is currently the only defined modifier: set when an ESC
// prefix was consumed under INPUT_ALT mode policy.
const ModAlt Modifier = 0x01

// Event is a single decoded keyboard event. Exactly one of Ch or Key
// is non-zero, except for the NUL byte (see Key).
type Event struct {
	Ch  rune
	Key Key
	Mod Modifier
}

// InputMode selects how a lone, unmatched ESC byte is interpreted.
type InputMode int

const (
	// InputCurrent queries the active mode without changing it.
	InputCurrent InputMode = 0
	// InputEsc reports an unmatched ESC as KeyEsc (the default).
	InputEsc InputMode = 1
	// InputAlt treats an unmatched ESC as an Alt-modifier prefix for
	// the byte(s) that follow.
	InputAlt InputMode = 2
)
