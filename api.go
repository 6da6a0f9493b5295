// Package termbox builds character-cell terminal user interfaces. A
// program describes a desired screen as a grid of styled cells and
// calls Present to make the physical terminal match it with the
// minimum necessary escape sequences; it reads PollEvent/PeekEvent to
// get a decoded stream of keyboard events.
//
// Usage:
//
//	if err := termbox.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer termbox.Shutdown()
//
//	termbox.ChangeCell(0, 0, 'x', termbox.ColorWhite, termbox.ColorBlack)
//	termbox.Present()
//
// Init returns ErrAlreadyInitialized if the package-level session is
// already initialized; separately constructed Session values are not
// checked against it.
package termbox

import "time"

var defaultSession = &Session{}

// Init acquires the terminal, enters raw mode and the alternate
// screen, and allocates the cell buffers. See Session.Init.
func Init() error { return defaultSession.Init() }

// Shutdown restores the terminal to its pre-Init state. See
// Session.Shutdown.
func Shutdown() error { return defaultSession.Shutdown() }

// Width returns the current terminal width in columns.
func Width() int { return defaultSession.Width() }

// Height returns the current terminal height in rows.
func Height() int { return defaultSession.Height() }

// Clear fills the back buffer with the default appearance.
func Clear() { defaultSession.Clear() }

// Present synchronizes the terminal with the back buffer.
func Present() error { return defaultSession.Present() }

// PutCell writes cell into the back buffer at (x, y). Out-of-bounds
// writes are silently dropped.
func PutCell(x, y int, cell Cell) { defaultSession.PutCell(x, y, cell) }

// ChangeCell is PutCell's field-at-a-time convenience form.
func ChangeCell(x, y int, ch rune, fg, bg Attribute) {
	defaultSession.ChangeCell(x, y, ch, fg, bg)
}

// Blit copies a w*h rectangle of cells into the back buffer at (x, y).
// The call is dropped entirely if the rectangle doesn't fit.
func Blit(x, y, w, h int, cells []Cell) { defaultSession.Blit(x, y, w, h, cells) }

// PollEvent blocks until a key event is available.
func PollEvent() (Event, error) { return defaultSession.PollEvent() }

// PeekEvent waits up to timeout for a key event.
func PeekEvent(timeout time.Duration) (Event, bool, error) {
	return defaultSession.PeekEvent(timeout)
}

// SelectInputMode sets (mode != InputCurrent) or queries (mode ==
// InputCurrent) the active escape-handling policy.
func SelectInputMode(mode InputMode) InputMode {
	return defaultSession.SelectInputMode(mode)
}

// NotifyResize is a non-signal-driven equivalent of SIGWINCH, for
// embedders (PTY controllers, test harnesses) that learn of a size
// change some other way.
func NotifyResize() { defaultSession.NotifyResize() }
