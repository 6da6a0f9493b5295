package termbox

import "golang.org/x/sys/unix"

// Linux's termios ioctls. get/set-with-flush are the ones the original
// termios-based raw mode dance needs (TCSETSF: apply after draining
// pending output and discarding unread input, the TCSAFLUSH semantics
// spec.md §4.6 calls for).
const (
	ioctlGetTermios  = unix.TCGETS
	ioctlSetTermiosF = unix.TCSETSF
)
