package termbox

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Errors returned by Init. These correspond to the C source's
// TB_EUNSUPPORTED_TERMINAL and TB_EFAILED_TO_OPEN_TTY return codes;
// ErrUnsupportedTerminal is defined in terminfo.go since resolving the
// terminal name is that module's concern.
var (
	ErrFailedToOpenTTY    = errors.New("termbox: failed to open /dev/tty")
	ErrAlreadyInitialized = errors.New("termbox: session already initialized")
	ErrNotInitialized     = errors.New("termbox: session not initialized")
	ErrInputOverflow      = errors.New("termbox: input ring buffer overflow, discarding input")
)

// inputRingBufferCapacity is the canonical ring buffer size from
// spec.md §4.3.
const inputRingBufferCapacity = 4096

// Session holds the entire process-wide state the C source kept as
// file-scope statics: both cell buffers, the input ring buffer, the
// tty handles, the resolved terminfo table, and the diff-rendering
// cache. Init on a Session that is already initialized returns
// ErrAlreadyInitialized; Init does not check whether some other
// Session value is initialized. The package-level procedural façade in api.go wraps a single default
// instance of this type.
type Session struct {
	mu sync.Mutex

	out  *os.File
	inFd int

	term *termInfo

	back  cellbuf
	front cellbuf
	ring  *ringBuffer

	inputMode InputMode

	origTermios unix.Termios

	resizePending atomic.Bool
	sigwinchCh    chan os.Signal
	sigwinchDone  chan struct{}

	render renderState

	initialized bool

	// winsizeOverride substitutes a fake terminal size for tests that
	// don't have a real tty backing out/inFd.
	winsizeOverride func() (width, height int, err error)
}

// Init acquires /dev/tty, resolves the terminal's capability set,
// switches to raw mode, enters the alternate screen and keypad mode,
// and allocates the cell buffers and input ring. It must be called
// exactly once per Session before any other method, and paired with a
// call to Shutdown.
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return ErrAlreadyInitialized
	}

	out, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToOpenTTY, err)
	}
	inFd, err := unix.Open("/dev/tty", unix.O_RDONLY, 0)
	if err != nil {
		out.Close()
		return fmt.Errorf("%w: %v", ErrFailedToOpenTTY, err)
	}
	if !xterm.IsTerminal(int(out.Fd())) {
		out.Close()
		unix.Close(inFd)
		return fmt.Errorf("%w: not a terminal", ErrFailedToOpenTTY)
	}

	ti, err := resolveTermInfo(os.Getenv("TERM"))
	if err != nil {
		out.Close()
		unix.Close(inFd)
		return err
	}

	origTermios, err := unix.IoctlGetTermios(int(out.Fd()), ioctlGetTermios)
	if err != nil {
		out.Close()
		unix.Close(inFd)
		return err
	}

	raw := *origTermios
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(int(out.Fd()), ioctlSetTermiosF, &raw); err != nil {
		out.Close()
		unix.Close(inFd)
		return err
	}

	s.out = out
	s.inFd = inFd
	s.term = ti
	s.origTermios = *origTermios
	s.inputMode = InputEsc
	s.ring = newRingBuffer(inputRingBufferCapacity)
	s.render.reset()

	s.writeRaw(ti.enterCA)
	s.writeRaw(ti.enterKeypad)
	s.writeRaw(ti.hideCursor)
	s.writeRaw(ti.clearScreen)
	s.flush()

	w, h, err := s.queryWinsize()
	if err != nil {
		w, h = 80, 24
	}
	s.back.init(w, h)
	s.back.clear()
	s.front.init(w, h)
	s.front.clear()

	s.sigwinchCh = make(chan os.Signal, 1)
	s.sigwinchDone = make(chan struct{})
	signal.Notify(s.sigwinchCh, syscall.SIGWINCH)
	go s.watchResize()

	s.initialized = true
	return nil
}

// watchResize is the only concurrently-running code in the library.
// Go delivers signals to a channel outside of any signal-handler
// context, so unlike the C source's sigwinch_handler this goroutine
// isn't restricted to async-signal-safe operations -- but it still
// follows the same discipline by design: it does nothing but flip an
// atomic flag. All actual reconciliation (ioctl, allocation, escape
// sequence emission) happens later, on the main goroutine, inside
// Clear or Present.
func (s *Session) watchResize() {
	for {
		select {
		case <-s.sigwinchCh:
			s.resizePending.Store(true)
		case <-s.sigwinchDone:
			return
		}
	}
}

// NotifyResize is a non-signal-driven equivalent of the SIGWINCH path,
// for embedders that learn of a size change some other way (e.g. a
// PTY controller observing its child's winsize out of band).
func (s *Session) NotifyResize() {
	s.resizePending.Store(true)
}

// Shutdown restores the terminal to its pre-Init state: cursor shown,
// attributes reset, screen cleared, alternate screen and keypad mode
// exited, termios restored, handles closed, buffers freed.
func (s *Session) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}

	s.writeRaw(s.term.showCursor)
	s.writeRaw(s.term.sgr0)
	s.writeRaw(s.term.clearScreen)
	s.writeRaw(s.term.exitCA)
	s.writeRaw(s.term.exitKeypad)
	s.flush()
	s.render.reset()

	close(s.sigwinchDone)
	signal.Stop(s.sigwinchCh)

	err := unix.IoctlSetTermios(int(s.out.Fd()), ioctlSetTermiosF, &s.origTermios)

	s.out.Close()
	unix.Close(s.inFd)

	s.back.free()
	s.front.free()
	s.ring = nil
	s.initialized = false

	return err
}

// Width returns the current terminal width in columns.
func (s *Session) Width() int { return s.back.width }

// Height returns the current terminal height in rows.
func (s *Session) Height() int { return s.back.height }

// Clear fills the back buffer with the default appearance. Any
// pending resize is reconciled first (see reconcileResizeIfPending).
func (s *Session) Clear() { s.clearBack() }

// Present synchronizes the terminal with the back buffer; see
// output.go for the diff algorithm.
func (s *Session) Present() error { return s.present() }

// PutCell writes cell at (x, y) in the back buffer.
func (s *Session) PutCell(x, y int, cell Cell) { s.putCell(x, y, cell) }

// ChangeCell is PutCell's field-at-a-time form.
func (s *Session) ChangeCell(x, y int, ch rune, fg, bg Attribute) {
	s.changeCell(x, y, ch, fg, bg)
}

// Blit copies a w*h rectangle of cells into the back buffer at (x, y).
func (s *Session) Blit(x, y, w, h int, cells []Cell) { s.blit(x, y, w, h, cells) }

// SelectInputMode sets the active input mode when mode is non-zero
// (InputEsc or InputAlt), and always returns the resulting mode.
// InputCurrent (0) queries without setting.
func (s *Session) SelectInputMode(mode InputMode) InputMode {
	if mode != InputCurrent {
		s.inputMode = mode
	}
	return s.inputMode
}

// PollEvent blocks until a key event is available and returns it.
func (s *Session) PollEvent() (Event, error) {
	ev, _, err := s.waitFillEvent(nil)
	return ev, err
}

// PeekEvent waits up to timeout for a key event. ok is false if the
// timeout elapsed with nothing to report.
func (s *Session) PeekEvent(timeout time.Duration) (ev Event, ok bool, err error) {
	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	return s.waitFillEvent(&tv)
}

// queryWinsize reads the current terminal dimensions via the window
// size ioctl on the output handle, matching the C source's use of
// out_fileno for TIOCGWINSZ. winsizeOverride lets tests substitute a
// fake size without a real tty backing s.out.
func (s *Session) queryWinsize() (width, height int, err error) {
	if s.winsizeOverride != nil {
		return s.winsizeOverride()
	}
	ws, err := unix.IoctlGetWinsize(int(s.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// reconcileResizeIfPending performs the deferred work flagged by
// watchResize/NotifyResize: re-query the window size, resize both
// buffers, invalidate every front-buffer cell with an out-of-range rune
// and attributes (forcing Present to repaint every cell), reset the
// render cache, and emit SGR0 + clear-screen.
func (s *Session) reconcileResizeIfPending() {
	if !s.resizePending.CompareAndSwap(true, false) {
		return
	}
	w, h, err := s.queryWinsize()
	if err != nil {
		return
	}
	s.back.resize(w, h)
	s.front.resize(w, h)
	for i := range s.front.cells {
		s.front.cells[i] = Cell{Ch: -1, Fg: attrInvalid, Bg: attrInvalid}
	}

	s.render.reset()
	s.writeRaw(s.term.sgr0)
	s.writeRaw(s.term.clearScreen)
	s.flush()
}

// writeRaw stages a raw string into the output buffer without going
// through the diff-cache machinery; used for the fixed sequences
// emitted during init/shutdown/resize.
func (s *Session) writeRaw(str string) {
	s.render.out.WriteString(str)
}
