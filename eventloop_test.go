package termbox

import (
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func newTestSessionWithInput(t *testing.T) (s *Session, w *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	t.Cleanup(func() { r.Close() })

	s = &Session{
		inFd:      int(r.Fd()),
		term:      termXterm,
		inputMode: InputEsc,
		ring:      newRingBuffer(inputRingBufferCapacity),
	}
	return s, w
}

func TestWaitFillEventReturnsAlreadyBufferedEvent(t *testing.T) {
	s, w := newTestSessionWithInput(t)
	defer w.Close()
	s.ring.push([]byte{0x03})

	ev, ok, err := s.waitFillEvent(nil)
	if err != nil || !ok {
		t.Fatalf("waitFillEvent = (%v, %v, %v), want an immediate event", ev, ok, err)
	}
	if ev.Key != KeyCtrlC {
		t.Fatalf("ev.Key = %v, want KeyCtrlC", ev.Key)
	}
}

func TestWaitFillEventReadsFromDescriptor(t *testing.T) {
	s, w := newTestSessionWithInput(t)
	defer w.Close()

	go func() {
		w.Write([]byte{0x1B, 'O', 'P'}) // xterm F1
	}()

	ev, ok, err := s.waitFillEvent(nil)
	if err != nil || !ok {
		t.Fatalf("waitFillEvent = (%v, %v, %v), want an event", ev, ok, err)
	}
	if ev.Key != KeyF1 {
		t.Fatalf("ev.Key = %v, want KeyF1", ev.Key)
	}
}

func TestPeekEventTimesOutWhenIdle(t *testing.T) {
	s, w := newTestSessionWithInput(t)
	defer w.Close()

	tv := unix.NsecToTimeval((20 * time.Millisecond).Nanoseconds())
	_, ok, err := s.waitFillEvent(&tv)
	if err != nil {
		t.Fatalf("waitFillEvent error: %v", err)
	}
	if ok {
		t.Fatal("expected no event within the timeout")
	}
}

func TestWaitFillEventOverflowDiscardsChunk(t *testing.T) {
	s, w := newTestSessionWithInput(t)
	defer w.Close()

	// A 3-byte ring can never hold a complete 4-byte UTF-8 sequence,
	// so a 0xF0 lead byte plus padding decodes as a perpetual
	// NEED_MORE and the ring stays genuinely full (freeSpace == 0)
	// rather than draining on the first extractEvent attempt.
	s.ring = newRingBuffer(3)
	s.ring.push([]byte{0xF0, 0x00, 0x00})

	go func() {
		w.Write([]byte{1, 2, 3, 4, 5})
	}()

	_, ok, err := s.waitFillEvent(nil)
	if err != ErrInputOverflow {
		t.Fatalf("err = %v, want ErrInputOverflow", err)
	}
	if ok {
		t.Fatal("overflow must not report an event")
	}
	if s.ring.len() != 3 {
		t.Fatalf("already-buffered bytes must survive an overflow, len=%d", s.ring.len())
	}
}
