package termbox

import "golang.org/x/sys/unix"

// readChunkSize is how many bytes waitFillEvent reads from the tty at
// a time, matching the C source's 32-byte stack buffer in
// wait_fill_event.
const readChunkSize = 32

// waitFillEvent is the common routine behind PollEvent and PeekEvent.
// It implements spec.md §4.6's algorithm exactly:
//
//  1. try extractEvent against whatever is already buffered;
//  2. otherwise wait for readability on the tty-in descriptor (an
//     infinite wait when timeout is nil, a bounded one otherwise);
//  3. on readability, read up to readChunkSize bytes -- a zero-byte
//     read is a spurious wakeup (typically a resize signal
//     interrupting the non-blocking read) and is not an error;
//  4. if the ring buffer has no room for what was read, report
//     overflow and discard the chunk, leaving already-buffered bytes
//     alone;
//  5. otherwise push the bytes and retry extraction, looping back to
//     step 2 on another NEED_MORE.
func (s *Session) waitFillEvent(timeout *unix.Timeval) (Event, bool, error) {
	var ev Event

	if extractEvent(&ev, s.ring, s.inputMode, s.term.keys) == decodeOK {
		return ev, true, nil
	}

	var buf [readChunkSize]byte
	var fds unix.FdSet
	for {
		fdZero(&fds)
		fdSet(&fds, s.inFd)

		n, err := unix.Select(s.inFd+1, &fds, nil, nil, timeout)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return Event{}, false, err
		}
		if n == 0 {
			return Event{}, false, nil
		}

		read, err := unix.Read(s.inFd, buf[:])
		if err == unix.EAGAIN || err == unix.EINTR {
			continue
		}
		if err != nil {
			return Event{}, false, err
		}
		if read == 0 {
			// Spurious wakeup, typically a resize signal interrupting
			// the read. Not EOF: the fd stays open in raw mode.
			continue
		}

		if s.ring.freeSpace() < read {
			return Event{}, false, ErrInputOverflow
		}
		s.ring.push(buf[:read])

		if extractEvent(&ev, s.ring, s.inputMode, s.term.keys) == decodeOK {
			return ev, true, nil
		}
	}
}

func fdZero(set *unix.FdSet) {
	for i := range set.Bits {
		set.Bits[i] = 0
	}
}

func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}
