package termbox

import (
	"bytes"
	"unicode/utf8"
)

// decodeResult is the outcome of a single decode attempt.
type decodeResult int

const (
	decodeOK decodeResult = iota
	decodeNeedMore
)

// utf8Len returns the number of bytes a UTF-8 sequence starting with
// b0 is expected to occupy, by the classical encoding (1-6 bytes).
func utf8Len(b0 byte) int {
	switch {
	case b0&0x80 == 0x00:
		return 1
	case b0&0xE0 == 0xC0:
		return 2
	case b0&0xF0 == 0xE0:
		return 3
	case b0&0xF8 == 0xF0:
		return 4
	case b0&0xFC == 0xF8:
		return 5
	default:
		return 6
	}
}

// extractEvent consumes a prefix of rb and fills ev on success. It
// never blocks: if the buffered bytes are an incomplete prefix of a
// longer sequence, it returns decodeNeedMore and leaves rb untouched.
// table is the active terminal's key-sequence table.
func extractEvent(ev *Event, rb *ringBuffer, mode InputMode, table []keySeq) decodeResult {
	if rb.len() == 0 {
		return decodeNeedMore
	}
	buf := rb.peek(rb.len())
	res, consumed := decodeBytes(ev, buf, mode, table, false)
	if res == decodeOK {
		rb.consume(consumed)
	}
	return res
}

// decodeBytes is the pure decoding core: given a byte slice known to
// be non-empty, decide the event it represents and how many bytes it
// consumes. insideAlt is true only for the single permitted recursive
// call made while handling INPUT_ALT, and forces ESC-mode policy for
// that inner call so a run of bare ESCs cannot nest ALT modifiers.
func decodeBytes(ev *Event, buf []byte, mode InputMode, table []keySeq, insideAlt bool) (decodeResult, int) {
	b0 := buf[0]

	if b0 == 0x1B {
		if n, key, ok := matchKeySeq(buf, table); ok {
			*ev = Event{Key: key}
			return decodeOK, n
		}

		effectiveMode := mode
		if insideAlt {
			effectiveMode = InputEsc
		}

		switch effectiveMode {
		case InputAlt:
			if len(buf) < 2 {
				return decodeNeedMore, 0
			}
			res, n := decodeBytes(ev, buf[1:], mode, table, true)
			if res == decodeNeedMore {
				return decodeNeedMore, 0
			}
			ev.Mod |= ModAlt
			return decodeOK, 1 + n
		default: // InputEsc, or any unset/unknown mode
			*ev = Event{Key: KeyEsc}
			return decodeOK, 1
		}
	}

	if b0 < 0x20 || b0 == 0x7F {
		*ev = Event{Key: Key(b0)}
		return decodeOK, 1
	}

	n := utf8Len(b0)
	if len(buf) < n {
		return decodeNeedMore, 0
	}
	r, size := utf8.DecodeRune(buf[:n])
	*ev = Event{Ch: r}
	return decodeOK, size
}

// matchKeySeq finds the first table entry whose byte sequence is a
// complete prefix of buf. Tables are ordered so no shorter entry
// shadows a longer one that would also match.
func matchKeySeq(buf []byte, table []keySeq) (int, Key, bool) {
	for _, ks := range table {
		if len(buf) >= len(ks.seq) && bytes.Equal(buf[:len(ks.seq)], ks.seq) {
			return len(ks.seq), ks.key, true
		}
	}
	return 0, 0, false
}
