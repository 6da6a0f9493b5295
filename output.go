package termbox

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// coordInvalid is the sentinel cursor coordinate used to force a
// MOVE_CURSOR emission the first time present touches a cell after
// init, shutdown, or resize.
const coordInvalid = -2

// attrInvalid is a sentinel attribute pair guaranteed to differ from
// any real (fg, bg) so the first cell drawn after init/resize always
// emits its SGR sequence.
const attrInvalid Attribute = 0xFFFF

// renderState holds the diff-optimization cache described in
// spec.md §4.5: the last emitted cursor position and attribute pair,
// persisted across Present calls and reset to sentinels on init,
// shutdown, and resize.
type renderState struct {
	lastFg, lastBg Attribute
	lastX, lastY   int
	out            bytes.Buffer
}

func (r *renderState) reset() {
	r.lastFg, r.lastBg = attrInvalid, attrInvalid
	r.lastX, r.lastY = coordInvalid, coordInvalid
}

// putCell writes cell into the back buffer at (x, y). Out-of-bounds
// writes are silently dropped: rendering is a hot path and clipping at
// the draw site keeps callers simple.
func (s *Session) putCell(x, y int, cell Cell) {
	if x < 0 || x >= s.back.width || y < 0 || y >= s.back.height {
		return
	}
	s.back.cells[y*s.back.width+x] = cell
}

// changeCell is putCell's field-at-a-time convenience form.
func (s *Session) changeCell(x, y int, ch rune, fg, bg Attribute) {
	s.putCell(x, y, Cell{Ch: ch, Fg: fg, Bg: bg})
}

// blit copies a w*h rectangle of cells into the back buffer at
// (x, y). The bounds check uses '>' rather than '>=' so a blit that
// exactly fits flush against the right or bottom edge is accepted
// (see DESIGN.md Open Question #1); the entire call is dropped if the
// rectangle does not fit or w/h is non-positive.
func (s *Session) blit(x, y, w, h int, cells []Cell) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 || y < 0 || x+w > s.back.width || y+h > s.back.height {
		return
	}
	for row := 0; row < h; row++ {
		srcOff := row * w
		dstOff := (y+row)*s.back.width + x
		copy(s.back.cells[dstOff:dstOff+w], cells[srcOff:srcOff+w])
	}
}

// clearBack fills the back buffer with the default appearance. It
// does not touch the terminal directly; any pending resize is
// reconciled first, which may itself repaint the screen.
func (s *Session) clearBack() {
	s.reconcileResizeIfPending()
	s.back.clear()
}

// present diffs the back buffer against the front buffer, emits the
// minimal control sequences to make the terminal match, copies back
// into front cell-by-cell as it goes, and flushes. Any pending resize
// is reconciled first.
func (s *Session) present() error {
	s.reconcileResizeIfPending()

	for y := 0; y < s.back.height; y++ {
		lineOff := y * s.back.width
		for x := 0; x < s.back.width; x++ {
			off := lineOff + x
			back := s.back.cells[off]
			front := s.front.cells[off]
			if back == front {
				continue
			}
			s.sendAttr(back.Fg, back.Bg)
			s.sendChar(x, y, back.Ch)
			s.front.cells[off] = back
		}
	}

	return s.flush()
}

// sendAttr emits SGR0 followed by the new SGR pair plus BOLD/BLINK
// whenever (fg, bg) differs from the last emitted pair. BLINK is
// decided off the background attribute's BOLD bit (AttrBold), not a
// dedicated blink bit on bg -- this field-reuse convention comes
// straight from termbox's C source (send_attr's "if (bg & TB_BOLD)
// fputs(funcs[T_BLINK])") and is preserved rather than "fixed".
func (s *Session) sendAttr(fg, bg Attribute) {
	if fg == s.render.lastFg && bg == s.render.lastBg {
		return
	}
	s.render.out.WriteString(s.term.sgr0)
	fmt.Fprintf(&s.render.out, s.term.sgr, int(fg&0x0F), int(bg&0x0F))
	if fg&AttrBold != 0 {
		s.render.out.WriteString(s.term.bold)
	}
	if bg&AttrBold != 0 {
		s.render.out.WriteString(s.term.blink)
	}
	if fg&AttrUnderline != 0 {
		s.render.out.WriteString(s.term.underline)
	}
	s.render.lastFg, s.render.lastBg = fg, bg
}

// sendChar positions the cursor, if necessary, and emits ch's UTF-8
// encoding. The cursor is repositioned only when the previous cell
// written wasn't immediately to ch's left on the same row.
func (s *Session) sendChar(x, y int, ch rune) {
	if x-1 != s.render.lastX || y != s.render.lastY {
		fmt.Fprintf(&s.render.out, s.term.moveCursor, y+1, x+1)
	}
	s.render.lastX, s.render.lastY = x, y

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	s.render.out.Write(buf[:n])
}

// flush writes the staged output buffer to the tty and resets it.
func (s *Session) flush() error {
	if s.render.out.Len() == 0 {
		return nil
	}
	_, err := s.out.Write(s.render.out.Bytes())
	s.render.out.Reset()
	return err
}
