package termbox

import "testing"

func TestResolveTermInfoExactMatch(t *testing.T) {
	ti, err := resolveTermInfo("xterm")
	if err != nil {
		t.Fatalf("resolveTermInfo(xterm) error: %v", err)
	}
	if ti != termXterm {
		t.Fatalf("resolveTermInfo(xterm) did not return the xterm table")
	}
}

func TestResolveTermInfoPrefixFallback(t *testing.T) {
	ti, err := resolveTermInfo("screen.xterm-256color")
	if err != nil {
		t.Fatalf("resolveTermInfo error: %v", err)
	}
	if ti != termScreen {
		t.Fatalf("expected prefix match against 'screen', got a different table")
	}
}

func TestResolveTermInfoUnsupported(t *testing.T) {
	_, err := resolveTermInfo("some-terminal-nobody-has-heard-of")
	if err != ErrUnsupportedTerminal {
		t.Fatalf("err = %v, want ErrUnsupportedTerminal", err)
	}
}

func TestKeyTablesOrderedForF1ThroughArrowRight(t *testing.T) {
	for name, ti := range builtinTerms {
		if len(ti.keys) != 22 {
			t.Errorf("%s: key table has %d entries, want 22 (F1-F12 + 6 nav + 4 arrows)", name, len(ti.keys))
		}
		if ti.keys[0].key != KeyF1 {
			t.Errorf("%s: entry 0 = %v, want KeyF1", name, ti.keys[0].key)
		}
		if ti.keys[len(ti.keys)-1].key != KeyArrowRight {
			t.Errorf("%s: last entry = %v, want KeyArrowRight", name, ti.keys[len(ti.keys)-1].key)
		}
	}
}

func TestKeyTableNoSequenceShadowsALaterOne(t *testing.T) {
	for name, ti := range builtinTerms {
		for i, a := range ti.keys {
			for j, b := range ti.keys {
				if i >= j {
					continue
				}
				if len(a.seq) <= len(b.seq) && hasPrefix(b.seq, a.seq) {
					t.Errorf("%s: entry %d (%q) is a prefix of later entry %d (%q)", name, i, a.seq, j, b.seq)
				}
			}
		}
	}
}

func hasPrefix(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
