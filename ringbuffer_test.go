package termbox

import (
	"bytes"
	"testing"
)

func TestRingBufferPushPeekConsume(t *testing.T) {
	r := newRingBuffer(8)

	if !r.push([]byte("abcd")) {
		t.Fatal("push within capacity failed")
	}
	if r.len() != 4 || r.freeSpace() != 4 {
		t.Fatalf("len=%d freeSpace=%d, want 4/4", r.len(), r.freeSpace())
	}
	if got := r.peek(4); !bytes.Equal(got, []byte("abcd")) {
		t.Fatalf("peek = %q, want abcd", got)
	}

	r.consume(2)
	if r.len() != 2 {
		t.Fatalf("len after consume = %d, want 2", r.len())
	}
	if got := r.peek(2); !bytes.Equal(got, []byte("cd")) {
		t.Fatalf("peek after consume = %q, want cd", got)
	}
}

func TestRingBufferWrapAround(t *testing.T) {
	r := newRingBuffer(4)

	r.push([]byte("ab"))
	r.consume(2)
	r.push([]byte("cdef")) // wraps: tail wraps back to index 0

	if got := r.peek(4); !bytes.Equal(got, []byte("cdef")) {
		t.Fatalf("peek across wrap = %q, want cdef", got)
	}
}

func TestRingBufferPushFailsSilentlyOnOverflow(t *testing.T) {
	r := newRingBuffer(4)
	r.push([]byte("abcd"))

	if r.push([]byte("e")) {
		t.Fatal("push should have failed: no free space")
	}
	if r.len() != 4 {
		t.Fatalf("len = %d after failed push, want unchanged 4", r.len())
	}
}

func TestRingBufferNoByteDuplicatedOrDropped(t *testing.T) {
	r := newRingBuffer(16)
	input := []byte("hello, world! more bytes here")

	var out []byte
	i := 0
	for i < len(input) {
		chunk := 3
		if i+chunk > len(input) {
			chunk = len(input) - i
		}
		for r.freeSpace() < chunk {
			n := r.len()
			out = append(out, r.peek(n)...)
			r.consume(n)
		}
		r.push(input[i : i+chunk])
		i += chunk
	}
	out = append(out, r.peek(r.len())...)
	r.consume(r.len())

	if !bytes.Equal(out, input) {
		t.Fatalf("round-tripped bytes = %q, want %q", out, input)
	}
}
