package lexer

import (
	"testing"

	"mica/internal/source"
)

func newTestCursor(t *testing.T, content string) Cursor {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor.mi", []byte(content))
	return NewCursor(fs.Get(id))
}

func TestCursor_PeekBump(t *testing.T) {
	c := newTestCursor(t, "ab")

	if c.Peek() != 'a' {
		t.Errorf("Peek: got %q", c.Peek())
	}
	if got := c.Bump(); got != 'a' {
		t.Errorf("Bump: got %q", got)
	}
	if got := c.Bump(); got != 'b' {
		t.Errorf("Bump: got %q", got)
	}
	if !c.EOF() {
		t.Error("expected EOF")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Error("Peek/Bump past EOF must return 0")
	}
}

func TestCursor_Peek2(t *testing.T) {
	c := newTestCursor(t, "->")
	b0, b1, ok := c.Peek2()
	if !ok || b0 != '-' || b1 != '>' {
		t.Errorf("Peek2: got %q %q %v", b0, b1, ok)
	}

	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 with one byte left must fail")
	}
}

func TestCursor_MarkSpanReset(t *testing.T) {
	c := newTestCursor(t, "hello")
	m := c.Mark()
	c.Bump()
	c.Bump()

	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom: got %d-%d", sp.Start, sp.End)
	}

	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("Reset: off=%d", c.Off)
	}
	if c.Peek() != 'h' {
		t.Errorf("after Reset: Peek got %q", c.Peek())
	}
}

func TestCursor_Eat(t *testing.T) {
	c := newTestCursor(t, "#x")
	if !c.Eat('#') {
		t.Error("Eat('#') failed")
	}
	if c.Eat('#') {
		t.Error("Eat('#') matched 'x'")
	}
	if c.Off != 1 {
		t.Errorf("off=%d, want 1", c.Off)
	}
}
