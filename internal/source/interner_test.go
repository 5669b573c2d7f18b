package source

import "testing"

func TestInterner_InternAndLookup(t *testing.T) {
	in := NewInterner()

	a := in.Intern("five")
	b := in.Intern("five")
	if a != b {
		t.Errorf("same string interned twice: %d vs %d", a, b)
	}
	if a == NoStringID {
		t.Error("interned string got NoStringID")
	}

	s, ok := in.Lookup(a)
	if !ok || s != "five" {
		t.Errorf("Lookup: got %q (ok=%v)", s, ok)
	}
}

func TestInterner_EmptyStringIsNoStringID(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string: got %d, want NoStringID", id)
	}
	if in.Len() != 1 {
		t.Errorf("fresh interner Len: got %d, want 1", in.Len())
	}
}

func TestInterner_MustLookupPanics(t *testing.T) {
	in := NewInterner()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid ID")
		}
	}()
	in.MustLookup(StringID(42))
}
