package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		want        string
		wantChanged bool
	}{
		{"no crlf", "let x = 5;\n", "let x = 5;\n", false},
		{"single crlf", "a\r\nb", "a\nb", true},
		{"lone cr kept", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\r\n", "a\nb\rc\n", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("content: got %q, want %q", got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed: got %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || string(got) != "hi" {
		t.Errorf("removeBOM: got %q (had=%v)", got, had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || string(got) != "hi" {
		t.Errorf("removeBOM on plain: got %q (had=%v)", got, had)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("let x = 5\nlet y = 7\n\nlet z = x + y\n")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{4, LineCol{1, 5}},
		{9, LineCol{1, 10}},  // '\n' of line 1
		{10, LineCol{2, 1}},  // 'l' of line 2
		{20, LineCol{3, 1}},  // empty line
		{21, LineCol{4, 1}},  // 'l' of line 4
		{29, LineCol{4, 9}},  // 'x'
	}

	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got != tt.want {
			t.Errorf("toLineCol(%d): got %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestToLineCol_NoNewlines(t *testing.T) {
	idx := buildLineIndex([]byte("abc"))
	if got := toLineCol(idx, 2); got != (LineCol{1, 3}) {
		t.Errorf("got %v, want 1:3", got)
	}
}
