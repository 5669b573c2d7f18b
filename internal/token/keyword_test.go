package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident  string
		want   Kind
		wantOk bool
	}{
		{"let", KwLet, true},
		{"mut", KwMut, true},
		{"fn", KwFn, true},
		{"int1", KwInt1, true},
		{"int32", KwInt32, true},
		{"int64", KwInt64, true},
		{"float16", KwFloat16, true},
		{"bfloat16", KwBFloat16, true},
		{"float64", KwFloat64, true},
		{"int3", 0, false},
		{"int32x", 0, false},
		{"Let", 0, false}, // case sensitive
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := LookupKeyword(tt.ident)
		if ok != tt.wantOk {
			t.Errorf("LookupKeyword(%q): ok=%v, want %v", tt.ident, ok, tt.wantOk)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("LookupKeyword(%q): got %v, want %v", tt.ident, got, tt.want)
		}
	}
}
