package diag

import (
	"testing"

	"mica/internal/source"
)

func mkDiag(sev Severity, code Code, start uint32) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  code.Title(),
		Primary:  source.Span{Start: start, End: start + 1},
	}
}

func TestBag_LimitAndFlags(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(mkDiag(SevWarning, LexUnterminatedString, 0)) {
		t.Fatal("first Add rejected")
	}
	if !bag.Add(mkDiag(SevError, SynExpectSemicolon, 5)) {
		t.Fatal("second Add rejected")
	}
	if bag.Add(mkDiag(SevError, SynExpectType, 9)) {
		t.Error("Add above limit accepted")
	}

	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Error("severity flags wrong")
	}
	if bag.Len() != 2 {
		t.Errorf("Len: got %d, want 2", bag.Len())
	}
}

func TestBag_SortAndDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(SevError, SynExpectSemicolon, 9))
	bag.Add(mkDiag(SevWarning, LexUnknownBytes, 2))
	bag.Add(mkDiag(SevWarning, LexUnknownBytes, 2)) // duplicate

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("after dedup: got %d items, want 2", len(items))
	}
	if items[0].Primary.Start != 2 || items[1].Primary.Start != 9 {
		t.Errorf("sort order wrong: %v", items)
	}
}

func TestCodeID(t *testing.T) {
	if got := LexUnterminatedString.ID(); got != "LEX1002" {
		t.Errorf("ID: got %q", got)
	}
	if got := SynExpectSemicolon.ID(); got != "SYN2008" {
		t.Errorf("ID: got %q", got)
	}
	if got := UnknownCode.ID(); got != "E0000" {
		t.Errorf("ID: got %q", got)
	}
}
