package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/diagfmt"
	"mica/internal/lexer"
	"mica/internal/parser"
	"mica/internal/source"
	"mica/internal/token"
)

func lexAll(t *testing.T, input string) (*source.FileSet, []token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mi", []byte(input))
	bag := diag.NewBag(16)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	toks := make([]token.Token, 0, 16)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return fs, toks, bag
		}
	}
}

func TestPrettyDiagnosticWithCaret(t *testing.T) {
	fs, _, bag := lexAll(t, "let s = \"oops")
	if !bag.HasWarnings() {
		t.Fatal("expected an unterminated string warning")
	}
	bag.Sort()

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowNotes: true})
	out := buf.String()

	if !strings.Contains(out, "test.mi:1:") {
		t.Errorf("output missing location:\n%s", out)
	}
	if !strings.Contains(out, "warning") {
		t.Errorf("output missing severity:\n%s", out)
	}
	if !strings.Contains(out, "LEX") {
		t.Errorf("output missing code id:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("output missing caret line:\n%s", out)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs, _, bag := lexAll(t, "@@@")
	if bag.Len() == 0 {
		t.Fatal("expected a diagnostic for unknown bytes")
	}
	bag.Sort()

	var buf bytes.Buffer
	err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out []diagfmt.DiagnosticJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v\noutput:\n%s", err, buf.String())
	}
	if len(out) == 0 {
		t.Fatal("no diagnostics in JSON output")
	}
	if out[0].Code != "LEX1001" {
		t.Errorf("code = %q, want LEX1001", out[0].Code)
	}
	if out[0].Start == nil || out[0].Start.Line != 1 {
		t.Errorf("start position missing or wrong: %+v", out[0].Start)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs, toks, _ := lexAll(t, "let x: int32 = 5;")

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"let", "Ident", "Colon", "int32", "Assign", "IntLit", "Semicolon", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, toks, _ := lexAll(t, "x + y;")

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// x, ws, +, ws, y, ;, EOF
	if len(out) != 7 {
		t.Fatalf("got %d tokens, want 7", len(out))
	}
	if out[0].Kind != "Ident" || out[0].Text != "x" {
		t.Errorf("first token = %+v", out[0])
	}
	if out[len(out)-1].Kind != "EOF" {
		t.Errorf("last token = %+v", out[len(out)-1])
	}
}

func parseProgram(t *testing.T, input string) (*source.FileSet, *ast.Builder, ast.ProgramID) {
	t.Helper()
	fs, toks, _ := lexAll(t, input)
	b := ast.NewBuilder(ast.Hints{}, nil)
	prog, err := parser.ParseProgram(b, toks, parser.Options{Reporter: diag.NopReporter{}})
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return fs, b, prog
}

func TestFormatASTPretty(t *testing.T) {
	fs, b, prog := parseProgram(t, "let mut x: int32 = 5;\nx + 2;\nfn five() -> int32;")

	var buf bytes.Buffer
	if err := diagfmt.FormatASTPretty(&buf, b, prog, fs); err != nil {
		t.Fatalf("FormatASTPretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Program", "3 statements",
		"Let mut x: int32",
		"BinaryExpression \"+\"",
		"Identifier \"x\"",
		"IntegerLiteral \"2\"",
		"FunctionDeclaration five() -> int32",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatASTJSON(t *testing.T) {
	_, b, prog := parseProgram(t, "2 + 4;")

	var buf bytes.Buffer
	if err := diagfmt.FormatASTJSON(&buf, b, prog); err != nil {
		t.Fatalf("FormatASTJSON: %v", err)
	}
	var out diagfmt.ProgramJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v\noutput:\n%s", err, buf.String())
	}
	if len(out.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(out.Stmts))
	}
	stmt := out.Stmts[0]
	if stmt.Kind != "Expression" || stmt.Expr == nil {
		t.Fatalf("statement = %+v", stmt)
	}
	if stmt.Expr.Kind != "BinaryExpression" || stmt.Expr.Op != "+" {
		t.Errorf("expr = %+v", stmt.Expr)
	}
	if stmt.Expr.Left == nil || stmt.Expr.Left.Text != "2" {
		t.Errorf("left = %+v", stmt.Expr.Left)
	}
	if stmt.Expr.Right == nil || stmt.Expr.Right.Text != "4" {
		t.Errorf("right = %+v", stmt.Expr.Right)
	}
}
