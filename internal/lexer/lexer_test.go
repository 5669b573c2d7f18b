package lexer_test

import (
	"strings"
	"testing"

	"mica/internal/diag"
	"mica/internal/lexer"
	"mica/internal/source"
	"mica/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mi", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

// collectAllTokens собирает все токены до EOF включительно
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

type expectedToken struct {
	text string
	kind token.Kind
}

// expectTokens проверяет последовательность значимых токенов (whitespace пропускается)
func expectTokens(t *testing.T, input string, expected []expectedToken) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	for i, want := range expected {
		tok := lx.Next()
		for tok.Kind == token.Whitespace {
			tok = lx.Next()
		}
		if tok.Kind != want.kind {
			t.Errorf("token %d: kind got %v, want %v (text %q)", i, tok.Kind, want.kind, tok.Text)
		}
		if tok.Text != want.text {
			t.Errorf("token %d: text got %q, want %q", i, tok.Text, want.text)
		}
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF after %d tokens, got %v", len(expected), tok)
	}
}

// expectExactTokens проверяет последовательность токенов включая whitespace
func expectExactTokens(t *testing.T, input string, expected []expectedToken) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	for i, want := range expected {
		tok := lx.Next()
		if tok.Kind != want.kind || tok.Text != want.text {
			t.Errorf("token %d: got %v %q, want %v %q", i, tok.Kind, tok.Text, want.kind, want.text)
		}
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF, got %v", tok)
	}
}

func TestLex_Whitespace(t *testing.T) {
	expectExactTokens(t, " ", []expectedToken{{" ", token.Whitespace}})
	expectExactTokens(t, " \t", []expectedToken{{" \t", token.Whitespace}})
	expectExactTokens(t, "\n\n ", []expectedToken{{"\n\n ", token.Whitespace}})
}

func TestLex_Keywords(t *testing.T) {
	expectTokens(t, "let", []expectedToken{{"let", token.KwLet}})
	expectTokens(t, "mut", []expectedToken{{"mut", token.KwMut}})
	expectTokens(t, "fn", []expectedToken{{"fn", token.KwFn}})
}

func TestLex_TypeKeywords(t *testing.T) {
	tests := []struct {
		text string
		kind token.Kind
	}{
		{"int1", token.KwInt1},
		{"int2", token.KwInt2},
		{"int4", token.KwInt4},
		{"int8", token.KwInt8},
		{"int16", token.KwInt16},
		{"int32", token.KwInt32},
		{"int64", token.KwInt64},
		{"float16", token.KwFloat16},
		{"bfloat16", token.KwBFloat16},
		{"float32", token.KwFloat32},
		{"float64", token.KwFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			expectTokens(t, "let x: "+tt.text+" = 0", []expectedToken{
				{"let", token.KwLet},
				{"x", token.Ident},
				{":", token.Colon},
				{tt.text, tt.kind},
				{"=", token.Assign},
				{"0", token.IntLit},
			})
		})
	}
}

func TestLex_KeywordIdentifierBoundary(t *testing.T) {
	// "int3" отсутствует в таблице — идентификатор
	expectTokens(t, "int3", []expectedToken{{"int3", token.Ident}})
	// "int32x" — один идентификатор, а не int32 + хвост
	expectTokens(t, "int32x", []expectedToken{{"int32x", token.Ident}})
	// underscore продолжает слово: одно целое, промах по таблице
	expectTokens(t, "int32_t", []expectedToken{{"int32_t", token.Ident}})
	expectTokens(t, "Let", []expectedToken{{"Let", token.Ident}})
}

func TestLex_LetStatement(t *testing.T) {
	expectTokens(t, "let mut x = 5", []expectedToken{
		{"let", token.KwLet},
		{"mut", token.KwMut},
		{"x", token.Ident},
		{"=", token.Assign},
		{"5", token.IntLit},
	})
}

func TestLex_Operators(t *testing.T) {
	expectTokens(t, "4 + 1", []expectedToken{
		{"4", token.IntLit}, {"+", token.Plus}, {"1", token.IntLit},
	})
	expectTokens(t, "4 - 1", []expectedToken{
		{"4", token.IntLit}, {"-", token.Minus}, {"1", token.IntLit},
	})
	expectTokens(t, "4 / 2", []expectedToken{
		{"4", token.IntLit}, {"/", token.Slash}, {"2", token.IntLit},
	})
	expectTokens(t, "4 * 2", []expectedToken{
		{"4", token.IntLit}, {"*", token.Star}, {"2", token.IntLit},
	})
}

func TestLex_BracesBracketsParens(t *testing.T) {
	expectTokens(t, "()[]{};", []expectedToken{
		{"(", token.LParen},
		{")", token.RParen},
		{"[", token.LBracket},
		{"]", token.RBracket},
		{"{", token.LBrace},
		{"}", token.RBrace},
		{";", token.Semicolon},
	})
}

func TestLex_FnAndArrow(t *testing.T) {
	expectTokens(t, "fn sq(x: int32) -> int32", []expectedToken{
		{"fn", token.KwFn},
		{"sq", token.Ident},
		{"(", token.LParen},
		{"x", token.Ident},
		{":", token.Colon},
		{"int32", token.KwInt32},
		{")", token.RParen},
		{"->", token.Arrow},
		{"int32", token.KwInt32},
	})
}

func TestLex_ArrowNeedsGreaterThan(t *testing.T) {
	// '-' без '>' — обычный минус; '>' сам по себе неизвестен
	lx, _ := makeTestLexer("-5")
	tok := lx.Next()
	if tok.Kind != token.Minus {
		t.Errorf("got %v, want Minus", tok.Kind)
	}
}

func TestLex_String(t *testing.T) {
	expectTokens(t, `let x: int64 = "five"`, []expectedToken{
		{"let", token.KwLet},
		{"x", token.Ident},
		{":", token.Colon},
		{"int64", token.KwInt64},
		{"=", token.Assign},
		{"five", token.StringLit},
	})
}

func TestLex_EmptyString(t *testing.T) {
	expectTokens(t, `""`, []expectedToken{{"", token.StringLit}})
}

func TestLex_StringSpanExcludesQuotes(t *testing.T) {
	lx, _ := makeTestLexer(`"five"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("got %v", tok.Kind)
	}
	if tok.Span.Start != 1 || tok.Span.End != 5 {
		t.Errorf("span: got %d-%d, want 1-5", tok.Span.Start, tok.Span.End)
	}
}

func TestLex_IncompleteString(t *testing.T) {
	lx, bag := makeTestLexer(`"oops`)
	tok := lx.Next()
	if tok.Kind != token.Unknown || tok.Text != `"oops` {
		t.Errorf("got %v %q, want Unknown %q", tok.Kind, tok.Text, `"oops`)
	}
	if !bag.HasWarnings() {
		t.Error("expected an unterminated-string warning")
	}
}

func TestLex_Comment(t *testing.T) {
	expectTokens(t, "let x:float64 = 0 # this is a comment\n", []expectedToken{
		{"let", token.KwLet},
		{"x", token.Ident},
		{":", token.Colon},
		{"float64", token.KwFloat64},
		{"=", token.Assign},
		{"0", token.IntLit},
		{"# this is a comment", token.Comment},
	})
}

func TestLex_CommentWithoutNewline(t *testing.T) {
	expectTokens(t, "let x:float64 = 0 # this is not a comment", []expectedToken{
		{"let", token.KwLet},
		{"x", token.Ident},
		{":", token.Colon},
		{"float64", token.KwFloat64},
		{"=", token.Assign},
		{"0", token.IntLit},
		{"# this is not a comment", token.Unknown},
	})
}

func TestLex_CommentConsumesNewline(t *testing.T) {
	// Перевод строки не входит в текст комментария и не даёт
	// отдельного whitespace токена.
	expectExactTokens(t, "# comment\n", []expectedToken{
		{"# comment", token.Comment},
	})
}

func TestLex_EmptyInput(t *testing.T) {
	lx, _ := makeTestLexer("")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("got %v, want EOF", tok.Kind)
	}
	if tok.Span.Start != 0 || tok.Text != "" {
		t.Errorf("EOF token: span %v text %q", tok.Span, tok.Text)
	}
}

func TestLex_EOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("x")
	_ = lx.Next()
	for i := 0; i < 3; i++ {
		tok := lx.Next()
		if tok.Kind != token.EOF {
			t.Fatalf("call %d after end: got %v, want EOF", i, tok.Kind)
		}
		if tok.Span.Start != 1 {
			t.Errorf("EOF offset: got %d, want 1", tok.Span.Start)
		}
	}
}

func TestLex_Totality(t *testing.T) {
	// Любой вход завершается ровно одним EOF, без ошибок.
	inputs := []string{
		"",
		"let x: int32 = 5;",
		"\x00\x01\x02",
		"€ юникод",
		"~~~~",
		strings.Repeat("a", 4096),
		"\"unterminated",
		"# no newline",
	}
	for _, input := range inputs {
		lx, _ := makeTestLexer(input)
		tokens := collectAllTokens(lx)
		eofs := 0
		for _, tok := range tokens {
			if tok.Kind == token.EOF {
				eofs++
			}
		}
		if eofs != 1 {
			t.Errorf("input %q: got %d EOF tokens, want 1", input, eofs)
		}
		if last := tokens[len(tokens)-1]; last.Kind != token.EOF {
			t.Errorf("input %q: last token %v, want EOF", input, last.Kind)
		}
	}
}

func TestLex_RoundTrip(t *testing.T) {
	// Конкатенация текстов токенов восстанавливает вход.
	// Строки и комментарии опускают кавычки/перевод строки —
	// см. TestLex_CommentConsumesNewline и TestLex_StringSpanExcludesQuotes.
	inputs := []string{
		"let mut x: int32 = 5;",
		"fn five() -> int32;",
		"2 + 4;",
		"  \t\n let \n",
		"~garbage to the end",
		"",
	}
	for _, input := range inputs {
		lx, _ := makeTestLexer(input)
		var sb strings.Builder
		for _, tok := range collectAllTokens(lx) {
			sb.WriteString(tok.Text)
		}
		if sb.String() != input {
			t.Errorf("round trip: got %q, want %q", sb.String(), input)
		}
	}
}

func TestLex_UnknownRunsToEndOfInput(t *testing.T) {
	lx, _ := makeTestLexer("~ let x = 5;")
	tok := lx.Next()
	if tok.Kind != token.Unknown || tok.Text != "~ let x = 5;" {
		t.Errorf("got %v %q, want Unknown spanning to end", tok.Kind, tok.Text)
	}
}

func TestLex_RowAndColumn(t *testing.T) {
	input := "let x = 5\nlet y = 7\n\nlet z = x + y\n"
	lx, _ := makeTestLexer(input)

	var tokens []token.Token
	for tok := lx.Next(); tok.Kind != token.EOF; tok = lx.Next() {
		tokens = append(tokens, tok)
	}

	expected := []struct {
		text string
		kind token.Kind
		row  uint32
		col  uint32
	}{
		// Line 1
		{"let", token.KwLet, 1, 1},
		{" ", token.Whitespace, 1, 4},
		{"x", token.Ident, 1, 5},
		{" ", token.Whitespace, 1, 6},
		{"=", token.Assign, 1, 7},
		{" ", token.Whitespace, 1, 8},
		{"5", token.IntLit, 1, 9},
		{"\n", token.Whitespace, 1, 10},
		// Line 2
		{"let", token.KwLet, 2, 1},
		{" ", token.Whitespace, 2, 4},
		{"y", token.Ident, 2, 5},
		{" ", token.Whitespace, 2, 6},
		{"=", token.Assign, 2, 7},
		{" ", token.Whitespace, 2, 8},
		{"7", token.IntLit, 2, 9},
		{"\n\n", token.Whitespace, 2, 10},
		// Line 4
		{"let", token.KwLet, 4, 1},
		{" ", token.Whitespace, 4, 4},
		{"z", token.Ident, 4, 5},
		{" ", token.Whitespace, 4, 6},
		{"=", token.Assign, 4, 7},
		{" ", token.Whitespace, 4, 8},
		{"x", token.Ident, 4, 9},
		{" ", token.Whitespace, 4, 10},
		{"+", token.Plus, 4, 11},
		{" ", token.Whitespace, 4, 12},
		{"y", token.Ident, 4, 13},
		{"\n", token.Whitespace, 4, 14},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(expected))
	}
	for i, want := range expected {
		tok := tokens[i]
		if tok.Text != want.text || tok.Kind != want.kind {
			t.Errorf("token %d: got %v %q, want %v %q", i, tok.Kind, tok.Text, want.kind, want.text)
		}
		if row := lx.Row(tok); row != want.row {
			t.Errorf("token %d (%q): row got %d, want %d", i, tok.Text, row, want.row)
		}
		if col := lx.Column(tok); col != want.col {
			t.Errorf("token %d (%q): column got %d, want %d", i, tok.Text, col, want.col)
		}
	}
}

func TestLex_RowPanicsOnEOF(t *testing.T) {
	lx, _ := makeTestLexer("x")
	_ = lx.Next()
	eof := lx.Next()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for row lookup on EOF token")
		}
	}()
	lx.Row(eof)
}

func TestLex_ColumnPanicsOutOfRange(t *testing.T) {
	lx, _ := makeTestLexer("x")
	bad := token.Token{Kind: token.Ident, Span: source.Span{Start: 99, End: 100}, Text: "?"}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range column lookup")
		}
	}()
	lx.Column(bad)
}

func TestLex_Peek(t *testing.T) {
	lx, _ := makeTestLexer("let")
	p := lx.Peek()
	n := lx.Next()
	if p != n {
		t.Errorf("Peek %v != Next %v", p, n)
	}
	if lx.Next().Kind != token.EOF {
		t.Error("expected EOF after single token")
	}
}
