package lexer

import (
	"mica/internal/diag"
	"mica/internal/token"
)

// scanString читает "..." без поддержки escape-последовательностей.
// Текст токена — содержимое между кавычками, сами кавычки не входят.
// Если закрывающей кавычки нет до конца входа — откат без совпадения,
// и вход уйдёт в Unknown (fall-through в Next).
func (lx *Lexer) scanString() (token.Token, bool) {
	if lx.cursor.Peek() != '"' {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for lx.cursor.Peek() != '"' {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
			lx.anomalyReported = true
			lx.cursor.Reset(start)
			return token.Token{}, false
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	sp.Start++ // exclude the opening quote
	tok := token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	lx.cursor.Bump() // consume the closing quote
	return tok, true
}
