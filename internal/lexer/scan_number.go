package lexer

import (
	"mica/internal/token"
)

// scanInteger читает максимальную серию ASCII-цифр.
// Ни знака, ни разделителей, ни плавающей точки — только целые.
func (lx *Lexer) scanInteger() (token.Token, bool) {
	if !isDec(lx.cursor.Peek()) {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}, true
}
