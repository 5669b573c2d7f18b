package lexer

import (
	"mica/internal/diag"
	"mica/internal/token"
)

// scanWhitespace собирает максимальную серию пробельных байтов в один токен.
func (lx *Lexer) scanWhitespace() (token.Token, bool) {
	if !isSpaceByte(lx.cursor.Peek()) {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Whitespace, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}, true
}

// scanComment читает '#'-комментарий до перевода строки.
// Сам перевод строки в текст не входит, но потребляется курсором.
// Комментарий без '\n' до конца входа — это НЕ комментарий: откатываемся,
// и вход уйдёт в Unknown (fall-through в Next).
func (lx *Lexer) scanComment() (token.Token, bool) {
	if lx.cursor.Peek() != '#' {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnterminatedComment, sp, "comment does not end with a newline")
		lx.anomalyReported = true
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: token.Comment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	lx.cursor.Bump() // consume the newline
	return tok, true
}
