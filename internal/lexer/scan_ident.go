package lexer

import (
	"mica/internal/token"
)

// scanIdentOrKeyword сканирует слово и проверяет через LookupKeyword.
// Один максимальный проход: буква, дальше буквы/цифры/подчёркивания,
// затем поиск в таблице ключевых слов; промах — обычный Ident.
// Так "int32x" и "int3" — идентификаторы, "int32" — ключевое слово,
// и правила классификации не могут разъехаться между двумя сканерами.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, bool) {
	if !isAlphaByte(lx.cursor.Peek()) {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isWordContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// Проверка на ключевое слово (регистрозависимо)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}, true
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}, true
}
