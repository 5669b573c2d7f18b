package lexer

import (
	"mica/internal/diag"
	"mica/internal/source"
	"mica/internal/token"
)

// Lexer выдаёт по одному токену за вызов Next. Лексер тотален:
// любой вход в итоге даёт ровно один EOF, ошибок не бывает —
// неразобранные байты деградируют в один Unknown токен до конца входа.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-элементный буфер для Peek
	// failed string/comment attempt already reported for the current
	// position; suppresses the generic Unknown report
	anomalyReported bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
// Порядок классификации (первое совпадение выигрывает): EOF, whitespace,
// комментарий, символ, слово (ключевое слово или идентификатор), строка,
// целое число; иначе — остаток входа одним Unknown токеном.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	if tok, ok := lx.scanWhitespace(); ok {
		return tok
	}
	if tok, ok := lx.scanComment(); ok {
		return tok
	}
	if tok, ok := lx.scanOperatorOrPunct(); ok {
		return tok
	}
	if tok, ok := lx.scanIdentOrKeyword(); ok {
		return tok
	}
	if tok, ok := lx.scanString(); ok {
		return tok
	}
	if tok, ok := lx.scanInteger(); ok {
		return tok
	}
	return lx.scanUnknown()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan возвращает пустой Span на текущей позиции курсора.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// scanUnknown поглощает остаток входа одним Unknown токеном.
// Сюда попадает всё, что не приняли остальные сканеры, включая
// незакрытые строки и комментарии без завершающего перевода строки.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if !lx.anomalyReported {
		lx.report(diag.LexUnknownBytes, sp, "unrecognized bytes")
	}
	lx.anomalyReported = false
	return token.Token{Kind: token.Unknown, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
