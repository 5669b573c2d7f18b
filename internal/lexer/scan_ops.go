package lexer

import (
	"mica/internal/token"
)

// scanOperatorOrPunct распознаёт односимвольную пунктуацию и '->'.
// Жадность: сперва двухсимвольная стрелка, затем одиночный '-'.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, bool) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}, true
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '-' && b1 == '>' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		return emit(token.Arrow)
	}

	var kind token.Kind
	switch lx.cursor.Peek() {
	case '=':
		kind = token.Assign
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	default:
		return token.Token{}, false
	}
	lx.cursor.Bump()
	return emit(kind)
}
