package token

import (
	"fmt"

	"mica/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Offset returns the byte offset of the token's first byte.
func (t Token) Offset() uint32 { return t.Span.Start }

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwMut, KwFn,
		KwInt1, KwInt2, KwInt4, KwInt8, KwInt16, KwInt32, KwInt64,
		KwFloat16, KwBFloat16, KwFloat32, KwFloat64:
		return true
	default:
		return false
	}
}

// IsTypeKeyword reports whether the token names a sized numeric type.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case KwInt1, KwInt2, KwInt4, KwInt8, KwInt16, KwInt32, KwInt64,
		KwFloat16, KwBFloat16, KwFloat32, KwFloat64:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Assign, Colon, Semicolon, Plus, Minus, Star, Slash, Arrow,
		LParen, RParen, LBracket, RBracket, LBrace, RBrace:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("EOF at offset %d", t.Span.Start)
	}
	return fmt.Sprintf("%s(%q) at offset %d", t.Kind, t.Text, t.Span.Start)
}
