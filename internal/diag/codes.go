package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические. Лексер тотален: эти коды всегда warning/info —
	// аномалия деградирует в Unknown токен, поток не прерывается.
	LexInfo               Code = 1000
	LexUnknownBytes       Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedComment Code = 1003

	// Парсерные. Первая же ошибка фатальна для всего разбора.
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynUnexpectedStatement Code = 2002
	SynExpectIdentifier    Code = 2003
	SynExpectColon         Code = 2004
	SynExpectType          Code = 2005
	SynExpectEquals        Code = 2006
	SynExpectExpression    Code = 2007
	SynExpectSemicolon     Code = 2008
	SynExpectLParen        Code = 2009
	SynExpectRParen        Code = 2010
	SynExpectArrow         Code = 2011
	SynExpectOperator      Code = 2012

	// Ввод-вывод: файл не загрузился, директория не прочиталась.
	IOInfo          Code = 3000
	IOLoadFileError Code = 3001
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	switch c {
	case LexInfo:
		return "lexical note"
	case LexUnknownBytes:
		return "unrecognized bytes"
	case LexUnterminatedString:
		return "unterminated string literal"
	case LexUnterminatedComment:
		return "unterminated comment"
	case SynInfo:
		return "syntax note"
	case SynUnexpectedToken:
		return "unexpected token"
	case SynUnexpectedStatement:
		return "unexpected statement"
	case SynExpectIdentifier:
		return "expected identifier"
	case SynExpectColon:
		return "expected colon"
	case SynExpectType:
		return "expected type"
	case SynExpectEquals:
		return "expected equals"
	case SynExpectExpression:
		return "expected expression"
	case SynExpectSemicolon:
		return "expected semicolon"
	case SynExpectLParen:
		return "expected '('"
	case SynExpectRParen:
		return "expected ')'"
	case SynExpectArrow:
		return "expected '->'"
	case SynExpectOperator:
		return "expected operator"
	case IOInfo:
		return "i/o note"
	case IOLoadFileError:
		return "failed to load file"
	}
	return "unknown error"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
