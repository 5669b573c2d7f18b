package lexer

import (
	"unicode"
)

// ===== Классификаторы =====
//
// Лексер работает по байтам; байт >= 0x80 трактуется как кодовая точка
// Latin-1. Unicode-классов идентификаторов нет намеренно.

func isSpaceByte(b byte) bool {
	return unicode.IsSpace(rune(b))
}

func isAlphaByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isWordContinueByte(b byte) bool {
	return isAlphaByte(b) || isDec(b) || b == '_'
}
