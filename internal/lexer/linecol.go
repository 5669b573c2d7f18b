package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"mica/internal/token"
)

// Row возвращает 1-based номер строки токена: количество '\n' строго
// до его offset плюс один.
// Вызов для EOF токена или offset за пределами буфера — ошибка
// программиста, паника.
func (lx *Lexer) Row(tok token.Token) uint32 {
	lx.checkLookup(tok)
	row := uint32(1)
	for _, b := range lx.file.Content[:tok.Offset()] {
		if b == '\n' {
			row++
		}
	}
	return row
}

// Column возвращает 1-based номер колонки токена: количество байтов
// после ближайшего предыдущего '\n' (или начала входа) плюс один.
// Те же предусловия, что и у Row.
func (lx *Lexer) Column(tok token.Token) uint32 {
	lx.checkLookup(tok)
	col := uint32(1)
	for off := tok.Offset(); off > 0; off-- {
		if lx.file.Content[off-1] == '\n' {
			break
		}
		col++
	}
	return col
}

func (lx *Lexer) checkLookup(tok token.Token) {
	if tok.Kind == token.EOF {
		panic("row/column lookup on EOF token")
	}
	lenContent, err := safecast.Conv[uint32](len(lx.file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	if tok.Offset() > lenContent {
		panic(fmt.Errorf("row/column lookup outside source bounds: offset %d > %d", tok.Offset(), lenContent))
	}
}
