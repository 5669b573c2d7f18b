package ast

import (
	"mica/internal/source"
)

// Program — упорядоченная последовательность statement'ов одного разбора.
// Заполняется append-only во время парсинга; после — неизменяемая.
type Program struct {
	Span  source.Span
	Stmts []StmtID
}

type Programs struct {
	Arena *Arena[Program]
}

func NewPrograms(capHint uint) *Programs {
	return &Programs{
		Arena: NewArena[Program](capHint),
	}
}

func (p *Programs) New(span source.Span) ProgramID {
	return ProgramID(p.Arena.Allocate(Program{
		Span: span,
	}))
}

func (p *Programs) Get(id ProgramID) *Program {
	return p.Arena.Get(uint32(id))
}
