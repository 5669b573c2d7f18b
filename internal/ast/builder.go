package ast

import (
	"mica/internal/source"
)

type Hints struct{ Programs, Stmts, Exprs, Types uint }

// Builder объединяет все арены одного разбора плюс интернер имён.
// Все узлы живут в Builder'е; ID валидны только внутри него.
type Builder struct {
	Programs *Programs
	Stmts    *Stmts
	Exprs    *Exprs
	Types    *Types
	Strings  *source.Interner
}

func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if hints.Programs == 0 {
		hints.Programs = 1 << 2
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 6
	}
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Programs: NewPrograms(hints.Programs),
		Stmts:    NewStmts(hints.Stmts),
		Exprs:    NewExprs(hints.Exprs),
		Types:    NewTypes(hints.Types),
		Strings:  interner,
	}
}

func (b *Builder) NewProgram(sp source.Span) ProgramID {
	return b.Programs.New(sp)
}

func (b *Builder) PushStmt(program ProgramID, stmt StmtID) {
	p := b.Programs.Get(program)
	p.Stmts = append(p.Stmts, stmt)
}

// Intern — шорткат для интернирования имён и текстов литералов.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}

// Name возвращает интернированную строку; паникует на неизвестном ID.
func (b *Builder) Name(id source.StringID) string {
	return b.Strings.MustLookup(id)
}
