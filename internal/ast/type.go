package ast

import (
	"mica/internal/source"
)

// Type — аннотация типа в исходнике. Сегодня это единственное ключевое
// слово типа (int32 и другие размерные формы), поэтому узел хранит только
// интернированное имя и span.
type Type struct {
	Name source.StringID
	Span source.Span
}

type Types struct {
	Arena *Arena[Type]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Types{Arena: NewArena[Type](capHint)}
}

func (t *Types) New(name source.StringID, span source.Span) TypeID {
	return TypeID(t.Arena.Allocate(Type{Name: name, Span: span}))
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}
