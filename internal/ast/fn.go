package ast

import (
	"mica/internal/source"
)

// FnParam — параметр функции. Сегодня грамматика требует пустой список
// параметров, но узел уже готов к его появлению.
type FnParam struct {
	Name source.StringID
	Type TypeID
	Span source.Span
}

// FnDeclStmt — `fn name() -> type;`: объявление без тела.
type FnDeclStmt struct {
	Name       source.StringID
	Params     []FnParam // всегда пустой на сегодня
	ReturnType TypeID
	NameSpan   source.Span
	Span       source.Span
}

func (s *Stmts) NewFnDecl(
	name source.StringID,
	params []FnParam,
	returnType TypeID,
	nameSpan source.Span,
	span source.Span,
) StmtID {
	payload := PayloadID(s.FnDecls.Allocate(FnDeclStmt{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		NameSpan:   nameSpan,
		Span:       span,
	}))
	return s.New(StmtFnDecl, span, payload)
}

// FnDecl возвращает payload объявления функции.
func (s *Stmts) FnDecl(id StmtID) (*FnDeclStmt, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFnDecl {
		return nil, false
	}
	return s.FnDecls.Get(uint32(stmt.Payload)), true
}
