package ast

import (
	"mica/internal/source"
)

// LetStmt — `let [mut] name: type = value;`.
// Инициализатор — ровно один идентификатор или целочисленный литерал,
// общих выражений грамматика здесь не допускает.
type LetStmt struct {
	Name     source.StringID
	IsMut    bool
	Type     TypeID
	Value    ExprID
	NameSpan source.Span
	MutSpan  source.Span // пустой, если mut нет
	Span     source.Span
}

func (s *Stmts) NewLet(
	name source.StringID,
	isMut bool,
	typeID TypeID,
	value ExprID,
	nameSpan source.Span,
	mutSpan source.Span,
	span source.Span,
) StmtID {
	payload := PayloadID(s.Lets.Allocate(LetStmt{
		Name:     name,
		IsMut:    isMut,
		Type:     typeID,
		Value:    value,
		NameSpan: nameSpan,
		MutSpan:  mutSpan,
		Span:     span,
	}))
	return s.New(StmtLet, span, payload)
}

// Let возвращает payload let-statement'а.
func (s *Stmts) Let(id StmtID) (*LetStmt, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}
