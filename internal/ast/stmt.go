package ast

import (
	"mica/internal/source"
)

// StmtKind — закрытый набор вариантов statement.
// Каждый switch по нему обязан покрывать все три варианта.
type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtExpr
	StmtFnDecl
)

func (k StmtKind) String() string {
	switch k {
	case StmtLet:
		return "let"
	case StmtExpr:
		return "expression"
	case StmtFnDecl:
		return "fn-declaration"
	}
	return "stmt(?)"
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type Stmts struct {
	Arena     *Arena[Stmt]
	Lets      *Arena[LetStmt]
	ExprStmts *Arena[ExprStmt]
	FnDecls   *Arena[FnDeclStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Lets:      NewArena[LetStmt](capHint),
		ExprStmts: NewArena[ExprStmt](capHint),
		FnDecls:   NewArena[FnDeclStmt](capHint),
	}
}

func (s *Stmts) New(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// ExprStmt — statement-обёртка вокруг одного выражения.
type ExprStmt struct {
	Expr ExprID
}

func (s *Stmts) NewExprStmt(expr ExprID, span source.Span) StmtID {
	payload := PayloadID(s.ExprStmts.Allocate(ExprStmt{Expr: expr}))
	return s.New(StmtExpr, span, payload)
}

// ExprStmt возвращает payload statement'а-выражения.
func (s *Stmts) ExprStmt(id StmtID) (*ExprStmt, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.ExprStmts.Get(uint32(stmt.Payload)), true
}
