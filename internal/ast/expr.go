package ast

import (
	"mica/internal/source"
)

// ExprKind — закрытый набор вариантов выражений.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprIntLit
	ExprBinary
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "identifier"
	case ExprIntLit:
		return "integer-literal"
	case ExprBinary:
		return "binary-expression"
	}
	return "expr(?)"
}

// BinaryOp — оператор бинарного выражения.
type BinaryOp uint8

const (
	BinPlus BinaryOp = iota
	BinMinus
	BinStar
	BinSlash
)

func (op BinaryOp) String() string {
	switch op {
	case BinPlus:
		return "+"
	case BinMinus:
		return "-"
	case BinStar:
		return "*"
	case BinSlash:
		return "/"
	}
	return "?"
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// IdentExpr — выражение-идентификатор.
type IdentExpr struct {
	Name source.StringID
}

// IntLitExpr хранит текст литерала как он записан в источнике;
// числового значения фронтенд не вычисляет.
type IntLitExpr struct {
	Text source.StringID
}

// BinaryExpr — ровно одно применение оператора. Left и Right принадлежат
// исключительно этому узлу: ни разделения, ни циклов.
type BinaryExpr struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[IdentExpr]
	IntLits  *Arena[IntLitExpr]
	Binaries *Arena[BinaryExpr]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[IdentExpr](capHint),
		IntLits:  NewArena[IntLitExpr](capHint),
		Binaries: NewArena[BinaryExpr](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewIdent(name source.StringID, span source.Span) ExprID {
	payload := PayloadID(e.Idents.Allocate(IdentExpr{Name: name}))
	return e.new(ExprIdent, span, payload)
}

func (e *Exprs) NewIntLit(text source.StringID, span source.Span) ExprID {
	payload := PayloadID(e.IntLits.Allocate(IntLitExpr{Text: text}))
	return e.new(ExprIntLit, span, payload)
}

func (e *Exprs) NewBinary(op BinaryOp, left, right ExprID, span source.Span) ExprID {
	payload := PayloadID(e.Binaries.Allocate(BinaryExpr{Op: op, Left: left, Right: right}))
	return e.new(ExprBinary, span, payload)
}

// Ident возвращает payload выражения-идентификатора.
func (e *Exprs) Ident(id ExprID) (*IdentExpr, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// IntLit возвращает payload целочисленного литерала.
func (e *Exprs) IntLit(id ExprID) (*IntLitExpr, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIntLit {
		return nil, false
	}
	return e.IntLits.Get(uint32(expr.Payload)), true
}

// Binary возвращает payload бинарного выражения.
func (e *Exprs) Binary(id ExprID) (*BinaryExpr, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}
