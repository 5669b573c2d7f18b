package testkit

import (
	"mica/internal/ast"
)

// ExprMatcher сопоставляет одно выражение с ожидаемой формой.
// Матчеры комбинируются: MatchBinary принимает матчеры операндов.
type ExprMatcher func(b *ast.Builder, id ast.ExprID) bool

// StmtMatcher сопоставляет один statement с ожидаемой формой.
type StmtMatcher func(b *ast.Builder, id ast.StmtID) bool

// MatchAnyExpr совпадает с любым существующим выражением.
func MatchAnyExpr() ExprMatcher {
	return func(b *ast.Builder, id ast.ExprID) bool {
		return b.Exprs.Get(id) != nil
	}
}

// MatchIdent совпадает с выражением-идентификатором с данным именем.
// Пустое имя совпадает с любым идентификатором.
func MatchIdent(name string) ExprMatcher {
	return func(b *ast.Builder, id ast.ExprID) bool {
		ident, ok := b.Exprs.Ident(id)
		if !ok {
			return false
		}
		return name == "" || b.Name(ident.Name) == name
	}
}

// MatchIntLit совпадает с целочисленным литералом с данным текстом.
// Пустой текст совпадает с любым литералом.
func MatchIntLit(text string) ExprMatcher {
	return func(b *ast.Builder, id ast.ExprID) bool {
		lit, ok := b.Exprs.IntLit(id)
		if !ok {
			return false
		}
		return text == "" || b.Name(lit.Text) == text
	}
}

// MatchBinary совпадает с бинарным выражением: оператор и оба операнда.
func MatchBinary(left ExprMatcher, op ast.BinaryOp, right ExprMatcher) ExprMatcher {
	return func(b *ast.Builder, id ast.ExprID) bool {
		bin, ok := b.Exprs.Binary(id)
		if !ok {
			return false
		}
		return bin.Op == op && left(b, bin.Left) && right(b, bin.Right)
	}
}

// MatchAnyBinary совпадает с любым бинарным выражением независимо от оператора.
func MatchAnyBinary() ExprMatcher {
	return func(b *ast.Builder, id ast.ExprID) bool {
		_, ok := b.Exprs.Binary(id)
		return ok
	}
}

func matchType(b *ast.Builder, id ast.TypeID, name string) bool {
	t := b.Types.Get(id)
	if t == nil {
		return false
	}
	return name == "" || b.Name(t.Name) == name
}

// MatchLet совпадает с let-statement'ом: имя, тип, инициализатор.
// typeName == "" совпадает с любым типом.
func MatchLet(name string, mutable bool, typeName string, value ExprMatcher) StmtMatcher {
	return func(b *ast.Builder, id ast.StmtID) bool {
		let, ok := b.Stmts.Let(id)
		if !ok {
			return false
		}
		if b.Name(let.Name) != name || let.IsMut != mutable {
			return false
		}
		return matchType(b, let.Type, typeName) && value(b, let.Value)
	}
}

// MatchExprStmt совпадает со statement'ом-выражением.
func MatchExprStmt(expr ExprMatcher) StmtMatcher {
	return func(b *ast.Builder, id ast.StmtID) bool {
		stmt, ok := b.Stmts.ExprStmt(id)
		if !ok {
			return false
		}
		return expr(b, stmt.Expr)
	}
}

// MatchFnDecl совпадает с объявлением функции: имя, пустые параметры,
// возвращаемый тип.
func MatchFnDecl(name string, returnType string) StmtMatcher {
	return func(b *ast.Builder, id ast.StmtID) bool {
		fn, ok := b.Stmts.FnDecl(id)
		if !ok {
			return false
		}
		if b.Name(fn.Name) != name || len(fn.Params) != 0 {
			return false
		}
		return matchType(b, fn.ReturnType, returnType)
	}
}
