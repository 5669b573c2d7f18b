package parser

import (
	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/source"
	"mica/internal/token"
)

// parseLetStmt — `let [mut] name: type = (int-lit | ident);`.
// Инициализатор намеренно не общее выражение, а ровно один операнд.
func (p *Parser) parseLetStmt() (ast.StmtID, error) {
	start := p.mark()
	letTok := p.step() // let

	isMut := false
	mutSpan := source.Span{}
	if p.at(token.KwMut) {
		mutTok := p.step()
		isMut = true
		mutSpan = mutTok.Span
	}

	identTok := p.tok()
	if identTok.Kind != token.Ident {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectIdentifier, identTok.Span,
			"Expected identifier, got %s", identTok)
	}
	p.step()

	if colonTok := p.tok(); colonTok.Kind != token.Colon {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectColon, colonTok.Span,
			"Expected colon, got %s", colonTok)
	}
	p.step()

	typeTok := p.tok()
	if typeTok.Kind != token.KwInt32 {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectType, typeTok.Span,
			"Expected type, got %s", typeTok)
	}
	typeID := p.b.Types.New(p.b.Intern(typeTok.Text), typeTok.Span)
	p.step()

	if eqTok := p.tok(); eqTok.Kind != token.Assign {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectEquals, eqTok.Span,
			"Expected equals, got %s", eqTok)
	}
	p.step()

	valueTok := p.tok()
	var value ast.ExprID
	switch valueTok.Kind {
	case token.IntLit:
		value = p.b.Exprs.NewIntLit(p.b.Intern(valueTok.Text), valueTok.Span)
	case token.Ident:
		value = p.b.Exprs.NewIdent(p.b.Intern(valueTok.Text), valueTok.Span)
	default:
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectExpression, valueTok.Span,
			"Expected integer literal or identifier, got %s", valueTok)
	}
	p.step()

	semiTok := p.tok()
	if semiTok.Kind != token.Semicolon {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectSemicolon, semiTok.Span,
			"Expected semicolon at end of statement, got %s", semiTok)
	}
	p.step()

	return p.b.Stmts.NewLet(
		p.b.Intern(identTok.Text),
		isMut,
		typeID,
		value,
		identTok.Span,
		mutSpan,
		letTok.Span.Cover(semiTok.Span),
	), nil
}
