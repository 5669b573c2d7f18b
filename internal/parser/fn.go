package parser

import (
	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/token"
)

// parseFnDecl — `fn name() -> int32;`: объявление без параметров и тела.
// Возвращаемый тип пока ограничен одним ключевым словом int32.
func (p *Parser) parseFnDecl() (ast.StmtID, error) {
	start := p.mark()
	fnTok := p.step() // fn

	identTok := p.tok()
	if identTok.Kind != token.Ident {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectIdentifier, identTok.Span,
			"Expected identifier, got %s", identTok)
	}
	p.step()

	if lp := p.tok(); lp.Kind != token.LParen {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectLParen, lp.Span,
			"Expected '(', got %s", lp)
	}
	p.step()

	if rp := p.tok(); rp.Kind != token.RParen {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectRParen, rp.Span,
			"Expected ')', got %s", rp)
	}
	p.step()

	if arrow := p.tok(); arrow.Kind != token.Arrow {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectArrow, arrow.Span,
			"Expected '->', got %s", arrow)
	}
	p.step()

	typeTok := p.tok()
	if typeTok.Kind != token.KwInt32 {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectType, typeTok.Span,
			"Expected 'int32', got %s", typeTok)
	}
	returnType := p.b.Types.New(p.b.Intern(typeTok.Text), typeTok.Span)
	p.step()

	semiTok := p.tok()
	if semiTok.Kind != token.Semicolon {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectSemicolon, semiTok.Span,
			"Expected semicolon at end of function declaration, got %s", semiTok)
	}
	p.step()

	return p.b.Stmts.NewFnDecl(
		p.b.Intern(identTok.Text),
		nil,
		returnType,
		identTok.Span,
		fnTok.Span.Cover(semiTok.Span),
	), nil
}
