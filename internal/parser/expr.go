package parser

import (
	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/token"
)

// parseBinaryExprStmt — `(ident | int-lit) op (ident | int-lit);`.
// Ровно одно применение оператора: ни приоритетов, ни цепочек, ни скобок.
func (p *Parser) parseBinaryExprStmt() (ast.StmtID, error) {
	start := p.mark()

	left, leftTok, err := p.parseOperand()
	if err != nil {
		p.reset(start)
		return ast.NoStmtID, err
	}

	opTok := p.tok()
	var op ast.BinaryOp
	switch opTok.Kind {
	case token.Plus:
		op = ast.BinPlus
	case token.Minus:
		op = ast.BinMinus
	case token.Star:
		op = ast.BinStar
	case token.Slash:
		op = ast.BinSlash
	default:
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectOperator, opTok.Span,
			"Expected '+', got %s", opTok)
	}
	p.step()

	right, rightTok, err := p.parseOperand()
	if err != nil {
		p.reset(start)
		return ast.NoStmtID, err
	}

	semiTok := p.tok()
	if semiTok.Kind != token.Semicolon {
		p.reset(start)
		return ast.NoStmtID, p.errf(diag.SynExpectSemicolon, semiTok.Span,
			"Expected semicolon at end of binary expression, got %s", semiTok)
	}
	p.step()

	bin := p.b.Exprs.NewBinary(op, left, right, leftTok.Span.Cover(rightTok.Span))
	return p.b.Stmts.NewExprStmt(bin, leftTok.Span.Cover(semiTok.Span)), nil
}

// parseOperand — один операнд бинарного выражения: идентификатор или
// целочисленный литерал. Курсор не откатывает, этим занимается вызывающий.
func (p *Parser) parseOperand() (ast.ExprID, token.Token, error) {
	tok := p.tok()
	switch tok.Kind {
	case token.Ident:
		p.step()
		return p.b.Exprs.NewIdent(p.b.Intern(tok.Text), tok.Span), tok, nil
	case token.IntLit:
		p.step()
		return p.b.Exprs.NewIntLit(p.b.Intern(tok.Text), tok.Span), tok, nil
	default:
		return ast.NoExprID, tok, p.errf(diag.SynExpectIdentifier, tok.Span,
			"Expected identifier, got %s", tok)
	}
}
