package parser

import (
	"fmt"

	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/source"
	"mica/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Error — первая встреченная синтаксическая ошибка. Разбор фатален:
// частичной программы при ошибке не бывает.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Parser — состояние разбора одной последовательности токенов.
type Parser struct {
	toks []token.Token
	pos  int
	b    *ast.Builder
	opts Options
}

// ParseProgram разбирает последовательность токенов в программу.
// Последовательность обязана заканчиваться ровно одним EOF-токеном;
// нарушение — ошибка программиста и паника.
// Whitespace-токены курсор пропускает сам, Comment-токены — нет.
func ParseProgram(b *ast.Builder, toks []token.Token, opts Options) (ast.ProgramID, error) {
	if len(toks) == 0 {
		panic("parser: empty token sequence")
	}
	if toks[len(toks)-1].Kind != token.EOF {
		panic("parser: token sequence must end with EOF")
	}
	p := Parser{
		toks: toks,
		b:    b,
		opts: opts,
	}
	p.skipTrivia()

	program := b.NewProgram(p.tok().Span)
	startSpan := p.tok().Span
	for !p.at(token.EOF) {
		stmt, err := p.parseStmt()
		if err != nil {
			return ast.NoProgramID, err
		}
		b.PushStmt(program, stmt)
	}
	b.Programs.Get(program).Span = startSpan.Cover(p.tok().Span)
	return program, nil
}

// parseStmt выбирает по первому токену единственное подходящее правило.
func (p *Parser) parseStmt() (ast.StmtID, error) {
	switch p.tok().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.Ident, token.IntLit:
		return p.parseBinaryExprStmt()
	case token.KwFn:
		return p.parseFnDecl()
	default:
		return ast.NoStmtID, p.errf(diag.SynUnexpectedStatement, p.tok().Span,
			"Failed to parse token %s", p.tok())
	}
}

// tok возвращает текущий токен; после конца — последний (EOF).
func (p *Parser) tok() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok().Kind == k
}

// step — съедает текущий токен и пропускает следующий за ним whitespace.
func (p *Parser) step() token.Token {
	tok := p.tok()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	p.skipTrivia()
	return tok
}

func (p *Parser) skipTrivia() {
	for p.tok().Kind == token.Whitespace && p.pos < len(p.toks)-1 {
		p.pos++
	}
}

// mark/reset — полный откат курсора вокруг попытки правила.
// Неудавшаяся попытка обязана быть наблюдаемым no-op.
func (p *Parser) mark() int {
	return p.pos
}

func (p *Parser) reset(mark int) {
	p.pos = mark
}

func (p *Parser) errf(code diag.Code, sp source.Span, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
	return &Error{Code: code, Span: sp, Msg: msg}
}
