package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"mica/internal/ast"
	"mica/internal/source"
)

// FormatASTPretty печатает программу деревом с отступами.
func FormatASTPretty(w io.Writer, b *ast.Builder, progID ast.ProgramID, fs *source.FileSet) error {
	prog := b.Programs.Get(progID)
	if prog == nil {
		return fmt.Errorf("program %d not found", progID)
	}
	fmt.Fprintf(w, "Program %s (%d statements)\n", spanLabel(fs, prog.Span), len(prog.Stmts))
	for _, id := range prog.Stmts {
		if err := writeStmtPretty(w, b, id, fs); err != nil {
			return err
		}
	}
	return nil
}

func writeStmtPretty(w io.Writer, b *ast.Builder, id ast.StmtID, fs *source.FileSet) error {
	stmt := b.Stmts.Get(id)
	if stmt == nil {
		return fmt.Errorf("statement %d not found", id)
	}
	switch stmt.Kind {
	case ast.StmtLet:
		let, _ := b.Stmts.Let(id)
		mut := ""
		if let.IsMut {
			mut = "mut "
		}
		fmt.Fprintf(w, "  Let %s%s: %s %s\n",
			mut, b.Name(let.Name), typeName(b, let.Type), spanLabel(fs, stmt.Span))
		writeExprPretty(w, b, let.Value, fs, 2)
	case ast.StmtExpr:
		es, _ := b.Stmts.ExprStmt(id)
		fmt.Fprintf(w, "  ExpressionStatement %s\n", spanLabel(fs, stmt.Span))
		writeExprPretty(w, b, es.Expr, fs, 2)
	case ast.StmtFnDecl:
		fn, _ := b.Stmts.FnDecl(id)
		fmt.Fprintf(w, "  FunctionDeclaration %s() -> %s %s\n",
			b.Name(fn.Name), typeName(b, fn.ReturnType), spanLabel(fs, stmt.Span))
	default:
		return fmt.Errorf("unhandled statement kind %s", stmt.Kind)
	}
	return nil
}

func writeExprPretty(w io.Writer, b *ast.Builder, id ast.ExprID, fs *source.FileSet, depth int) {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch expr.Kind {
	case ast.ExprIdent:
		ident, _ := b.Exprs.Ident(id)
		fmt.Fprintf(w, "%sIdentifier %q %s\n", indent, b.Name(ident.Name), spanLabel(fs, expr.Span))
	case ast.ExprIntLit:
		lit, _ := b.Exprs.IntLit(id)
		fmt.Fprintf(w, "%sIntegerLiteral %q %s\n", indent, b.Name(lit.Text), spanLabel(fs, expr.Span))
	case ast.ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		fmt.Fprintf(w, "%sBinaryExpression %q %s\n", indent, bin.Op.String(), spanLabel(fs, expr.Span))
		writeExprPretty(w, b, bin.Left, fs, depth+1)
		writeExprPretty(w, b, bin.Right, fs, depth+1)
	}
}

func spanLabel(fs *source.FileSet, sp source.Span) string {
	if fs == nil || sp.File == 0 {
		return sp.String()
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func typeName(b *ast.Builder, id ast.TypeID) string {
	t := b.Types.Get(id)
	if t == nil {
		return "<none>"
	}
	return b.Name(t.Name)
}

type ExprJSON struct {
	Kind  string      `json:"kind"`
	Name  string      `json:"name,omitempty"`
	Text  string      `json:"text,omitempty"`
	Op    string      `json:"op,omitempty"`
	Left  *ExprJSON   `json:"left,omitempty"`
	Right *ExprJSON   `json:"right,omitempty"`
	Span  source.Span `json:"span"`
}

type StmtJSON struct {
	Kind       string      `json:"kind"`
	Name       string      `json:"name,omitempty"`
	Mutable    bool        `json:"mutable,omitempty"`
	Type       string      `json:"type,omitempty"`
	Value      *ExprJSON   `json:"value,omitempty"`
	Expr       *ExprJSON   `json:"expr,omitempty"`
	ReturnType string      `json:"returnType,omitempty"`
	Span       source.Span `json:"span"`
}

type ProgramJSON struct {
	Span  source.Span `json:"span"`
	Stmts []StmtJSON  `json:"statements"`
}

// FormatASTJSON сериализует программу в JSON.
func FormatASTJSON(w io.Writer, b *ast.Builder, progID ast.ProgramID) error {
	prog := b.Programs.Get(progID)
	if prog == nil {
		return fmt.Errorf("program %d not found", progID)
	}
	out := ProgramJSON{
		Span:  prog.Span,
		Stmts: make([]StmtJSON, 0, len(prog.Stmts)),
	}
	for _, id := range prog.Stmts {
		sj, err := stmtToJSON(b, id)
		if err != nil {
			return err
		}
		out.Stmts = append(out.Stmts, sj)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func stmtToJSON(b *ast.Builder, id ast.StmtID) (StmtJSON, error) {
	stmt := b.Stmts.Get(id)
	if stmt == nil {
		return StmtJSON{}, fmt.Errorf("statement %d not found", id)
	}
	switch stmt.Kind {
	case ast.StmtLet:
		let, _ := b.Stmts.Let(id)
		return StmtJSON{
			Kind:    "Let",
			Name:    b.Name(let.Name),
			Mutable: let.IsMut,
			Type:    typeName(b, let.Type),
			Value:   exprToJSON(b, let.Value),
			Span:    stmt.Span,
		}, nil
	case ast.StmtExpr:
		es, _ := b.Stmts.ExprStmt(id)
		return StmtJSON{
			Kind: "Expression",
			Expr: exprToJSON(b, es.Expr),
			Span: stmt.Span,
		}, nil
	case ast.StmtFnDecl:
		fn, _ := b.Stmts.FnDecl(id)
		return StmtJSON{
			Kind:       "FunctionDeclaration",
			Name:       b.Name(fn.Name),
			ReturnType: typeName(b, fn.ReturnType),
			Span:       stmt.Span,
		}, nil
	}
	return StmtJSON{}, fmt.Errorf("unhandled statement kind %s", stmt.Kind)
}

func exprToJSON(b *ast.Builder, id ast.ExprID) *ExprJSON {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return nil
	}
	switch expr.Kind {
	case ast.ExprIdent:
		ident, _ := b.Exprs.Ident(id)
		return &ExprJSON{Kind: "Identifier", Name: b.Name(ident.Name), Span: expr.Span}
	case ast.ExprIntLit:
		lit, _ := b.Exprs.IntLit(id)
		return &ExprJSON{Kind: "IntegerLiteral", Text: b.Name(lit.Text), Span: expr.Span}
	case ast.ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		return &ExprJSON{
			Kind:  "BinaryExpression",
			Op:    bin.Op.String(),
			Left:  exprToJSON(b, bin.Left),
			Right: exprToJSON(b, bin.Right),
			Span:  expr.Span,
		}
	}
	return nil
}
