package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"mica/internal/ast"
	"mica/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed program:
// 1) program.Span is within file content bounds
// 2) every statement span is non-empty and fully contained in program.Span
// 3) program.Span covers the union of statement spans (if any exist)
func CheckSpanInvariants(b *ast.Builder, programID ast.ProgramID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	prog := b.Programs.Get(programID)
	if prog == nil {
		return fmt.Errorf("program node not found")
	}

	// 1) program span sanity
	if prog.Span.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", prog.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if prog.Span.End > lenContent {
		return fmt.Errorf("program span end beyond content: %d > %d", prog.Span.End, lenContent)
	}

	// 2) statement spans within program span; 3) program covers union
	var union source.Span
	var haveStmt bool
	for _, id := range prog.Stmts {
		stmt := b.Stmts.Get(id)
		if stmt == nil {
			return fmt.Errorf("nil statement for id=%d", id)
		}
		sp := stmt.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty statement span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("statement span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.Start < prog.Span.Start || sp.End > prog.Span.End {
			return fmt.Errorf("statement span %v is outside program span %v", sp, prog.Span)
		}
		if !haveStmt {
			union = sp
			haveStmt = true
		} else {
			union = union.Cover(sp)
		}
	}
	if haveStmt {
		if union.Start < prog.Span.Start || union.End > prog.Span.End {
			return fmt.Errorf("program span %v does not cover statement union %v", prog.Span, union)
		}
	}
	return nil
}
