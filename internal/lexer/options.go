package lexer

import (
	"mica/internal/diag"
	"mica/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда аномалии не репортим (но продолжаем лексить)
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}
