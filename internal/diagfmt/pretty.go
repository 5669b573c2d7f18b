package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mica/internal/diag"
	"mica/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		location(fs, d.Primary, opts.PathMode),
		severityLabel(d.Severity, opts.Color),
		d.Code.ID(),
		d.Message)
	writeContext(w, fs, d.Primary, opts)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		fmt.Fprintf(w, "  %s: note: %s\n", location(fs, note.Span, opts.PathMode), note.Msg)
		writeContext(w, fs, note.Span, opts)
	}
}

// writeContext печатает строку источника и подчёркивание ^~~~ под span'ом.
// Ширина подчёркивания считается в терминальных колонках, не в байтах.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if fs == nil || sp.File == 0 {
		return
	}
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" && sp.Empty() {
		return
	}

	if opts.Width > 0 && runewidth.StringWidth(line) > int(opts.Width) {
		line = runewidth.Truncate(line, int(opts.Width), "...")
	}
	fmt.Fprintf(w, "  %s\n", line)

	// До start.Col-1 байт строки занято текстом перед span'ом.
	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := runewidth.StringWidth(prefix)

	spanned := ""
	if start.Line == end.Line && int(start.Col-1) <= len(line) {
		to := int(end.Col - 1)
		if to > len(line) {
			to = len(line)
		}
		if to > int(start.Col-1) {
			spanned = line[start.Col-1 : to]
		}
	}
	width := runewidth.StringWidth(spanned)

	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", width-1)
	}
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if fs == nil || sp.File == 0 {
		return "<no-file>"
	}
	file := fs.Get(sp.File)
	if file == nil {
		return "<no-file>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", displayPath(fs, file, mode), start.Line, start.Col)
}

func severityLabel(sev diag.Severity, colorize bool) string {
	label := sev.String()
	if !colorize {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	case diag.SevInfo:
		return infoColor.Sprint(label)
	}
	return label
}
