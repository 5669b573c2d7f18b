package diagfmt

import (
	"encoding/json"
	"io"

	"mica/internal/diag"
	"mica/internal/source"
)

type PositionJSON struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type NoteJSON struct {
	Span    source.Span   `json:"span"`
	Message string        `json:"message"`
	Start   *PositionJSON `json:"start,omitempty"`
}

type DiagnosticJSON struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Path     string        `json:"path,omitempty"`
	Span     source.Span   `json:"span"`
	Start    *PositionJSON `json:"start,omitempty"`
	End      *PositionJSON `json:"end,omitempty"`
	Notes    []NoteJSON    `json:"notes,omitempty"`
}

// JSON сериализует диагностики из bag в JSON-массив.
// Порядок совпадает с bag.Items() (ожидается bag.Sort() заранее).
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	output := make([]DiagnosticJSON, 0, len(items))
	for _, d := range items {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Span:     d.Primary,
		}
		if fs != nil && d.Primary.File != 0 {
			if file := fs.Get(d.Primary.File); file != nil {
				dj.Path = displayPath(fs, file, opts.PathMode)
				if opts.IncludePositions {
					start, end := fs.Resolve(d.Primary)
					dj.Start = &PositionJSON{Line: start.Line, Col: start.Col}
					dj.End = &PositionJSON{Line: end.Line, Col: end.Col}
				}
			}
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				nj := NoteJSON{Span: note.Span, Message: note.Msg}
				if fs != nil && opts.IncludePositions && note.Span.File != 0 {
					start, _ := fs.Resolve(note.Span)
					nj.Start = &PositionJSON{Line: start.Line, Col: start.Col}
				}
				dj.Notes = append(dj.Notes, nj)
			}
		}
		output = append(output, dj)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
