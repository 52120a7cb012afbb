package diagfmt

import (
	"encoding/json"
	"io"

	"fjson/internal/diag"
	"fjson/internal/source"
)

type jsonNote struct {
	Path    string `json:"path"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Message string `json:"message"`
}

type jsonDiagnostic struct {
	Code     string     `json:"code"`
	Severity string     `json:"severity"`
	Path     string     `json:"path"`
	Line     uint32     `json:"line"`
	Col      uint32     `json:"col"`
	Offset   uint32     `json:"offset"`
	Message  string     `json:"message"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

// JSON writes diagnostics as a JSON array, one object per diagnostic, for
// editor and tooling integration.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		jd := jsonDiagnostic{
			Code:     d.Code.ID(),
			Severity: severityLabel(d.Severity),
			Path:     file.Path,
			Line:     start.Line,
			Col:      start.Col,
			Offset:   d.Primary.Start,
			Message:  d.Message,
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				nf := fs.Get(n.Span.File)
				ns, _ := fs.Resolve(n.Span)
				jd.Notes = append(jd.Notes, jsonNote{
					Path:    nf.Path,
					Line:    ns.Line,
					Col:     ns.Col,
					Message: n.Msg,
				})
			}
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
