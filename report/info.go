package report

import (
	"fmt"
	"io"
	"strings"
)

// Span is a half-open byte range [Start, End) into a source buffer.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

func SpanOver(start, end Span) Span {
	return Span{Start: start.Start, End: end.End}
}

/* -------------------------------------------------------------------------- */

type Severity uint8

const (
	SEV_ERROR Severity = iota
	SEV_WARNING
	SEV_NOTE
)

func (s Severity) String() string {
	switch s {
	case SEV_ERROR:
		return "error"
	case SEV_WARNING:
		return "warning"
	default:
		return "note"
	}
}

type LabelStyle uint8

const (
	LABEL_PRIMARY LabelStyle = iota
	LABEL_SECONDARY
)

type Label struct {
	Style   LabelStyle
	File    FileID
	Span    Span
	Message string
}

// Diagnostic is a renderable error record. The first primary label, if any,
// locates the diagnostic.
type Diagnostic struct {
	Severity Severity
	Message  string
	Labels   []Label
	Notes    []string
}

func Errorf(msg string, a ...any) *Diagnostic {
	return &Diagnostic{Severity: SEV_ERROR, Message: fmt.Sprintf(msg, a...)}
}

func (d *Diagnostic) WithPrimary(file FileID, span Span, msg string, a ...any) *Diagnostic {
	d.Labels = append(d.Labels, Label{Style: LABEL_PRIMARY, File: file, Span: span, Message: fmt.Sprintf(msg, a...)})
	return d
}

func (d *Diagnostic) WithSecondary(file FileID, span Span, msg string, a ...any) *Diagnostic {
	d.Labels = append(d.Labels, Label{Style: LABEL_SECONDARY, File: file, Span: span, Message: fmt.Sprintf(msg, a...)})
	return d
}

func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

func (d *Diagnostic) Primary() (Label, bool) {
	for _, l := range d.Labels {
		if l.Style == LABEL_PRIMARY {
			return l, true
		}
	}

	return Label{}, false
}

func (d *Diagnostic) Error() string {
	b := strings.Builder{}
	d.Dump(&b)
	return b.String()
}

// Dump writes a single-line form of the diagnostic without source context.
func (d *Diagnostic) Dump(w io.Writer) {
	if l, ok := d.Primary(); ok {
		fmt.Fprintf(w, "%s: [file %d] %s: %s", d.Severity, l.File, l.Span, d.Message)
	} else {
		fmt.Fprintf(w, "%s: %s", d.Severity, d.Message)
	}
}

/* -------------------------------------------------------------------------- */

// Diagnostics is an ordered, non-empty list of diagnostics returned as an
// error by a failed pass.
type Diagnostics []*Diagnostic

func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "no diagnostics"
	case 1:
		return ds[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", ds[0].Error(), len(ds)-1)
	}
}
