package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type LogLevel uint8

const (
	LOG_LEVEL_SILENT LogLevel = iota
	LOG_LEVEL_ERROR
	LOG_LEVEL_WARN
	LOG_LEVEL_ALL
)

type ColorMode uint8

const (
	COLOR_AUTO ColorMode = iota
	COLOR_ALWAYS
	COLOR_NEVER
)

func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return COLOR_AUTO, nil
	case "always":
		return COLOR_ALWAYS, nil
	case "never":
		return COLOR_NEVER, nil
	default:
		return COLOR_AUTO, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

const defaultTabWidth = 4

// DisplayReporter renders diagnostics as annotated source excerpts.
type DisplayReporter struct {
	Out      io.Writer
	Level    LogLevel
	Files    *Files
	TabWidth int

	styles *styles
}

func NewDisplayReporter(out io.Writer, files *Files, level LogLevel, color ColorMode, tabWidth int) *DisplayReporter {
	r := lipgloss.NewRenderer(out)

	switch color {
	case COLOR_ALWAYS:
		r.SetColorProfile(termenv.ANSI256)
	case COLOR_NEVER:
		r.SetColorProfile(termenv.Ascii)
	default:
		if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			r.SetColorProfile(termenv.ANSI256)
		} else {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}

	return &DisplayReporter{
		Out:      out,
		Level:    level,
		Files:    files,
		TabWidth: tabWidth,
		styles:   newStyles(r),
	}
}

func (dr *DisplayReporter) ReportError(err error) {
	var diags Diagnostics
	var diag *Diagnostic

	switch {
	case errors.As(err, &diags):
		for _, d := range diags {
			dr.ReportDiagnostic(d)
		}
	case errors.As(err, &diag):
		dr.ReportDiagnostic(diag)
	default:
		if dr.Level < LOG_LEVEL_ERROR {
			return
		}

		fmt.Fprintf(dr.Out, "%s %v\n\n", dr.styles.primary(SEV_ERROR).Render("error:"), err)
	}
}

func (dr *DisplayReporter) ReportDiagnostic(d *Diagnostic) {
	if !dr.enabled(d.Severity) {
		return
	}

	fmt.Fprintf(
		dr.Out, "%s %s\n",
		dr.styles.primary(d.Severity).Render(d.Severity.String()+":"),
		dr.styles.message.Render(d.Message),
	)

	if err := dr.renderLabels(d); err != nil {
		// The file table does not know this diagnostic; fall back to offsets.
		fmt.Fprint(dr.Out, "  ")
		d.Dump(dr.Out)
		fmt.Fprintln(dr.Out)
	}

	fmt.Fprintln(dr.Out)
}

func (dr *DisplayReporter) enabled(sev Severity) bool {
	switch sev {
	case SEV_ERROR:
		return dr.Level >= LOG_LEVEL_ERROR
	case SEV_WARNING:
		return dr.Level >= LOG_LEVEL_WARN
	default:
		return dr.Level >= LOG_LEVEL_ALL
	}
}

/* -------------------------------------------------------------------------- */

type labelLine struct {
	label    Label
	loc      Location
	text     string
	startCol int
	endCol   int
}

func (dr *DisplayReporter) renderLabels(d *Diagnostic) error {
	if len(d.Labels) == 0 {
		for _, note := range d.Notes {
			fmt.Fprintf(dr.Out, "  = note: %s\n", note)
		}
		return nil
	}

	if dr.Files == nil {
		return errors.New("no file table")
	}

	lines := make([]labelLine, 0, len(d.Labels))
	for _, l := range d.Labels {
		ll, err := dr.resolve(l)
		if err != nil {
			return err
		}

		lines = append(lines, ll)
	}

	primary, ok := d.Primary()
	if !ok {
		primary = d.Labels[0]
	}

	name, err := dr.Files.Name(primary.File)
	if err != nil {
		return err
	}

	loc, err := dr.Files.Location(primary.File, primary.Span.Start)
	if err != nil {
		return err
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].label.File != lines[j].label.File {
			return lines[i].label.File < lines[j].label.File
		}
		return lines[i].loc.Line < lines[j].loc.Line
	})

	gutterWidth := 0
	for _, ll := range lines {
		gutterWidth = max(gutterWidth, len(strconv.Itoa(ll.loc.Line)))
	}

	pad := strings.Repeat(" ", gutterWidth)
	bar := dr.styles.gutter.Render("|")

	fmt.Fprintf(dr.Out, "%s%s %s:%d:%d\n", pad, dr.styles.gutter.Render("-->"), name, loc.Line, loc.Col)
	fmt.Fprintf(dr.Out, "%s %s\n", pad, bar)

	prevLine := -1
	for _, ll := range lines {
		if ll.loc.Line != prevLine {
			num := fmt.Sprintf("%*d", gutterWidth, ll.loc.Line)
			fmt.Fprintf(dr.Out, "%s %s %s\n", dr.styles.gutter.Render(num), bar, expandTabs(ll.text, dr.TabWidth))
			prevLine = ll.loc.Line
		}

		marker, style := "^", dr.styles.primary(d.Severity)
		if ll.label.Style == LABEL_SECONDARY {
			marker, style = "-", dr.styles.secondary
		}

		underline := strings.Repeat(" ", ll.startCol) + strings.Repeat(marker, max(ll.endCol-ll.startCol, 1))
		if ll.label.Message != "" {
			underline += " " + ll.label.Message
		}

		fmt.Fprintf(dr.Out, "%s %s %s\n", pad, bar, style.Render(underline))
	}

	for _, note := range d.Notes {
		fmt.Fprintf(dr.Out, "%s %s note: %s\n", pad, dr.styles.gutter.Render("="), note)
	}

	return nil
}

// resolve locates the label's line and converts its byte range on that line
// into display columns. Spans running past the line are clipped to it.
func (dr *DisplayReporter) resolve(l Label) (labelLine, error) {
	loc, err := dr.Files.Location(l.File, l.Span.Start)
	if err != nil {
		return labelLine{}, err
	}

	text, err := dr.Files.Line(l.File, loc.Line)
	if err != nil {
		return labelLine{}, err
	}

	startByte := min(loc.Col-1, len(text))
	endByte := min(startByte+max(l.Span.Len(), 0), len(text))

	startCol := displayWidth(text[:startByte], dr.TabWidth)
	endCol := displayWidth(text[:endByte], dr.TabWidth)

	return labelLine{label: l, loc: loc, text: text, startCol: startCol, endCol: endCol}, nil
}

/* -------------------------------------------------------------------------- */

func displayWidth(s string, tabWidth int) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += tabWidth - w%tabWidth
		} else {
			w += runewidth.RuneWidth(r)
		}
	}

	return w
}

func expandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	b := strings.Builder{}
	w := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - w%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			w += n
		} else {
			b.WriteRune(r)
			w += runewidth.RuneWidth(r)
		}
	}

	return b.String()
}
