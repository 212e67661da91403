package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestReporter(src string) (*DisplayReporter, *bytes.Buffer, FileID) {
	fs := NewFiles()
	id := fs.Add("main.pn", src)

	buf := &bytes.Buffer{}
	return NewDisplayReporter(buf, fs, LOG_LEVEL_ALL, COLOR_NEVER, 4), buf, id
}

func TestDisplay_PrimaryLabel(t *testing.T) {
	dr, buf, id := newTestReporter("let main 3 + 3;\n")

	dr.ReportDiagnostic(Errorf("expected `Eq`, found `Int`").
		WithPrimary(id, Span{9, 10}, "expected `Eq`"))

	want := "" +
		"error: expected `Eq`, found `Int`\n" +
		" --> main.pn:1:10\n" +
		"  |\n" +
		"1 | let main 3 + 3;\n" +
		"  |          ^ expected `Eq`\n" +
		"\n"

	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisplay_SecondaryAndNotes(t *testing.T) {
	dr, buf, id := newTestReporter("let x =\n  (1 + 2;\n")

	dr.ReportDiagnostic(Errorf("expected `CloseParen`, found `Semi`").
		WithPrimary(id, Span{16, 17}, "expected `CloseParen`").
		WithSecondary(id, Span{10, 11}, "unclosed delimiter").
		WithNote("a note"))

	want := "" +
		"error: expected `CloseParen`, found `Semi`\n" +
		" --> main.pn:2:9\n" +
		"  |\n" +
		"2 |   (1 + 2;\n" +
		"  |         ^ expected `CloseParen`\n" +
		"  |   - unclosed delimiter\n" +
		"  = note: a note\n" +
		"\n"

	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisplay_WideSpanAndTabs(t *testing.T) {
	dr, buf, id := newTestReporter("\tlet 日本 = 1;")

	dr.ReportDiagnostic(Errorf("bad name").WithPrimary(id, Span{5, 11}, ""))

	out := buf.String()
	if !strings.Contains(out, "1 |     let 日本 = 1;\n") {
		t.Errorf("tab not expanded:\n%s", out)
	}
	// One tab stop, "let ", then two double-width runes.
	if !strings.Contains(out, "  |         ^^^^\n") {
		t.Errorf("caret misplaced:\n%s", out)
	}
}

func TestDisplay_EofSpan(t *testing.T) {
	dr, buf, id := newTestReporter("let x = 1")

	dr.ReportDiagnostic(Errorf("expected `Semi`, found `Eof`").WithPrimary(id, Span{9, 9}, "unexpected end of file"))

	if !strings.Contains(buf.String(), "  |          ^ unexpected end of file\n") {
		t.Errorf("got:\n%s", buf.String())
	}
}

func TestDisplay_ReportError(t *testing.T) {
	dr, buf, id := newTestReporter("x")

	dr.ReportError(Diagnostics{
		Errorf("first").WithPrimary(id, Span{0, 1}, ""),
		Errorf("second").WithPrimary(id, Span{0, 1}, ""),
	})
	dr.ReportError(errors.New("plain failure"))

	out := buf.String()
	first, second := strings.Index(out, "error: first"), strings.Index(out, "error: second")
	if first < 0 || second < first {
		t.Errorf("diagnostics missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "error: plain failure\n") {
		t.Errorf("plain error missing:\n%s", out)
	}
}

func TestDisplay_UnknownFile(t *testing.T) {
	dr, buf, _ := newTestReporter("x")

	dr.ReportDiagnostic(Errorf("lost").WithPrimary(FileID(7), Span{0, 1}, ""))

	if !strings.Contains(buf.String(), "error: [file 7] 0..1: lost") {
		t.Errorf("got:\n%s", buf.String())
	}
}

func TestDisplay_Level(t *testing.T) {
	dr, buf, id := newTestReporter("x")
	dr.Level = LOG_LEVEL_SILENT

	dr.ReportDiagnostic(Errorf("hidden").WithPrimary(id, Span{0, 1}, ""))
	dr.ReportError(errors.New("hidden"))

	if buf.Len() != 0 {
		t.Errorf("silent reporter wrote:\n%s", buf.String())
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"\tab", 6},
		{"a\tb", 5},
		{"日本", 4},
	}

	for _, tt := range tests {
		if got := displayWidth(tt.s, 4); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}

	if got := expandTabs("a\tb", 4); got != "a   b" {
		t.Errorf("expandTabs = %q", got)
	}
}

func TestParseColorMode(t *testing.T) {
	for s, want := range map[string]ColorMode{"": COLOR_AUTO, "auto": COLOR_AUTO, "always": COLOR_ALWAYS, "never": COLOR_NEVER} {
		got, err := ParseColorMode(s)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q) = %v, %v", s, got, err)
		}
	}

	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}
