package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"propanec/report"
	"propanec/syntax"
)

// recorder keeps everything reported to it.
type recorder struct {
	m      sync.Mutex
	diags  []*report.Diagnostic
	errors []error
}

func (r *recorder) ReportDiagnostic(d *report.Diagnostic) {
	r.m.Lock()
	defer r.m.Unlock()

	r.diags = append(r.diags, d)
}

func (r *recorder) ReportError(err error) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errors = append(r.errors, err)
}

func writeSource(t *testing.T, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func newTestCompiler(jobs int) (*Compiler, *recorder, *report.Files) {
	rec := &recorder{}
	table := report.NewFiles()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCompiler(rec, table, log, jobs), rec, table
}

/* -------------------------------------------------------------------------- */

func TestCompiler_CheckOK(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.pn", "let x = 1;")
	b := writeSource(t, dir, "b.pn", "return 2 * 3;")

	c, rec, _ := newTestCompiler(4)

	if !c.Check([]string{a, b}) {
		t.Fatalf("check failed: %v %v", rec.diags, rec.errors)
	}

	if len(c.mod.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(c.mod.Files))
	}
	for _, f := range c.mod.Files {
		if f.Program == nil || len(f.Program.Stmts) != 1 {
			t.Errorf("%s: program not stored", f.DisplayPath)
		}
	}
}

func TestCompiler_CheckErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.pn", "let x = 1;")
	bad := writeSource(t, dir, "bad.pn", "let main 3 + 3;\nlet = 1;")
	missing := filepath.Join(dir, "missing.pn")

	c, rec, table := newTestCompiler(2)

	if c.Check([]string{good, bad, missing}) {
		t.Fatalf("check passed")
	}

	if len(rec.errors) != 1 {
		t.Errorf("got %d plain errors, want 1: %v", len(rec.errors), rec.errors)
	}
	if len(rec.diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(rec.diags))
	}
	if c.ErrorCount() != 3 {
		t.Errorf("error count %d, want 3", c.ErrorCount())
	}

	l, _ := rec.diags[0].Primary()
	if name, _ := table.Name(l.File); name != filepath.Clean(bad) {
		t.Errorf("diagnostic attributed to %q, want %q", name, bad)
	}
}

func TestCompiler_ReportOrder(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for _, name := range []string{"a.pn", "b.pn", "c.pn", "d.pn", "e.pn", "f.pn"} {
		paths = append(paths, writeSource(t, dir, name, strings.Repeat("1 + ", 2000)+"1 )"))
	}

	c, rec, _ := newTestCompiler(3)
	c.Check(paths)

	if len(rec.diags) != len(paths) {
		t.Fatalf("got %d diagnostics, want %d", len(rec.diags), len(paths))
	}

	for i, d := range rec.diags {
		l, _ := d.Primary()
		if int(l.File) != i {
			t.Errorf("diagnostic %d belongs to file %d", i, l.File)
		}
	}
}

func TestCompiler_ParseFile(t *testing.T) {
	dir := t.TempDir()
	c, rec, _ := newTestCompiler(1)

	srcFile := c.ParseFile(writeSource(t, dir, "a.pn", "let x = (1);"))
	if srcFile == nil || srcFile.Program == nil {
		t.Fatalf("parse failed: %v", rec.diags)
	}

	if c.ParseFile(writeSource(t, dir, "b.pn", "let;")) != nil {
		t.Errorf("bad file returned a result")
	}
	if c.ErrorCount() != 1 {
		t.Errorf("error count %d, want 1", c.ErrorCount())
	}
}

func TestCompiler_Tokens(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.pn", "let x = 1; // c")
	c, _, _ := newTestCompiler(1)

	_, all := c.Tokens(path, true)
	_, filtered := c.Tokens(path, false)

	if len(all) != 11 {
		t.Errorf("got %d tokens, want 11", len(all))
	}
	if len(filtered) != 6 {
		t.Errorf("got %d filtered tokens, want 6", len(filtered))
	}
	for _, tok := range filtered {
		if tok.Kind.IsTrivia() {
			t.Errorf("trivia %s survived filtering", tok.Kind)
		}
	}

	if last := filtered[len(filtered)-1]; last.Kind != syntax.TOK_EOF {
		t.Errorf("last token %s, want Eof", last.Kind)
	}
}

/* -------------------------------------------------------------------------- */

// run executes the root command with fresh flag values.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PROPANE_CONFIG", "")

	cfgFile, colorMode, verbose = "", "", false
	parseFormat, tokensFormat, tokensAll = "text", "text", false

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(append([]string{}, args...))

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLI_Parse(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.pn", "let x = 1;")

	stdout, _, err := run(t, "parse", "--color", "never", path)
	if err != nil {
		t.Fatal(err)
	}

	want := "Program 0..10\n  Let x 0..10\n    Literal Int(1) 8..9\n"
	if stdout != want {
		t.Errorf("got:\n%s\nwant:\n%s", stdout, want)
	}

	stdout, _, err = run(t, "parse", "--color", "never", "-f", "yaml", path)
	if err != nil {
		t.Fatal(err)
	}

	for _, frag := range []string{"node: Program", "node: Let", "name: x", "span: [0, 10]"} {
		if !strings.Contains(stdout, frag) {
			t.Errorf("yaml output missing %q:\n%s", frag, stdout)
		}
	}
}

func TestCLI_Check(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.pn", "let x = 1;")
	bad := writeSource(t, dir, "bad.pn", "let main 3 + 3;")

	if _, _, err := run(t, "check", "--color", "never", good); err != nil {
		t.Fatalf("good file: %v", err)
	}

	_, stderr, err := run(t, "check", "--color", "never", good, bad)
	if err == nil || err.Error() != "aborting due to previous error" {
		t.Fatalf("got error %v", err)
	}

	for _, frag := range []string{
		"error: expected `Eq`, found `Int`",
		"--> " + filepath.Clean(bad) + ":1:10",
		"^ expected `Eq`",
	} {
		if !strings.Contains(stderr, frag) {
			t.Errorf("stderr missing %q:\n%s", frag, stderr)
		}
	}
}

func TestCLI_Tokens(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.pn", "let \"ab")

	stdout, _, err := run(t, "tokens", "--color", "never", "--all", path)
	if err != nil {
		t.Fatal(err)
	}

	want := "" +
		"0..3     Let          \"let\"\n" +
		"3..4     Whitespace   \" \"\n" +
		"4..7     Str          \"\\\"ab\" (unterminated)\n" +
		"7..7     Eof          \"\"\n"
	if stdout != want {
		t.Errorf("got:\n%s\nwant:\n%s", stdout, want)
	}

	stdout, _, err = run(t, "tokens", "--color", "never", "-f", "yaml", path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout, "unterminated: true") || strings.Contains(stdout, "Whitespace") {
		t.Errorf("unexpected yaml:\n%s", stdout)
	}
}

func TestCLI_BadFlags(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.pn", "1;")

	if _, _, err := run(t, "parse", "-f", "json", path); err == nil {
		t.Errorf("expected error for unknown format")
	}
	if _, _, err := run(t, "parse", "--color", "sometimes", path); err == nil {
		t.Errorf("expected error for unknown color mode")
	}
}

func TestCLI_Version(t *testing.T) {
	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(stdout, "propanec v"+Version+"\n") {
		t.Errorf("got:\n%s", stdout)
	}
}
