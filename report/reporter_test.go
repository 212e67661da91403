package report

import (
	"errors"
	"sync"
	"testing"
)

type countingReporter struct {
	diags, errors int
}

func (r *countingReporter) ReportDiagnostic(*Diagnostic) { r.diags++ }
func (r *countingReporter) ReportError(error) { r.errors++ }

func TestSession(t *testing.T) {
	rep := &countingReporter{}
	s := NewSession(rep)

	if !s.NoErrors() {
		t.Fatalf("new session has errors")
	}

	warning := &Diagnostic{Severity: SEV_WARNING, Message: "w"}
	s.Diagnostics(Diagnostics{Errorf("a"), warning, Errorf("b")})
	s.Error(errors.New("c"))

	if s.ErrorCount() != 3 {
		t.Errorf("error count %d, want 3", s.ErrorCount())
	}
	if rep.diags != 3 || rep.errors != 1 {
		t.Errorf("reporter saw %d diagnostics and %d errors", rep.diags, rep.errors)
	}
}

func TestSession_Concurrent(t *testing.T) {
	s := NewSession(&countingReporter{})

	wg := sync.WaitGroup{}
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Diagnostics(Diagnostics{Errorf("x"), Errorf("y")})
		}()
	}
	wg.Wait()

	if s.ErrorCount() != 100 {
		t.Errorf("error count %d, want 100", s.ErrorCount())
	}
}

func TestDiagnostics_Error(t *testing.T) {
	d := Errorf("expected %s", "`Semi`").WithPrimary(2, Span{4, 5}, "here")

	if got := d.Error(); got != "error: [file 2] 4..5: expected `Semi`" {
		t.Errorf("got %q", got)
	}

	ds := Diagnostics{d, Errorf("other")}
	if got := ds.Error(); got != "error: [file 2] 4..5: expected `Semi` (and 1 more)" {
		t.Errorf("got %q", got)
	}
}

func TestCaught(t *testing.T) {
	caught := func() (ok bool) {
		defer func() { ok = Caught(recover()) }()
		Throw()
		return false
	}()

	if !caught {
		t.Errorf("Throw was not caught")
	}

	defer func() {
		if x := recover(); x != "boom" {
			t.Errorf("foreign panic became %v", x)
		}
	}()

	func() {
		defer func() { Caught(recover()) }()
		panic("boom")
	}()
}
