package report

import "sync"

type Reporter interface {
	ReportDiagnostic(d *Diagnostic)
	ReportError(err error)
}

/* -------------------------------------------------------------------------- */

// Session counts what passes through a Reporter. It is safe for concurrent
// use.
type Session struct {
	rep Reporter

	m        sync.Mutex
	errCount int
}

func NewSession(rep Reporter) *Session {
	return &Session{rep: rep}
}

// Diagnostics reports every diagnostic in ds under a single lock so that
// the output of one file is never interleaved with another.
func (s *Session) Diagnostics(ds Diagnostics) {
	defer s.m.Unlock()
	s.m.Lock()

	for _, d := range ds {
		s.rep.ReportDiagnostic(d)

		if d.Severity == SEV_ERROR {
			s.errCount++
		}
	}
}

func (s *Session) Error(err error) {
	defer s.m.Unlock()
	s.m.Lock()

	s.rep.ReportError(err)

	s.errCount++
}

func (s *Session) ErrorCount() int {
	defer s.m.Unlock()
	s.m.Lock()

	return s.errCount
}

func (s *Session) NoErrors() bool {
	return s.ErrorCount() == 0
}
