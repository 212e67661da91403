package common

import (
	"propanec/report"
)

// Symbol is a name introduced by a binding, located at its defining
// identifier.
type Symbol struct {
	Name   string
	FileID report.FileID
	Span   report.Span
}
