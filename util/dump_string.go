package util

import (
	"io"
	"strings"
)

// Dumper is implemented by values that can describe themselves for
// debugging output and golden tests.
type Dumper interface {
	Dump(w io.Writer)
}

func DumpString(d Dumper) string {
	var sb strings.Builder
	d.Dump(&sb)
	return sb.String()
}

// DumpAll concatenates the dumps of ds in order.
func DumpAll[D Dumper](ds []D) string {
	var sb strings.Builder
	for _, d := range ds {
		d.Dump(&sb)
	}
	return sb.String()
}
