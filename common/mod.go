package common

import (
	"path/filepath"

	"propanec/report"
)

type Module struct {
	Name  string
	Table *report.Files

	Files []*SourceFile
}

type SourceFile struct {
	ID     report.FileID
	Parent *Module

	AbsPath     string
	DisplayPath string
	Text        string

	Program *AstProgram
}

/* -------------------------------------------------------------------------- */

func NewModule(name string, table *report.Files) *Module {
	return &Module{
		Name:  name,
		Table: table,
	}
}

// AddSourceFile registers text read from srcPath with the module's file
// table. It is not safe for concurrent use.
func (m *Module) AddSourceFile(srcPath, text string) (*SourceFile, error) {
	absPath, err := filepath.Abs(srcPath)
	if err != nil {
		return nil, err
	}

	displayPath := filepath.Clean(srcPath)

	srcFile := &SourceFile{
		ID:     m.Table.Add(displayPath, text),
		Parent: m,

		AbsPath:     absPath,
		DisplayPath: displayPath,
		Text:        text,
	}

	m.Files = append(m.Files, srcFile)

	return srcFile, nil
}
