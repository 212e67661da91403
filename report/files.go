package report

import (
	"fmt"
	"sort"
)

// FileID identifies a file registered with a Files table. It is opaque to
// the syntax packages, which only copy it into labels.
type FileID int

type sourceFile struct {
	name       string
	text       string
	lineStarts []int
}

// Files maps file identities to their names and source text.
type Files struct {
	files []*sourceFile
}

func NewFiles() *Files {
	return &Files{}
}

func (fs *Files) Add(name, text string) FileID {
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	fs.files = append(fs.files, &sourceFile{name: name, text: text, lineStarts: lineStarts})
	return FileID(len(fs.files) - 1)
}

func (fs *Files) get(id FileID) (*sourceFile, error) {
	if int(id) < 0 || int(id) >= len(fs.files) {
		return nil, fmt.Errorf("unknown file id %d", id)
	}

	return fs.files[id], nil
}

func (fs *Files) Name(id FileID) (string, error) {
	f, err := fs.get(id)
	if err != nil {
		return "", err
	}

	return f.name, nil
}

func (fs *Files) Source(id FileID) (string, error) {
	f, err := fs.get(id)
	if err != nil {
		return "", err
	}

	return f.text, nil
}

// Location is a 1-based line and column; Col counts bytes.
type Location struct {
	Line, Col int
}

func (fs *Files) Location(id FileID, offset int) (Location, error) {
	f, err := fs.get(id)
	if err != nil {
		return Location{}, err
	}

	if offset < 0 || offset > len(f.text) {
		return Location{}, fmt.Errorf("offset %d out of range for %s", offset, f.name)
	}

	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1

	return Location{Line: line + 1, Col: offset - f.lineStarts[line] + 1}, nil
}

// Line returns the text of the 1-based line, without its terminator.
func (fs *Files) Line(id FileID, line int) (string, error) {
	f, err := fs.get(id)
	if err != nil {
		return "", err
	}

	if line < 1 || line > len(f.lineStarts) {
		return "", fmt.Errorf("line %d out of range for %s", line, f.name)
	}

	start := f.lineStarts[line-1]
	end := len(f.text)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line] - 1
	}

	if end > start && f.text[end-1] == '\r' {
		end--
	}

	return f.text[start:end], nil
}
