package cmd

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"propanec/common"
	"propanec/logs"
	"propanec/report"
	"propanec/syntax"
)

// Compiler drives the front end over a set of files and routes every
// diagnostic through a single session.
type Compiler struct {
	session *report.Session
	mod     *common.Module
	log     logs.Logger
	jobs    int
}

func NewCompiler(rep report.Reporter, table *report.Files, log logs.Logger, jobs int) *Compiler {
	return &Compiler{
		session: report.NewSession(rep),
		mod:     common.NewModule("main", table),
		log:     log,
		jobs:    max(jobs, 1),
	}
}

func (c *Compiler) ErrorCount() int {
	return c.session.ErrorCount()
}

// Check parses every file in paths. Files are parsed concurrently, but
// their diagnostics are reported in the order the paths were given. It
// returns whether no errors were reported.
func (c *Compiler) Check(paths []string) bool {
	srcFiles := c.loadFiles(paths)

	results := make([]error, len(srcFiles))
	sem := make(chan struct{}, c.jobs)
	wg := sync.WaitGroup{}

	for i, srcFile := range srcFiles {
		if srcFile == nil {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()

			results[i] = c.parse(srcFile)
		}()
	}

	wg.Wait()

	for _, err := range results {
		if err != nil {
			c.report(err)
		}
	}

	return c.session.NoErrors()
}

// ParseFile loads and parses a single file. Diagnostics are reported and
// nil is returned if the file does not parse.
func (c *Compiler) ParseFile(path string) *common.SourceFile {
	srcFile := c.loadFiles([]string{path})[0]
	if srcFile == nil {
		return nil
	}

	if err := c.parse(srcFile); err != nil {
		c.report(err)
		return nil
	}

	return srcFile
}

// Tokens loads a file and scans it. When all is false trivia is filtered out
// as the parser would see it.
func (c *Compiler) Tokens(path string, all bool) (*common.SourceFile, []syntax.Token) {
	srcFile := c.loadFiles([]string{path})[0]
	if srcFile == nil {
		return nil, nil
	}

	toks := syntax.Scan(srcFile.Text)
	if !all {
		toks = syntax.Filter(toks)
	}

	c.log.Debug("scanned", "file", srcFile.DisplayPath, "tokens", len(toks), "all", all)

	return srcFile, toks
}

/* -------------------------------------------------------------------------- */

func (c *Compiler) loadFiles(paths []string) []*common.SourceFile {
	srcFiles := make([]*common.SourceFile, len(paths))

	for i, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			c.session.Error(fmt.Errorf("read source file: %w", err))
			continue
		}

		srcFile, err := c.mod.AddSourceFile(path, string(text))
		if err != nil {
			c.session.Error(fmt.Errorf("register source file: %w", err))
			continue
		}

		srcFiles[i] = srcFile
	}

	return srcFiles
}

func (c *Compiler) parse(srcFile *common.SourceFile) error {
	start := time.Now()

	prog, err := syntax.ParseSource(srcFile.ID, srcFile.Text)
	if err != nil {
		c.log.Debug("parse failed", "file", srcFile.DisplayPath, "duration", time.Since(start))
		return err
	}

	srcFile.Program = prog
	c.log.Debug("parsed", "file", srcFile.DisplayPath, "stmts", len(prog.Stmts), "duration", time.Since(start))

	return nil
}

func (c *Compiler) report(err error) {
	var diags report.Diagnostics
	if errors.As(err, &diags) {
		c.session.Diagnostics(diags)
	} else {
		c.session.Error(err)
	}
}
