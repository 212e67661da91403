package syntax

import (
	"fmt"
	"sort"

	"propanec/common"
	"propanec/report"
)

// maxNesting bounds how deeply expressions may nest before the parser gives
// up on the statement.
const maxNesting = 1000

// Parser is a single forward cursor over a filtered token stream. A Parser
// is used for a single call to Parse and then discarded.
type Parser struct {
	fileID report.FileID
	src    string

	toks   []Token
	cursor int

	tok Token

	blockDepth int
	nesting    int

	diags report.Diagnostics
}

// Parse builds the program described by toks, which must come from Filter
// applied to Scan(src). On failure the returned error is a non-empty
// report.Diagnostics and the program is nil; the parser resynchronizes after
// each error so that a single pass reports every malformed statement.
func Parse(fileID report.FileID, src string, toks []Token) (*common.AstProgram, error) {
	p := &Parser{
		fileID: fileID,
		src:    src,
		toks:   toks,
	}

	return p.Parse()
}

// ParseSource scans, filters and parses src. Unterminated block comments,
// which the filter discards as trivia, are reported alongside parse errors.
func ParseSource(fileID report.FileID, src string) (*common.AstProgram, error) {
	toks := Scan(src)

	var diags report.Diagnostics
	for _, tok := range toks {
		if tok.Kind == TOK_BLOCK_COMMENT && tok.Unterminated {
			diags = append(diags, report.Errorf("unterminated block comment").
				WithPrimary(fileID, tok.Span, "comment runs to the end of the file"))
		}
	}

	prog, err := Parse(fileID, src, Filter(toks))
	if len(diags) == 0 {
		return prog, err
	}

	if err != nil {
		diags = append(diags, err.(report.Diagnostics)...)
		sortDiagnostics(diags)
	}

	return nil, diags
}

func (p *Parser) Parse() (*common.AstProgram, error) {
	p.load(0)

	var stmts []common.AstStmt
	for !p.has(TOK_EOF) {
		if stmt := p.parseStmtOrSync(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if len(p.diags) > 0 {
		return nil, p.diags
	}

	return &common.AstProgram{
		AstBase: common.AstBase{
			Span: report.Span{Start: 0, End: len(p.src)},
		},
		File:  p.fileID,
		Stmts: stmts,
	}, nil
}

/* -------------------------------------------------------------------------- */

// parseStmtOrSync parses one statement. If the statement is rejected, its
// diagnostic has already been recorded; the parser then skips to the next
// statement boundary and nil is returned.
func (p *Parser) parseStmtOrSync() (stmt common.AstStmt) {
	defer func() {
		if report.Caught(recover()) {
			stmt = nil
			p.sync()
		}
	}()

	return p.parseStmt()
}

// sync skips past the next `;` outside of any braces skipped along the way.
// It stops without consuming at the end of input and at a `}` closing the
// block currently being parsed.
func (p *Parser) sync() {
	depth := 0

	for {
		switch p.tok.Kind {
		case TOK_EOF:
			return
		case TOK_LBRACE:
			depth++
		case TOK_RBRACE:
			if depth == 0 {
				if p.blockDepth > 0 {
					return
				}
			} else {
				depth--
			}
		case TOK_SEMICOLON:
			if depth == 0 {
				p.next()
				return
			}
		}

		p.next()
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) enter() {
	p.nesting++

	if p.nesting > maxNesting {
		// The caller's deferred leave is not registered yet.
		p.nesting--

		p.error("expression nested too deeply", "nesting limit of %d reached here", maxNesting)
		report.Throw()
	}
}

func (p *Parser) leave() {
	p.nesting--
}

/* -------------------------------------------------------------------------- */

func (p *Parser) load(i int) {
	if i < len(p.toks) {
		p.cursor = i
		p.tok = p.toks[i]
	} else {
		p.cursor = len(p.toks)
		p.tok = Token{Kind: TOK_EOF, Span: report.Span{Start: len(p.src), End: len(p.src)}}
	}
}

func (p *Parser) next() {
	if p.tok.Kind == TOK_EOF {
		return
	}

	p.load(p.cursor + 1)
}

func (p *Parser) has(kind TokenKind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) want(kind TokenKind) {
	p.wantAndGet(kind)
}

func (p *Parser) wantAndGet(kind TokenKind) Token {
	if !p.has(kind) {
		p.reject(fmt.Sprintf("`%s`", kind))
	}

	tok := p.tok
	p.next()
	return tok
}

// reject records that the current token is not what was expected and
// abandons the current statement.
func (p *Parser) reject(expected string) {
	p.rejectDiag(expected)
	report.Throw()
}

func (p *Parser) rejectDiag(expected string) *report.Diagnostic {
	d := report.Errorf("expected %s, found `%s`", expected, p.tok.Kind)

	switch p.tok.Kind {
	case TOK_EOF:
		d.WithPrimary(p.fileID, p.tok.Span, "unexpected end of file")
	case TOK_UNKNOWN:
		d.WithPrimary(p.fileID, p.tok.Span, "unknown character %q", p.tok.Text(p.src))
	case TOK_INVALID_IDENT:
		d.WithPrimary(p.fileID, p.tok.Span, "invalid identifier").
			WithNote("identifiers may only contain letters, numbers and `_`")
	case TOK_FUN, TOK_IF, TOK_ELSE, TOK_FOR, TOK_WHILE:
		d.WithPrimary(p.fileID, p.tok.Span, "expected %s", expected).
			WithNote(fmt.Sprintf("`%s` is a reserved keyword", p.tok.Text(p.src)))
	default:
		d.WithPrimary(p.fileID, p.tok.Span, "expected %s", expected)
	}

	p.diags = append(p.diags, d)
	return d
}

func (p *Parser) error(msg, label string, a ...any) *report.Diagnostic {
	return p.errorOn(p.tok.Span, msg, label, a...)
}

func (p *Parser) errorOn(span report.Span, msg, label string, a ...any) *report.Diagnostic {
	d := report.Errorf("%s", msg).WithPrimary(p.fileID, span, label, a...)
	p.diags = append(p.diags, d)
	return d
}

/* -------------------------------------------------------------------------- */

func sortDiagnostics(diags report.Diagnostics) {
	start := func(d *report.Diagnostic) int {
		if l, ok := d.Primary(); ok {
			return l.Span.Start
		}
		return 0
	}

	sort.SliceStable(diags, func(i, j int) bool {
		return start(diags[i]) < start(diags[j])
	})
}
