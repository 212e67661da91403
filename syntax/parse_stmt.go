package syntax

import (
	"propanec/common"
	"propanec/report"
)

func (p *Parser) parseStmt() common.AstStmt {
	switch p.tok.Kind {
	case TOK_LET:
		return p.parseLet()
	case TOK_RETURN:
		return p.parseReturn()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLet() *common.AstLet {
	startSpan := p.wantAndGet(TOK_LET).Span

	nameIdent := p.wantAndGet(TOK_IDENT)

	p.want(TOK_EQ)

	init := p.parseExpr()

	endSpan := p.wantAndGet(TOK_SEMICOLON).Span

	return &common.AstLet{
		AstStmtBase: common.AstStmtBase{
			AstBase: common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		},
		Symbol: &common.Symbol{
			Name:   nameIdent.Text(p.src),
			FileID: p.fileID,
			Span:   nameIdent.Span,
		},
		Initializer: init,
	}
}

func (p *Parser) parseReturn() *common.AstReturn {
	startSpan := p.wantAndGet(TOK_RETURN).Span

	value := p.parseExpr()

	endSpan := p.wantAndGet(TOK_SEMICOLON).Span

	return &common.AstReturn{
		AstStmtBase: common.AstStmtBase{
			AstBase: common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		},
		Value: value,
	}
}

func (p *Parser) parseExprStmt() *common.AstExprStmt {
	expr := p.parseExpr()

	endSpan := p.wantAndGet(TOK_SEMICOLON).Span

	return &common.AstExprStmt{
		AstStmtBase: common.AstStmtBase{
			AstBase: common.AstBase{Span: report.SpanOver(expr.GetSpan(), endSpan)},
		},
		Expr: expr,
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parseBlock() *common.AstBlock {
	openSpan := p.wantAndGet(TOK_LBRACE).Span

	p.blockDepth++
	defer func() { p.blockDepth-- }()

	var stmts []common.AstStmt
	for !p.has(TOK_RBRACE) && !p.has(TOK_EOF) {
		if stmt := p.parseStmtOrSync(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if !p.has(TOK_RBRACE) {
		p.rejectDiag("`CloseBrace`").WithSecondary(p.fileID, openSpan, "unclosed delimiter")
		report.Throw()
	}

	closeSpan := p.tok.Span
	p.next()

	return &common.AstBlock{
		AstExprBase: common.AstExprBase{
			AstBase: common.AstBase{Span: report.SpanOver(openSpan, closeSpan)},
		},
		Stmts: stmts,
	}
}
