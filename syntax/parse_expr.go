package syntax

import (
	"slices"

	"propanec/common"
	"propanec/report"
)

func (p *Parser) parseExpr() common.AstExpr {
	p.enter()
	defer p.leave()

	return p.parseBinaryOp(0)
}

/* -------------------------------------------------------------------------- */

var tokKindToOpKind = map[TokenKind]common.AstOpKind{
	TOK_EQ_EQ:   common.AOP_EQ,
	TOK_BANG_EQ: common.AOP_NEQ,
	TOK_LT:      common.AOP_LT,
	TOK_LT_EQ:   common.AOP_LTEQ,
	TOK_GT:      common.AOP_GT,
	TOK_GT_EQ:   common.AOP_GTEQ,
	TOK_PLUS:    common.AOP_ADD,
	TOK_MINUS:   common.AOP_SUB,
	TOK_STAR:    common.AOP_MUL,
	TOK_FSLASH:  common.AOP_DIV,
}

// predTable lists the binary operators from loosest to tightest binding.
// Every level is left associative.
var predTable = [][]TokenKind{
	{TOK_EQ_EQ, TOK_BANG_EQ},
	{TOK_LT, TOK_LT_EQ, TOK_GT, TOK_GT_EQ},
	{TOK_PLUS, TOK_MINUS},
	{TOK_STAR, TOK_FSLASH},
}

func (p *Parser) parseBinaryOp(predLevel int) common.AstExpr {
	if predLevel == len(predTable) {
		return p.parseUnaryOp()
	}

	lhs := p.parseBinaryOp(predLevel + 1)

	for slices.Contains(predTable[predLevel], p.tok.Kind) {
		opKind := tokKindToOpKind[p.tok.Kind]
		p.next()

		rhs := p.parseBinaryOp(predLevel + 1)

		lhs = &common.AstBinaryOp{
			AstExprBase: common.AstExprBase{
				AstBase: common.AstBase{Span: report.SpanOver(lhs.GetSpan(), rhs.GetSpan())},
			},
			OpKind: opKind,
			Lhs:    lhs,
			Rhs:    rhs,
		}
	}

	return lhs
}

func (p *Parser) parseUnaryOp() common.AstExpr {
	var opKind common.AstOpKind

	switch p.tok.Kind {
	case TOK_MINUS:
		opKind = common.AOP_NEG
	case TOK_BANG:
		opKind = common.AOP_NOT
	default:
		return p.parseAtom()
	}

	startSpan := p.tok.Span
	p.next()

	p.enter()
	defer p.leave()

	operand := p.parseUnaryOp()

	return &common.AstUnaryOp{
		AstExprBase: common.AstExprBase{
			AstBase: common.AstBase{Span: report.SpanOver(startSpan, operand.GetSpan())},
		},
		OpKind:  opKind,
		Operand: operand,
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parseAtom() common.AstExpr {
	switch p.tok.Kind {
	case TOK_INTLIT, TOK_FLOATLIT, TOK_BOOLLIT, TOK_CHARLIT, TOK_STRLIT:
		return p.parseLiteral()
	case TOK_IDENT:
		identTok := p.tok
		p.next()

		return &common.AstIdent{
			AstExprBase: common.AstExprBase{
				AstBase: common.AstBase{Span: identTok.Span},
			},
			Name: identTok.Text(p.src),
		}
	case TOK_LPAREN:
		return p.parseGrouping()
	case TOK_LBRACE:
		return p.parseBlock()
	default:
		p.reject("expression")
		return nil
	}
}

func (p *Parser) parseGrouping() *common.AstGrouping {
	openSpan := p.wantAndGet(TOK_LPAREN).Span

	inner := p.parseExpr()

	if !p.has(TOK_RPAREN) {
		p.rejectDiag("`CloseParen`").WithSecondary(p.fileID, openSpan, "unclosed delimiter")
		report.Throw()
	}

	closeSpan := p.tok.Span
	p.next()

	return &common.AstGrouping{
		AstExprBase: common.AstExprBase{
			AstBase: common.AstBase{Span: report.SpanOver(openSpan, closeSpan)},
		},
		Inner: inner,
	}
}

// parseLiteral converts the current literal token. A literal that cannot be
// converted is reported but does not abandon the statement: the token
// boundaries are still sound, so parsing continues with a zero value.
func (p *Parser) parseLiteral() *common.AstLiteral {
	litTok := p.tok
	p.next()

	value, err := convertLiteral(litTok, litTok.Text(p.src))
	if err != nil {
		p.errorOn(litTok.Span, err.Error(), "invalid literal")
	}

	return &common.AstLiteral{
		AstExprBase: common.AstExprBase{
			AstBase: common.AstBase{Span: litTok.Span},
		},
		Value: value,
	}
}
