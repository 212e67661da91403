package syntax

import (
	"fmt"
	"io"

	"propanec/report"
)

type TokenKind uint8

const (
	TOK_WHITESPACE TokenKind = iota
	TOK_LINE_COMMENT
	TOK_BLOCK_COMMENT

	TOK_LET
	TOK_FUN
	TOK_IF
	TOK_ELSE
	TOK_FOR
	TOK_RETURN
	TOK_WHILE

	TOK_INTLIT
	TOK_FLOATLIT
	TOK_BOOLLIT
	TOK_CHARLIT
	TOK_STRLIT

	TOK_BANG_EQ
	TOK_EQ_EQ
	TOK_GT_EQ
	TOK_LT_EQ

	TOK_SEMICOLON
	TOK_COMMA
	TOK_DOT
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_ATSIGN
	TOK_POUND
	TOK_TILDE
	TOK_QUESTION
	TOK_COLON
	TOK_DOLLAR
	TOK_EQ
	TOK_BANG
	TOK_LT
	TOK_GT
	TOK_MINUS
	TOK_AMP
	TOK_PIPE
	TOK_PLUS
	TOK_STAR
	TOK_FSLASH
	TOK_CARRET
	TOK_PERCENT

	TOK_IDENT
	TOK_INVALID_IDENT
	TOK_UNKNOWN

	TOK_EOF
)

var tokKindNames = [...]string{
	TOK_WHITESPACE:    "Whitespace",
	TOK_LINE_COMMENT:  "LineComment",
	TOK_BLOCK_COMMENT: "BlockComment",

	TOK_LET:    "Let",
	TOK_FUN:    "Fun",
	TOK_IF:     "If",
	TOK_ELSE:   "Else",
	TOK_FOR:    "For",
	TOK_RETURN: "Return",
	TOK_WHILE:  "While",

	TOK_INTLIT:   "Int",
	TOK_FLOATLIT: "Float",
	TOK_BOOLLIT:  "Bool",
	TOK_CHARLIT:  "Char",
	TOK_STRLIT:   "Str",

	TOK_BANG_EQ: "BangEq",
	TOK_EQ_EQ:   "EqEq",
	TOK_GT_EQ:   "GtEq",
	TOK_LT_EQ:   "LtEq",

	TOK_SEMICOLON: "Semi",
	TOK_COMMA:     "Comma",
	TOK_DOT:       "Dot",
	TOK_LPAREN:    "OpenParen",
	TOK_RPAREN:    "CloseParen",
	TOK_LBRACE:    "OpenBrace",
	TOK_RBRACE:    "CloseBrace",
	TOK_LBRACKET:  "OpenBracket",
	TOK_RBRACKET:  "CloseBracket",
	TOK_ATSIGN:    "At",
	TOK_POUND:     "Pound",
	TOK_TILDE:     "Tilde",
	TOK_QUESTION:  "Question",
	TOK_COLON:     "Colon",
	TOK_DOLLAR:    "Dollar",
	TOK_EQ:        "Eq",
	TOK_BANG:      "Bang",
	TOK_LT:        "Lt",
	TOK_GT:        "Gt",
	TOK_MINUS:     "Minus",
	TOK_AMP:       "And",
	TOK_PIPE:      "Or",
	TOK_PLUS:      "Plus",
	TOK_STAR:      "Star",
	TOK_FSLASH:    "Slash",
	TOK_CARRET:    "Caret",
	TOK_PERCENT:   "Percent",

	TOK_IDENT:         "Ident",
	TOK_INVALID_IDENT: "InvalidIdent",
	TOK_UNKNOWN:       "Unknown",

	TOK_EOF: "Eof",
}

func (k TokenKind) String() string {
	if int(k) < len(tokKindNames) {
		return tokKindNames[k]
	}

	return fmt.Sprintf("TokenKind(%d)", k)
}

func (k TokenKind) IsTrivia() bool {
	return k <= TOK_BLOCK_COMMENT
}

func (k TokenKind) IsLiteral() bool {
	return TOK_INTLIT <= k && k <= TOK_STRLIT
}

// Token is a kind tagged with the byte span it covers. Literal payloads are
// read back from the source through the span.
type Token struct {
	Kind TokenKind
	Span report.Span

	// Unterminated marks char, string and block comment tokens that ran into
	// the end of input (or, for chars, the end of the line) before closing.
	Unterminated bool
}

func (tok Token) Text(src string) string {
	return src[tok.Span.Start:tok.Span.End]
}

func (tok Token) Dump(w io.Writer) {
	if tok.Unterminated {
		fmt.Fprintf(w, "Token(%s, [%d, %d), unterminated)\n", tok.Kind, tok.Span.Start, tok.Span.End)
	} else {
		fmt.Fprintf(w, "Token(%s, [%d, %d))\n", tok.Kind, tok.Span.Start, tok.Span.End)
	}
}
