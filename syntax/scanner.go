package syntax

import (
	"unicode"
	"unicode/utf8"

	"propanec/report"
)

// Scanner walks a source string one character at a time. A Scanner is used
// for a single call to Scan and then discarded.
type Scanner struct {
	src string

	// pos is the byte offset of the next unread character and start the
	// offset of the first character of the current token.
	pos, start int

	ahead rune
}

// Scan splits src into tokens. The spans of the returned tokens are ordered,
// never overlap and cover src exactly; the final token is always a single
// TOK_EOF at [len(src), len(src)). Scan never fails: malformed input is
// reported through TOK_UNKNOWN, TOK_INVALID_IDENT and unterminated literals.
func Scan(src string) []Token {
	s := &Scanner{src: src}

	var toks []Token
	for s.pos < len(s.src) {
		toks = append(toks, s.nextToken())
	}

	return append(toks, Token{Kind: TOK_EOF, Span: report.Span{Start: len(src), End: len(src)}})
}

func (s *Scanner) nextToken() Token {
	s.start = s.pos
	unterminated := false

	var kind TokenKind
	switch r := s.read(); {
	case isWhitespace(r):
		s.readWhile(isWhitespace)
		kind = TOK_WHITESPACE
	case r == '!':
		kind = s.readIfOr('=', TOK_BANG_EQ, TOK_BANG)
	case r == '=':
		kind = s.readIfOr('=', TOK_EQ_EQ, TOK_EQ)
	case r == '<':
		kind = s.readIfOr('=', TOK_LT_EQ, TOK_LT)
	case r == '>':
		kind = s.readIfOr('=', TOK_GT_EQ, TOK_GT)
	case r == '/':
		switch {
		case s.peekIs('/'):
			s.readWhile(func(r rune) bool { return r != '\n' })
			kind = TOK_LINE_COMMENT
		case s.peekIs('*'):
			s.read()
			unterminated = !s.skipBlockComment()
			kind = TOK_BLOCK_COMMENT
		default:
			kind = TOK_FSLASH
		}
	case '0' <= r && r <= '9':
		kind = s.lexNumberLit()
	case r == '"':
		unterminated = !s.lexQuoted('"', false)
		kind = TOK_STRLIT
	case r == '\'':
		unterminated = !s.lexQuoted('\'', true)
		kind = TOK_CHARLIT
	case isIdentStart(r):
		kind = s.lexIdentOrKeyword()
	default:
		if single, ok := singleKinds[r]; ok {
			kind = single
		} else {
			kind = TOK_UNKNOWN
		}
	}

	return Token{
		Kind:         kind,
		Span:         report.Span{Start: s.start, End: s.pos},
		Unterminated: unterminated,
	}
}

/* -------------------------------------------------------------------------- */

var singleKinds = map[rune]TokenKind{
	';': TOK_SEMICOLON,
	',': TOK_COMMA,
	'.': TOK_DOT,
	'(': TOK_LPAREN,
	')': TOK_RPAREN,
	'{': TOK_LBRACE,
	'}': TOK_RBRACE,
	'[': TOK_LBRACKET,
	']': TOK_RBRACKET,
	'@': TOK_ATSIGN,
	'#': TOK_POUND,
	'~': TOK_TILDE,
	'?': TOK_QUESTION,
	':': TOK_COLON,
	'$': TOK_DOLLAR,
	'-': TOK_MINUS,
	'&': TOK_AMP,
	'|': TOK_PIPE,
	'+': TOK_PLUS,
	'*': TOK_STAR,
	'^': TOK_CARRET,
	'%': TOK_PERCENT,
}

func (s *Scanner) readIfOr(next rune, is, or TokenKind) TokenKind {
	if s.peekIs(next) {
		s.read()
		return is
	}

	return or
}

/* -------------------------------------------------------------------------- */

// skipBlockComment consumes the remainder of a comment whose opening `/*`
// has been read. Comments nest; the depth is tracked with a counter so that
// deeply nested input cannot grow the stack.
func (s *Scanner) skipBlockComment() (terminated bool) {
	depth := 1

	for s.peek() {
		switch s.read() {
		case '/':
			if s.peekIs('*') {
				s.read()
				depth++
			}
		case '*':
			if s.peekIs('/') {
				s.read()
				depth--

				if depth == 0 {
					return true
				}
			}
		}
	}

	return false
}

/* -------------------------------------------------------------------------- */

// lexNumberLit consumes the rest of a numeral whose first digit has been
// read. A decimal point or an exponent makes it a float. Trailing identifier
// characters are kept as a suffix so that base prefixes (`0x1f`) and
// malformed literals (`12abc`) form one token; the parser decides validity.
func (s *Scanner) lexNumberLit() TokenKind {
	isFloat := false

	s.readWhile(isDigitOrSep)

	if s.peekIs('.') {
		s.read()
		isFloat = true

		s.readWhile(isDigitOrSep)
	}

	if s.peekIs('e') || s.peekIs('E') {
		s.read()
		isFloat = true

		if s.peekIs('+') || s.peekIs('-') {
			s.read()
		}

		s.readWhile(isDigitOrSep)
	}

	s.readWhile(isIdentContinue)

	if isFloat {
		return TOK_FLOATLIT
	}

	return TOK_INTLIT
}

// lexQuoted consumes a quoted literal whose opening quote has been read. A
// backslash escapes the character after it.
func (s *Scanner) lexQuoted(quote rune, stopAtNewline bool) (terminated bool) {
	for s.peek() {
		switch s.ahead {
		case quote:
			s.read()
			return true
		case '\\':
			s.read()

			if s.peek() && !(stopAtNewline && s.ahead == '\n') {
				s.read()
			}
		case '\n':
			if stopAtNewline {
				return false
			}

			s.read()
		default:
			s.read()
		}
	}

	return false
}

/* -------------------------------------------------------------------------- */

var keywordPatterns = map[string]TokenKind{
	"let":    TOK_LET,
	"fun":    TOK_FUN,
	"if":     TOK_IF,
	"else":   TOK_ELSE,
	"for":    TOK_FOR,
	"return": TOK_RETURN,
	"while":  TOK_WHILE,

	"true":  TOK_BOOLLIT,
	"false": TOK_BOOLLIT,
}

func (s *Scanner) lexIdentOrKeyword() TokenKind {
	invalid := false

	for s.peek() {
		if isIdentContinue(s.ahead) {
			s.read()
		} else if isInvalidIdentChar(s.ahead) {
			invalid = true
			s.read()
		} else {
			break
		}
	}

	if invalid {
		return TOK_INVALID_IDENT
	}

	if kind, ok := keywordPatterns[s.src[s.start:s.pos]]; ok {
		return kind
	}

	return TOK_IDENT
}

/* -------------------------------------------------------------------------- */

// peek loads the next character into s.ahead without consuming it.
func (s *Scanner) peek() bool {
	if s.pos >= len(s.src) {
		return false
	}

	s.ahead, _ = utf8.DecodeRuneInString(s.src[s.pos:])
	return true
}

func (s *Scanner) peekIs(r rune) bool {
	return s.peek() && s.ahead == r
}

// read consumes one character. Invalid UTF-8 is consumed one byte at a time
// and reads as utf8.RuneError.
func (s *Scanner) read() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	return r
}

func (s *Scanner) readWhile(pred func(rune) bool) {
	for s.peek() && pred(s.ahead) {
		s.read()
	}
}

/* -------------------------------------------------------------------------- */

// isWhitespace matches Pattern_White_Space, which is fixed across Unicode
// versions.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u0085',           // next line
		'\u200E', '\u200F', // left-to-right and right-to-left marks
		'\u2028', '\u2029': // line and paragraph separators
		return true
	default:
		return false
	}
}

// isAlphabetic matches the Unicode Alphabetic property: letters, letter
// numbers such as roman numerals, and the vowel signs of scripts like
// Devanagari.
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.Letter, unicode.Nl, unicode.Other_Alphabetic)
}

func isIdentStart(r rune) bool {
	return isAlphabetic(r) || r == '_'
}

func isIdentContinue(r rune) bool {
	return isAlphabetic(r) || unicode.IsNumber(r) || r == '_'
}

// isInvalidIdentChar matches characters that commonly appear glued to an
// identifier (emoji and their joiners) but may not be part of one.
func isInvalidIdentChar(r rune) bool {
	return unicode.Is(unicode.So, r) || r == '\u200D' || r == '\uFE0F'
}

func isDigitOrSep(r rune) bool {
	return '0' <= r && r <= '9' || r == '_'
}
