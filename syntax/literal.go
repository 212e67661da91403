package syntax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"propanec/common"
)

// convertLiteral reads the value of a literal token back out of its text.
func convertLiteral(tok Token, text string) (common.LitValue, error) {
	switch tok.Kind {
	case TOK_INTLIT:
		n, err := parseIntLit(text)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return common.IntValue(0), fmt.Errorf("integer literal `%s` does not fit in i32", text)
			}

			return common.IntValue(0), fmt.Errorf("invalid integer literal `%s`", text)
		}

		return common.IntValue(n), nil
	case TOK_FLOATLIT:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return common.FloatValue(0), fmt.Errorf("float literal `%s` is out of range for f32", text)
			}

			return common.FloatValue(0), fmt.Errorf("invalid float literal `%s`", text)
		}

		return common.FloatValue(float32(f)), nil
	case TOK_BOOLLIT:
		return common.BoolValue(text == "true"), nil
	case TOK_CHARLIT:
		if tok.Unterminated {
			return common.CharValue(0), errors.New("unterminated character literal")
		}

		body := text[1 : len(text)-1]
		if body == "" {
			return common.CharValue(0), errors.New("empty character literal")
		}

		r, rest, err := decodeChar(body)
		if err != nil {
			return common.CharValue(0), err
		}

		if rest != "" {
			return common.CharValue(0), errors.New("character literal may only contain one character")
		}

		return common.CharValue(r), nil
	case TOK_STRLIT:
		if tok.Unterminated {
			return common.StrValue(""), errors.New("unterminated string literal")
		}

		s, err := unescape(text[1 : len(text)-1])
		if err != nil {
			return common.StrValue(""), err
		}

		return common.StrValue(s), nil
	default:
		return common.LitValue{}, fmt.Errorf("`%s` is not a literal", tok.Kind)
	}
}

/* -------------------------------------------------------------------------- */

// parseIntLit accepts decimal literals and the 0x, 0o and 0b prefixed forms,
// with `_` between digits.
func parseIntLit(text string) (int32, error) {
	if len(text) > 1 && text[0] == '0' && strings.ContainsRune("xXoObB", rune(text[1])) {
		n, err := strconv.ParseInt(text, 0, 32)
		return int32(n), err
	}

	// Base 0 would read a leading zero as octal, so decimal separators are
	// checked and stripped here instead.
	if strings.HasSuffix(text, "_") || strings.Contains(text, "__") {
		return 0, strconv.ErrSyntax
	}

	n, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 10, 32)
	return int32(n), err
}

func unescape(body string) (string, error) {
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	b := strings.Builder{}
	for body != "" {
		r, rest, err := decodeChar(body)
		if err != nil {
			return "", err
		}

		b.WriteRune(r)
		body = rest
	}

	return b.String(), nil
}

// decodeChar decodes the first, possibly escaped, character of s.
func decodeChar(s string) (rune, string, error) {
	if s[0] != '\\' {
		r, size := utf8.DecodeRuneInString(s)
		return r, s[size:], nil
	}

	if len(s) < 2 {
		return 0, "", errors.New("expected escape code")
	}

	switch s[1] {
	case 'n':
		return '\n', s[2:], nil
	case 'r':
		return '\r', s[2:], nil
	case 't':
		return '\t', s[2:], nil
	case '0':
		return 0, s[2:], nil
	case '\\', '\'', '"':
		return rune(s[1]), s[2:], nil
	default:
		r, _ := utf8.DecodeRuneInString(s[1:])
		return 0, "", fmt.Errorf("invalid escape code `\\%c`", r)
	}
}
