package common

import (
	"fmt"
	"strconv"
)

type LitKind uint8

const (
	LIT_INT LitKind = iota
	LIT_FLOAT
	LIT_BOOL
	LIT_CHAR
	LIT_STR
)

var litKindNames = [...]string{
	LIT_INT:   "Int",
	LIT_FLOAT: "Float",
	LIT_BOOL:  "Bool",
	LIT_CHAR:  "Char",
	LIT_STR:   "Str",
}

func (k LitKind) String() string {
	return litKindNames[k]
}

// LitValue is a typed literal. Only the field selected by Kind is set.
type LitValue struct {
	Kind LitKind

	Int   int32
	Float float32
	Bool  bool
	Char  rune
	Str   string
}

func IntValue(n int32) LitValue     { return LitValue{Kind: LIT_INT, Int: n} }
func FloatValue(f float32) LitValue { return LitValue{Kind: LIT_FLOAT, Float: f} }
func BoolValue(b bool) LitValue     { return LitValue{Kind: LIT_BOOL, Bool: b} }
func CharValue(r rune) LitValue     { return LitValue{Kind: LIT_CHAR, Char: r} }
func StrValue(s string) LitValue    { return LitValue{Kind: LIT_STR, Str: s} }

// Text renders the payload alone, without the kind.
func (v LitValue) Text() string {
	switch v.Kind {
	case LIT_INT:
		return strconv.FormatInt(int64(v.Int), 10)
	case LIT_FLOAT:
		return strconv.FormatFloat(float64(v.Float), 'g', -1, 32)
	case LIT_BOOL:
		return strconv.FormatBool(v.Bool)
	case LIT_CHAR:
		return strconv.QuoteRune(v.Char)
	default:
		return strconv.Quote(v.Str)
	}
}

func (v LitValue) String() string {
	return fmt.Sprintf("%s(%s)", v.Kind, v.Text())
}
