package calc

import (
	"fmt"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokInt
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokFloorDiv
	tokPercent
	tokCaret
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) describe() string {
	if t.kind == tokEOF {
		return "end of expression"
	}

	return fmt.Sprintf("%q", t.text)
}

// lex splits src into tokens, ending with a tokEOF.
func lex(src string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(src); {
		c := src[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c):
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}

			if i < len(src) && isIdentStart(src[i]) {
				return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected %q after number", src[i])}
			}

			tokens = append(tokens, token{kind: tokInt, text: src[start:i], pos: start})
		case isIdentStart(c):
			start := i
			for i < len(src) && (isIdentStart(src[i]) || isDigit(src[i])) {
				i++
			}

			tokens = append(tokens, token{kind: tokIdent, text: src[start:i], pos: start})
		case c == '/':
			if i+1 >= len(src) || src[i+1] != '/' {
				return nil, &SyntaxError{Pos: i, Msg: "unexpected '/', use '//' for division"}
			}

			tokens = append(tokens, token{kind: tokFloorDiv, text: "//", pos: i})
			i += 2
		default:
			kind, ok := singleCharTokens[c]
			if !ok {
				r, _ := utf8.DecodeRuneInString(src[i:])
				return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", r)}
			}

			tokens = append(tokens, token{kind: kind, text: string(c), pos: i})
			i++
		}
	}

	return append(tokens, token{kind: tokEOF, pos: len(src)}), nil
}

var singleCharTokens = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'%': tokPercent,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
