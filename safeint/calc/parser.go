package calc

import (
	"fmt"

	"github.com/cobalamin/safe-int/safeint"
)

// maxDepth bounds nesting: open parentheses plus pending unary minus and
// exponent operands. Deeper input is a syntax error.
const maxDepth = 1024

// Op identifies an evaluation step.
type Op string

const (
	OpAdd      Op = "+"
	OpSub      Op = "-"
	OpMul      Op = "*"
	OpDiv      Op = "//"
	OpMod      Op = "%"
	OpPow      Op = "^"
	OpNegate   Op = "neg"
	OpLiteral  Op = "literal"
	OpVariable Op = "variable"
)

var binaryOpsByToken = map[tokenKind]Op{
	tokPlus:     OpAdd,
	tokMinus:    OpSub,
	tokStar:     OpMul,
	tokFloorDiv: OpDiv,
	tokPercent:  OpMod,
	tokCaret:    OpPow,
}

type node interface {
	eval(s *evalState) (safeint.SafeInt, error)
}

type literalNode struct {
	text  string
	pos   int
	value safeint.SafeInt
}

type variableNode struct {
	name string
	pos  int
}

type negateNode struct {
	x   node
	pos int
}

type binaryNode struct {
	op   Op
	x, y node
	pos  int
}

// Expr is a parsed expression. It is immutable and may be evaluated any
// number of times, concurrently.
type Expr struct {
	source string
	root   node
}

// Source returns the text the expression was parsed from.
func (e *Expr) Source() string {
	return e.source
}

// Parse parses src. Failures are *SyntaxError values wrapping ErrSyntax.
func Parse(src string) (*Expr, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &SyntaxError{Pos: tok.pos, Msg: "unexpected " + tok.describe()}
	}

	return &Expr{source: src, root: root}, nil
}

type parser struct {
	tokens []token
	next   int
	depth  int
}

func (p *parser) peek() token {
	return p.tokens[p.next]
}

func (p *parser) advance() token {
	tok := p.tokens[p.next]
	if tok.kind != tokEOF {
		p.next++
	}

	return tok
}

// nested parses one level deeper, opened by the token at pos.
func (p *parser) nested(pos int, parse func() (node, error)) (node, error) {
	if p.depth == maxDepth {
		return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("expression nested deeper than %d levels", maxDepth)}
	}

	p.depth++
	defer func() { p.depth-- }()

	return parse()
}

// expr := term (("+" | "-") term)*
func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.kind != tokPlus && tok.kind != tokMinus {
			return left, nil
		}

		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &binaryNode{op: binaryOpsByToken[tok.kind], x: left, y: right, pos: tok.pos}
	}
}

// term := unary (("*" | "//" | "%") unary)*
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.kind != tokStar && tok.kind != tokFloorDiv && tok.kind != tokPercent {
			return left, nil
		}

		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &binaryNode{op: binaryOpsByToken[tok.kind], x: left, y: right, pos: tok.pos}
	}
}

// unary := "-" unary | power
func (p *parser) parseUnary() (node, error) {
	if tok := p.peek(); tok.kind == tokMinus {
		p.advance()

		x, err := p.nested(tok.pos, p.parseUnary)
		if err != nil {
			return nil, err
		}

		return &negateNode{x: x, pos: tok.pos}, nil
	}

	return p.parsePower()
}

// power := primary ("^" unary)?
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.kind != tokCaret {
		return base, nil
	}

	p.advance()

	exp, err := p.nested(tok.pos, p.parseUnary)
	if err != nil {
		return nil, err
	}

	return &binaryNode{op: OpPow, x: base, y: exp, pos: tok.pos}, nil
}

// primary := INT | IDENT | "(" expr ")"
func (p *parser) parsePrimary() (node, error) {
	tok := p.advance()

	switch tok.kind {
	case tokInt:
		return &literalNode{text: tok.text, pos: tok.pos, value: safeint.Parse(tok.text)}, nil
	case tokIdent:
		return &variableNode{name: tok.text, pos: tok.pos}, nil
	case tokLParen:
		inner, err := p.nested(tok.pos, p.parseExpr)
		if err != nil {
			return nil, err
		}

		if closing := p.advance(); closing.kind != tokRParen {
			return nil, &SyntaxError{
				Pos: closing.pos,
				Msg: fmt.Sprintf("expected ')' to close '(' at position %d, found %s", tok.pos, closing.describe()),
			}
		}

		return inner, nil
	default:
		return nil, &SyntaxError{
			Pos: tok.pos,
			Msg: "expected number, variable or '(', found " + tok.describe(),
		}
	}
}
