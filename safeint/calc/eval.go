package calc

import (
	"fmt"

	"github.com/cobalamin/safe-int/safeint"
)

var binaryOps = map[Op]func(x, y safeint.SafeInt) safeint.SafeInt{
	OpAdd: safeint.Add,
	OpSub: safeint.Sub,
	OpMul: safeint.Mul,
	OpDiv: safeint.Div,
	OpMod: safeint.Mod,
	OpPow: safeint.Pow,
}

// evalState carries the variables and the first recorded cause of
// invalidity. Operands are evaluated left to right, so the recorded cause is
// the first failure in source order.
type evalState struct {
	vars  map[string]safeint.SafeInt
	cause *StepError
}

func (s *evalState) fail(err *StepError) {
	if s.cause == nil {
		s.cause = err
	}
}

// Eval evaluates the expression with vars. Arithmetic failures yield an
// Invalid result, not an error; the error is reserved for variables missing
// from vars.
func (e *Expr) Eval(vars map[string]safeint.SafeInt) (safeint.SafeInt, error) {
	v, _, err := e.evaluate(vars)

	return v, err
}

func (e *Expr) evaluate(vars map[string]safeint.SafeInt) (safeint.SafeInt, *StepError, error) {
	s := &evalState{vars: vars}

	v, err := e.root.eval(s)
	if err != nil {
		return safeint.Invalid(), nil, err
	}

	return v, s.cause, nil
}

func (n *literalNode) eval(s *evalState) (safeint.SafeInt, error) {
	if !n.value.IsValid() {
		s.fail(&StepError{Op: OpLiteral, Pos: n.pos, Text: n.text, Err: ErrOverflow})
	}

	return n.value, nil
}

func (n *variableNode) eval(s *evalState) (safeint.SafeInt, error) {
	v, ok := s.vars[n.name]
	if !ok {
		return safeint.Invalid(), fmt.Errorf("%w %q at position %d", ErrUnknownVariable, n.name, n.pos)
	}

	if !v.IsValid() {
		s.fail(&StepError{Op: OpVariable, Pos: n.pos, Text: n.name, Err: ErrInvalidOperand})
	}

	return v, nil
}

func (n *negateNode) eval(s *evalState) (safeint.SafeInt, error) {
	x, err := n.x.eval(s)
	if err != nil {
		return safeint.Invalid(), err
	}

	r := safeint.Negate(x)

	if a, ok := x.Get(); ok && !r.IsValid() {
		s.fail(&StepError{Op: OpNegate, Pos: n.pos, Operands: []int{a}, Err: ErrOverflow})
	}

	return r, nil
}

func (n *binaryNode) eval(s *evalState) (safeint.SafeInt, error) {
	x, err := n.x.eval(s)
	if err != nil {
		return safeint.Invalid(), err
	}

	y, err := n.y.eval(s)
	if err != nil {
		return safeint.Invalid(), err
	}

	r := binaryOps[n.op](x, y)

	a, aok := x.Get()
	b, bok := y.Get()

	if aok && bok && !r.IsValid() {
		s.fail(&StepError{Op: n.op, Pos: n.pos, Operands: []int{a, b}, Err: classify(n.op, b)})
	}

	return r, nil
}

// classify names why op turned valid operands into Invalid.
func classify(op Op, divisorOrExp int) error {
	switch {
	case (op == OpDiv || op == OpMod) && divisorOrExp == 0:
		return ErrDivisionByZero
	case op == OpPow && divisorOrExp < 0:
		return ErrNegativeExponent
	default:
		return ErrOverflow
	}
}
