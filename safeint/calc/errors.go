package calc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax is wrapped by every *SyntaxError.
	ErrSyntax = errors.New("syntax error")
	// ErrUnknownVariable is returned when an expression names a variable
	// missing from the variable map.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrDivisionByZero is the cause of a // or % by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeExponent is the cause of ^ with an exponent below zero.
	ErrNegativeExponent = errors.New("negative exponent")
	// ErrOverflow is the cause of a result, or literal, outside the int range.
	ErrOverflow = errors.New("integer overflow")
	// ErrInvalidOperand is the cause when a variable is itself Invalid.
	ErrInvalidOperand = errors.New("invalid operand")
)

// SyntaxError reports malformed expression text. Pos is a byte offset.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

// Unwrap returns ErrSyntax for errors.Is.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// StepError describes the first evaluation step that produced an Invalid
// value from valid inputs.
//
// Operands holds the unwrapped inputs of arithmetic steps. Text holds the
// source of literal and variable steps. Err is one of ErrDivisionByZero,
// ErrNegativeExponent, ErrOverflow or ErrInvalidOperand.
type StepError struct {
	Op       Op
	Pos      int
	Operands []int
	Text     string
	Err      error
}

func (e *StepError) Error() string {
	switch e.Op {
	case OpLiteral:
		return fmt.Sprintf("literal %s at position %d: %v", e.Text, e.Pos, e.Err)
	case OpVariable:
		return fmt.Sprintf("variable %s at position %d: %v", e.Text, e.Pos, e.Err)
	case OpNegate:
		return fmt.Sprintf("-(%d) at position %d: %v", e.first(), e.Pos, e.Err)
	}

	parts := make([]string, len(e.Operands))
	for i, v := range e.Operands {
		parts[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("%s at position %d: %v", strings.Join(parts, " "+string(e.Op)+" "), e.Pos, e.Err)
}

// Unwrap returns the cause sentinel.
func (e *StepError) Unwrap() error { return e.Err }

func (e *StepError) first() int {
	if len(e.Operands) == 0 {
		return 0
	}

	return e.Operands[0]
}

// reason maps a cause to a short label for metrics and logs.
func reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrNegativeExponent):
		return "negative_exponent"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrInvalidOperand):
		return "invalid_operand"
	default:
		return "unknown"
	}
}
