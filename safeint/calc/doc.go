// Package calc evaluates integer expressions through the safeint operators.
//
// The syntax has integer literals, variables, parentheses and the operators
// + - * // % ^ plus unary minus. "//" is flooring division and "%" its
// matching modulo; "^" is exponentiation and binds tighter than unary minus,
// so -2^2 is -4.
//
// A literal is a run of digits; the minus sign in front of it is the unary
// operator. The most negative int therefore has no literal form:
// -9223372036854775808 overflows while its digits are read and is Invalid.
// Write it as -9223372036854775807 - 1.
//
// Nesting is limited to 1024 levels, counting each open parenthesis, unary
// minus and pending exponent.
//
// Evaluation never fails on arithmetic: a division by zero, a negative
// exponent or an overflow makes the result Invalid, exactly as chaining the
// safeint operators by hand would. Only malformed input and unknown variables
// are errors. Evaluator additionally reports the first step that produced an
// invalid value, logs it and counts evaluations with OpenTelemetry.
//
//	ev, err := calc.New(calc.WithLogger(logger), calc.WithMeter(meter))
//	if err != nil {
//		return err
//	}
//
//	res, err := ev.Evaluate(ctx, "total // parts", map[string]safeint.SafeInt{
//		"total": safeint.FromInt(120),
//		"parts": safeint.FromInt(0),
//	})
//	// res.Value is Invalid, errors.Is(res.Cause, calc.ErrDivisionByZero) is true
package calc
