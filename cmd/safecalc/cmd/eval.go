package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cobalamin/safe-int/safeint"
	"github.com/cobalamin/safe-int/safeint/calc"
	"github.com/spf13/cobra"
)

// ErrInvalidResults is returned by eval --strict when any result is Invalid.
var ErrInvalidResults = errors.New("invalid results")

func newEvalCmd(a *app) *cobra.Command {
	var (
		rawVars []string
		strict  bool
	)

	evalCmd := &cobra.Command{
		Use:   "eval EXPRESSION [EXPRESSION...]",
		Short: "Evaluate one or more expressions",
		Long: `Evaluate integer expressions. Supported operators, loosest first:

  + -        addition, subtraction
  * // %     multiplication, flooring division, flooring modulo
  -          negation
  ^          exponentiation (right associative)

Variables are bound with --var name=value and may be used in every expression.`,
		Example: `  safecalc eval "7 // 2" "-7 // 2" "5 // 0"
  safecalc eval --var total=120 --var parts=7 "total // parts" "total % parts" -o table`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := parseVars(rawVars)
			if err != nil {
				return err
			}

			ev, err := calc.New(calc.WithLogger(a.logger))
			if err != nil {
				return err
			}

			results := make([]calc.Result, 0, len(args))

			for _, expr := range args {
				res, err := ev.Evaluate(cmd.Context(), expr, vars)
				if err != nil {
					return fmt.Errorf("evaluate %q: %w", expr, err)
				}

				results = append(results, res)
			}

			if err := render(cmd.OutOrStdout(), a.cfg.Output, results); err != nil {
				return err
			}

			if strict {
				if n := countInvalid(results); n > 0 {
					return fmt.Errorf("%w: %d of %d", ErrInvalidResults, n, len(results))
				}
			}

			return nil
		},
	}

	evalCmd.Flags().StringArrayVar(&rawVars, "var", nil, "bind a variable, as name=value (repeatable)")
	evalCmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any result is Invalid")

	return evalCmd
}

// parseVars reads name=value pairs. A value outside the int range binds an
// Invalid variable; a value that is not an integer is an error.
func parseVars(raw []string) (map[string]safeint.SafeInt, error) {
	vars := make(map[string]safeint.SafeInt, len(raw))

	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)

		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q: expected name=value", kv)
		}

		var si safeint.SafeInt
		if err := si.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
			return nil, fmt.Errorf("invalid --var %q: %w", kv, err)
		}

		vars[name] = si
	}

	return vars, nil
}

func countInvalid(results []calc.Result) int {
	n := 0

	for _, r := range results {
		if !r.Value.IsValid() {
			n++
		}
	}

	return n
}
