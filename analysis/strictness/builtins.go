package strictness

import (
	"fmt"

	L "github.com/lazylang/strictness/analysis/lattice"
)

// builtinArity is the number of arguments every builtin destructures.
// Extra arguments are ignored.
const builtinArity = 2

// builtins is the closed table of builtin operators. Every builtin is
// strict in all of its arguments; comparison operators encode their
// result as 1 (true) or 0 (false).
var builtins = map[string]func(x, y int) int{
	"add": func(x, y int) int { return x + y },
	"sub": func(x, y int) int { return x - y },
	"mul": func(x, y int) int { return x * y },
	"eq": func(x, y int) int {
		if x == y {
			return 1
		}
		return 0
	},
	"geq": func(x, y int) int {
		if x >= y {
			return 1
		}
		return 0
	},
}

// IsBuiltin reports whether name denotes a builtin operator.
func IsBuiltin(name string) bool {
	_, found := builtins[name]
	return found
}

// ArityError reports a builtin applied to fewer arguments than it
// destructures. It is a contract violation at the caller's boundary,
// surfaced as a checked failure instead of an unbounded index fault.
type ArityError struct {
	Op   string
	Got  int
	Want int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("builtin %s applied to %d argument(s), expects at least %d", e.Op, e.Got, e.Want)
}

// applyBuiltin applies a builtin operator to evaluated argument values.
// An unknown operator yields the undefined value. A known operator is
// applied only when every argument is defined; any ⊥ argument forces a
// ⊥ result without invoking the operator.
func applyBuiltin(name string, args []L.FlatElement) (L.FlatElement, error) {
	fn, found := builtins[name]
	if !found {
		return undefined(), nil
	}
	if len(args) < builtinArity {
		return undefined(), &ArityError{name, len(args), builtinArity}
	}
	for _, arg := range args {
		if arg.IsBot() {
			return undefined(), nil
		}
	}

	x, y := args[0].FlatInt().IValue(), args[1].FlatInt().IValue()
	return elFact.FlatInt(fn(x, y)), nil
}
