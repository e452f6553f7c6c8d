package strictness

import (
	L "github.com/lazylang/strictness/analysis/lattice"
	"github.com/lazylang/strictness/analysis/syntax"
	"github.com/lazylang/strictness/solver"
)

// Abstract maps a concrete flat value into the two-point domain:
// ⊥ to Zero and any defined value to One.
func Abstract(v L.Element) L.Element {
	return elFact.TwoElement(!v.Flat().IsBot())
}

// Domain enumerates the points of the abstract domain, bottom first.
func Domain() []L.Element {
	return []L.Element{zero, one}
}

// EvaluateAbstract computes the abstract meaning of an expression over
// the two-point domain. The environment binds variables to abstract
// values; memo carries assumed results for in-flight fixed-point
// computations and is only ever read here.
func EvaluateAbstract(e syntax.Exp, memo MemoTable, tbl AbstractTable, env Environment) L.Element {
	switch e := e.(type) {
	case syntax.Const:
		// A constant is always defined.
		return one

	case syntax.Var:
		if v, found := env.Get(e.Name); found {
			return v
		}
		return zero

	case syntax.If:
		// Strict in the condition, and in whatever both branches agree
		// to be strict in: only one branch executes, so a guarantee
		// must hold in either.
		cond := EvaluateAbstract(e.Cond, memo, tbl, env)
		th := EvaluateAbstract(e.Then, memo, tbl, env)
		el := EvaluateAbstract(e.Else, memo, tbl, env)
		return cond.Meet(th.Join(el))

	case syntax.BasicFn:
		// Builtins are strict in every argument, regardless of which
		// builtin, as long as the name is known.
		if !IsBuiltin(e.Name) {
			return zero
		}
		res := one
		for _, x := range e.Xs {
			res = res.Meet(EvaluateAbstract(x, memo, tbl, env))
		}
		return res

	case syntax.Call:
		den, found := tbl.Get(e.Name)
		if !found {
			return zero
		}
		// A nested plain call does not share memo state with its
		// caller: the callee starts from an empty table.
		return den(tbl, evaluateAbstractAll(e.Xs, memo, tbl, env), EmptyMemo())

	case syntax.MemoCall:
		// A pure memo read: the denotation is looked up only to check
		// that the name is defined, and is never invoked. The solver is
		// the only writer of the table being read.
		if _, found := tbl.Get(e.Name); !found {
			return zero
		}
		return memo.Lookup(evaluateAbstractAll(e.Xs, memo, tbl, env))

	case syntax.FPICall:
		den, found := tbl.Get(e.Name)
		if !found {
			return zero
		}
		args := evaluateAbstractAll(e.Xs, memo, tbl, env)
		return solver.Solve(
			func(args []L.Element, assumed L.Element) L.Element {
				return den(tbl, args, EmptyMemo().Bind(args, assumed))
			},
			args, Domain(), zero)

	default:
		panic(errPatternMatch(e))
	}
}

func evaluateAbstractAll(xs []syntax.Exp, memo MemoTable, tbl AbstractTable, env Environment) []L.Element {
	res := make([]L.Element, 0, len(xs))
	for _, x := range xs {
		res = append(res, EvaluateAbstract(x, memo, tbl, env))
	}
	return res
}
