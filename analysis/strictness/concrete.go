package strictness

import (
	L "github.com/lazylang/strictness/analysis/lattice"
	"github.com/lazylang/strictness/analysis/syntax"
)

// Evaluate computes the standard meaning of an expression: a member of
// the flat integer lattice, where ⊥ is the undefined value. Undefined
// subresults propagate silently through strict positions; the only
// error surfaced is a builtin arity violation.
func Evaluate(e syntax.Exp, tbl ConcreteTable, env Environment) (L.FlatElement, error) {
	switch e := e.(type) {
	case syntax.Const:
		return elFact.FlatInt(e.Value), nil

	case syntax.Var:
		// An unbound name and a name bound to ⊥ both read as undefined.
		if v, found := env.Get(e.Name); found {
			return v.Flat(), nil
		}
		return undefined(), nil

	case syntax.If:
		cond, err := Evaluate(e.Cond, tbl, env)
		if err != nil {
			return undefined(), err
		}
		switch {
		case cond.IsBot():
			return undefined(), nil
		case cond.Is(0):
			return Evaluate(e.Else, tbl, env)
		default:
			return Evaluate(e.Then, tbl, env)
		}

	case syntax.BasicFn:
		// The operator is looked up before the arguments are touched;
		// an unknown operator is undefined without evaluating them.
		if !IsBuiltin(e.Name) {
			return undefined(), nil
		}
		args, err := evaluateAll(e.Xs, tbl, env)
		if err != nil {
			return undefined(), err
		}
		return applyBuiltin(e.Name, args)

	case syntax.Call:
		return call(e.Name, e.Xs, tbl, env)

	case syntax.MemoCall:
		// Memoization only changes the abstract semantics; the standard
		// semantics of a rewritten call is that of the plain call.
		return call(e.Name, e.Xs, tbl, env)

	case syntax.FPICall:
		return call(e.Name, e.Xs, tbl, env)

	default:
		panic(errPatternMatch(e))
	}
}

// call evaluates every argument independently, preserving definedness,
// and invokes the named denotation. An unknown function name yields
// the undefined value.
func call(name string, xs []syntax.Exp, tbl ConcreteTable, env Environment) (L.FlatElement, error) {
	den, found := tbl.Get(name)
	if !found {
		return undefined(), nil
	}
	args, err := evaluateAll(xs, tbl, env)
	if err != nil {
		return undefined(), err
	}
	lifted := make([]L.Element, 0, len(args))
	for _, arg := range args {
		lifted = append(lifted, arg)
	}
	return den(tbl, lifted)
}

func evaluateAll(xs []syntax.Exp, tbl ConcreteTable, env Environment) ([]L.FlatElement, error) {
	res := make([]L.FlatElement, 0, len(xs))
	for _, x := range xs {
		v, err := Evaluate(x, tbl, env)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
