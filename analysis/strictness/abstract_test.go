package strictness

import (
	"testing"

	L "github.com/lazylang/strictness/analysis/lattice"
	"github.com/lazylang/strictness/analysis/syntax"
)

var emptyAbsTable = NewAbstractTable(nil)

func TestAbstract(t *testing.T) {
	if !Abstract(undefined()).Eq(zero) {
		t.Errorf("α(⊥) = %s, expected 0", Abstract(undefined()))
	}
	for _, v := range []int{-3, 0, 1, 42} {
		if !Abstract(elFact.FlatInt(v)).Eq(one) {
			t.Errorf("α(%d) = %s, expected 1", v, Abstract(elFact.FlatInt(v)))
		}
	}
}

func TestAbstractConst(t *testing.T) {
	res := EvaluateAbstract(syntax.Const{Value: 3}, EmptyMemo(), emptyAbsTable, EmptyEnvironment())
	if !res.Eq(one) {
		t.Errorf("3 = %s, expected 1", res)
	}
}

func TestAbstractVar(t *testing.T) {
	env := EmptyEnvironment().Bind("x", one).Bind("u", zero)

	tests := []struct {
		name     string
		expected L.Element
	}{
		{"x", one},
		{"u", zero},
		{"absent", zero},
	}

	for _, test := range tests {
		res := EvaluateAbstract(syntax.Var{Name: test.name}, EmptyMemo(), emptyAbsTable, env)
		if !res.Eq(test.expected) {
			t.Errorf("%s = %s, expected %s", test.name, res, test.expected)
		}
	}
}

// The conditional is strict in the condition and in whatever both
// branches are strict in: cond ⊓ (then ⊔ else).
func TestAbstractIf(t *testing.T) {
	exp := syntax.If{
		Cond: syntax.Var{Name: "c"},
		Then: syntax.Var{Name: "a"},
		Else: syntax.Var{Name: "b"},
	}

	tests := []struct {
		c, a, b  L.Element
		expected L.Element
	}{
		{zero, one, one, zero},
		{one, zero, zero, zero},
		{one, zero, one, one},
		{one, one, zero, one},
		{one, one, one, one},
	}

	for _, test := range tests {
		env := EmptyEnvironment().Bind("c", test.c).Bind("a", test.a).Bind("b", test.b)
		res := EvaluateAbstract(exp, EmptyMemo(), emptyAbsTable, env)
		if !res.Eq(test.expected) {
			t.Errorf("if %s then %s else %s = %s, expected %s",
				test.c, test.a, test.b, res, test.expected)
		}
	}
}

func TestAbstractBuiltin(t *testing.T) {
	for op := range builtins {
		for pos := 0; pos < builtinArity; pos++ {
			args := []syntax.Exp{syntax.Const{Value: 1}, syntax.Const{Value: 1}}
			args[pos] = syntax.Var{Name: "u"}
			env := EmptyEnvironment().Bind("u", zero)

			res := EvaluateAbstract(syntax.BasicFn{Name: op, Xs: args}, EmptyMemo(), emptyAbsTable, env)
			if !res.Eq(zero) {
				t.Errorf("%s with 0 at position %d = %s, expected 0", op, pos, res)
			}
		}
	}

	allDefined := syntax.BasicFn{Name: "add", Xs: []syntax.Exp{
		syntax.Const{Value: 1}, syntax.Const{Value: 2},
	}}
	if res := EvaluateAbstract(allDefined, EmptyMemo(), emptyAbsTable, EmptyEnvironment()); !res.Eq(one) {
		t.Errorf("add(1, 2) = %s, expected 1", res)
	}

	unknown := syntax.BasicFn{Name: "div", Xs: []syntax.Exp{
		syntax.Const{Value: 1}, syntax.Const{Value: 2},
	}}
	if res := EvaluateAbstract(unknown, EmptyMemo(), emptyAbsTable, EmptyEnvironment()); !res.Eq(zero) {
		t.Errorf("unknown builtin = %s, expected 0", res)
	}
}

func TestMemoCallReadThrough(t *testing.T) {
	defs := []syntax.FunDef{{
		Name: "f", Params: []string{"x"}, Body: syntax.Var{Name: "x"},
	}}
	tbl := NewAbstractTable(defs)

	exp := syntax.MemoCall{Name: "f", Xs: []syntax.Exp{syntax.Const{Value: 5}}}

	// With an empty memo table every tuple reads back 0.
	if res := EvaluateAbstract(exp, EmptyMemo(), tbl, EmptyEnvironment()); !res.Eq(zero) {
		t.Errorf("memo f(5) under empty memo = %s, expected 0", res)
	}

	// Const 5 abstracts to 1, so a memo entry for [1] is read back.
	memo := EmptyMemo().Bind([]L.Element{one}, one)
	if res := EvaluateAbstract(exp, memo, tbl, EmptyEnvironment()); !res.Eq(one) {
		t.Errorf("memo f(5) under seeded memo = %s, expected 1", res)
	}

	// An unknown callee is 0 regardless of memo contents.
	unknown := syntax.MemoCall{Name: "g", Xs: []syntax.Exp{syntax.Const{Value: 5}}}
	if res := EvaluateAbstract(unknown, memo, tbl, EmptyEnvironment()); !res.Eq(zero) {
		t.Errorf("memo g(5) = %s, expected 0", res)
	}
}

// A nested plain call must not observe the caller's memo state.
func TestPlainCallFreshMemo(t *testing.T) {
	defs := []syntax.FunDef{{
		Name: "probe", Params: []string{"x"},
		Body: syntax.MemoCall{Name: "probe", Xs: []syntax.Exp{syntax.Var{Name: "x"}}},
	}}
	tbl := NewAbstractTable(defs)

	// The caller's memo claims probe(1) = 1, but the plain call hands
	// the callee an empty table, under which the memo read yields 0.
	memo := EmptyMemo().Bind([]L.Element{one}, one)
	exp := syntax.Call{Name: "probe", Xs: []syntax.Exp{syntax.Const{Value: 1}}}
	if res := EvaluateAbstract(exp, memo, tbl, EmptyEnvironment()); !res.Eq(zero) {
		t.Errorf("probe(1) = %s, expected 0 through the fresh memo", res)
	}
}

func TestFixedPointStrictness(t *testing.T) {
	// f(n) = if eq(n, 0) then 1 else f(sub(n, 1)), rewritten for
	// memoization: strict in n, and the fixed point must still be
	// defined (1) for a defined argument.
	defs := recTestDefs()
	rewritten := []syntax.FunDef{{
		Name:   "f",
		Params: defs[0].Params,
		Body:   syntax.RewriteForMemoization(defs[0].Body),
	}}
	tbl := NewAbstractTable(rewritten)

	probe := func(arg L.Element) L.Element {
		env := EmptyEnvironment().Bind("n", arg)
		exp := syntax.FPICall{Name: "f", Xs: []syntax.Exp{syntax.Var{Name: "n"}}}
		return EvaluateAbstract(exp, EmptyMemo(), tbl, env)
	}

	if res := probe(zero); !res.Eq(zero) {
		t.Errorf("fix f(0) = %s, expected 0: f is strict in n", res)
	}
	if res := probe(one); !res.Eq(one) {
		t.Errorf("fix f(1) = %s, expected 1: f terminates on defined inputs", res)
	}
}

// If concrete evaluation is undefined, abstract evaluation of the same
// expression under the pointwise-abstracted environment must be 0.
func TestSoundness(t *testing.T) {
	defs := recTestDefs()
	concTbl := NewConcreteTable(defs)
	absTbl := NewAbstractTable(defs)

	exps := []syntax.Exp{
		syntax.Var{Name: "u"},
		syntax.BasicFn{Name: "add", Xs: []syntax.Exp{syntax.Var{Name: "u"}, syntax.Const{Value: 1}}},
		syntax.If{Cond: syntax.Var{Name: "u"}, Then: syntax.Const{Value: 1}, Else: syntax.Const{Value: 2}},
		syntax.If{Cond: syntax.Var{Name: "x"}, Then: syntax.Var{Name: "u"}, Else: syntax.Var{Name: "u"}},
		syntax.Call{Name: "mystery", Xs: nil},
		syntax.BasicFn{Name: "div", Xs: []syntax.Exp{syntax.Const{Value: 1}, syntax.Const{Value: 2}}},
	}

	env := EmptyEnvironment().
		Bind("x", elFact.FlatInt(3)).
		Bind("u", undefined())

	for _, exp := range exps {
		conc, err := Evaluate(exp, concTbl, env)
		if err != nil {
			t.Fatalf("evaluating %s: %v", exp, err)
		}
		if !conc.IsBot() {
			t.Fatalf("test expression %s should be concretely undefined", exp)
		}

		abs := EvaluateAbstract(exp, EmptyMemo(), absTbl, env.Abstracted())
		if !abs.Eq(zero) {
			t.Errorf("unsound: %s is concretely ⊥ but abstractly %s", exp, abs)
		}
	}
}
