package progutil

import (
	"reflect"
	"testing"

	"github.com/lazylang/strictness/analysis/syntax"
)

func TestUnmarshalProgram(t *testing.T) {
	doc := `
functions:
  - name: f
    params: [n]
    body:
      if:
        cond: {op: eq, args: [{var: n}, {const: 0}]}
        then: {const: 1}
        else: {call: f, args: [{op: sub, args: [{var: n}, 1]}]}
query: {call: f, args: [3]}
env:
  x: 5
  u: null
`
	prog, err := UnmarshalProgram([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	if len(prog.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(prog.Functions))
	}

	expectedBody := syntax.If{
		Cond: syntax.BasicFn{Name: "eq", Xs: []syntax.Exp{syntax.Var{Name: "n"}, syntax.Const{Value: 0}}},
		Then: syntax.Const{Value: 1},
		Else: syntax.Call{Name: "f", Xs: []syntax.Exp{
			syntax.BasicFn{Name: "sub", Xs: []syntax.Exp{syntax.Var{Name: "n"}, syntax.Const{Value: 1}}},
		}},
	}
	f := prog.Functions[0]
	if f.Name != "f" || !reflect.DeepEqual(f.Params, []string{"n"}) {
		t.Errorf("unexpected definition header: %s", f)
	}
	if !reflect.DeepEqual(f.Body, expectedBody) {
		t.Errorf("body = %s, expected %s", f.Body, expectedBody)
	}

	expectedQuery := syntax.Call{Name: "f", Xs: []syntax.Exp{syntax.Const{Value: 3}}}
	if !reflect.DeepEqual(prog.Query, syntax.Exp(expectedQuery)) {
		t.Errorf("query = %s, expected %s", prog.Query, expectedQuery)
	}

	if v, found := prog.Env.Get("x"); !found || !v.Flat().Is(5) {
		t.Errorf("env x = %v, expected 5", v)
	}
	if v, found := prog.Env.Get("u"); !found || !v.Flat().IsBot() {
		t.Errorf("env u = %v, expected ⊥", v)
	}
}

func TestUnmarshalCallForms(t *testing.T) {
	tests := []struct {
		doc      string
		expected syntax.Exp
	}{{
		`query: {memo: f, args: [{var: x}]}`,
		syntax.MemoCall{Name: "f", Xs: []syntax.Exp{syntax.Var{Name: "x"}}},
	}, {
		`query: {fix: f, args: [{var: x}]}`,
		syntax.FPICall{Name: "f", Xs: []syntax.Exp{syntax.Var{Name: "x"}}},
	}, {
		`query: {call: f}`,
		syntax.Call{Name: "f"},
	}}

	for _, test := range tests {
		prog, err := UnmarshalProgram([]byte(test.doc))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(prog.Query, test.expected) {
			t.Errorf("query = %s, expected %s", prog.Query, test.expected)
		}
	}
}

// Short names that YAML 1.1 would resolve as booleans (n, y, on, off)
// must decode as plain variable names and environment keys.
func TestUnmarshalBoolLikeNames(t *testing.T) {
	doc := `
functions:
  - name: f
    params: [n, y]
    body: {op: add, args: [{var: n}, {var: y}]}
query: {call: f, args: [{var: on}, 2]}
env:
  on: 1
`
	prog, err := UnmarshalProgram([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	expectedBody := syntax.BasicFn{Name: "add", Xs: []syntax.Exp{
		syntax.Var{Name: "n"}, syntax.Var{Name: "y"},
	}}
	f := prog.Functions[0]
	if !reflect.DeepEqual(f.Params, []string{"n", "y"}) {
		t.Errorf("params = %v, expected [n y]", f.Params)
	}
	if !reflect.DeepEqual(f.Body, expectedBody) {
		t.Errorf("body = %s, expected %s", f.Body, expectedBody)
	}

	expectedQuery := syntax.Call{Name: "f", Xs: []syntax.Exp{
		syntax.Var{Name: "on"}, syntax.Const{Value: 2},
	}}
	if !reflect.DeepEqual(prog.Query, syntax.Exp(expectedQuery)) {
		t.Errorf("query = %s, expected %s", prog.Query, expectedQuery)
	}

	if v, found := prog.Env.Get("on"); !found || !v.Flat().Is(1) {
		t.Errorf("env on = %v, expected 1", v)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	docs := []string{
		`query: {bogus: 3}`,
		`query: {const: notanumber}`,
		`query: {if: {cond: {bogus: 1}, then: 1, else: 2}}`,
		"env:\n  x: notanumber",
	}

	for _, doc := range docs {
		if _, err := UnmarshalProgram([]byte(doc)); err == nil {
			t.Errorf("expected decoding error for %q", doc)
		}
	}
}
