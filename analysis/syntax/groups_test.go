package syntax

import (
	"reflect"
	"testing"
)

func TestCalledFunctions(t *testing.T) {
	exp := If{
		Cond: BasicFn{"eq", []Exp{Var{"n"}, Const{0}}},
		Then: MemoCall{"g", []Exp{Var{"n"}}},
		Else: Call{"f", []Exp{FPICall{"h", nil}}},
	}

	expected := []string{"f", "g", "h"}
	if res := CalledFunctions(exp); !reflect.DeepEqual(res, expected) {
		t.Errorf("CalledFunctions = %v, expected %v", res, expected)
	}
}

func TestSelfRecursive(t *testing.T) {
	fac := FunDef{
		Name:   "fac",
		Params: []string{"n"},
		Body: If{
			Cond: BasicFn{"eq", []Exp{Var{"n"}, Const{0}}},
			Then: Const{1},
			Else: BasicFn{"mul", []Exp{
				Var{"n"},
				Call{"fac", []Exp{BasicFn{"sub", []Exp{Var{"n"}, Const{1}}}}},
			}},
		},
	}
	double := FunDef{
		Name:   "double",
		Params: []string{"x"},
		Body:   BasicFn{"add", []Exp{Var{"x"}, Var{"x"}}},
	}

	if !SelfRecursive(fac) {
		t.Errorf("%s should be self-recursive", fac.Name)
	}
	if SelfRecursive(double) {
		t.Errorf("%s should not be self-recursive", double.Name)
	}
}

func TestCallComponents(t *testing.T) {
	defs := []FunDef{{
		Name: "even", Params: []string{"n"},
		Body: If{
			Cond: BasicFn{"eq", []Exp{Var{"n"}, Const{0}}},
			Then: Const{1},
			Else: Call{"odd", []Exp{BasicFn{"sub", []Exp{Var{"n"}, Const{1}}}}},
		},
	}, {
		Name: "odd", Params: []string{"n"},
		Body: If{
			Cond: BasicFn{"eq", []Exp{Var{"n"}, Const{0}}},
			Then: Const{0},
			Else: Call{"even", []Exp{BasicFn{"sub", []Exp{Var{"n"}, Const{1}}}}},
		},
	}, {
		Name: "id", Params: []string{"x"},
		Body: Var{"x"},
	}}

	expected := [][]string{{"even", "odd"}, {"id"}}
	if res := CallComponents(defs); !reflect.DeepEqual(res, expected) {
		t.Errorf("CallComponents = %v, expected %v", res, expected)
	}
}

// A one-way call does not group caller and helper: components follow
// call direction, not mere connectivity.
func TestCallComponentsHelperChain(t *testing.T) {
	defs := []FunDef{{
		Name: "f", Params: []string{"x"},
		Body: Call{"g", []Exp{Var{"x"}}},
	}, {
		Name: "g", Params: []string{"x"},
		Body: Var{"x"},
	}}

	expected := [][]string{{"f"}, {"g"}}
	if res := CallComponents(defs); !reflect.DeepEqual(res, expected) {
		t.Errorf("CallComponents = %v, expected %v", res, expected)
	}
}

func TestCallComponentsCycle(t *testing.T) {
	link := func(name, callee string) FunDef {
		return FunDef{
			Name: name, Params: []string{"x"},
			Body: Call{callee, []Exp{Var{"x"}}},
		}
	}
	defs := []FunDef{link("a", "b"), link("b", "c"), link("c", "a"), link("d", "a")}

	expected := [][]string{{"a", "b", "c"}, {"d"}}
	if res := CallComponents(defs); !reflect.DeepEqual(res, expected) {
		t.Errorf("CallComponents = %v, expected %v", res, expected)
	}
}

func TestCallComponentsIgnoresUndefined(t *testing.T) {
	defs := []FunDef{{
		Name: "f", Params: []string{"x"},
		Body: Call{"mystery", []Exp{Var{"x"}}},
	}}

	expected := [][]string{{"f"}}
	if res := CallComponents(defs); !reflect.DeepEqual(res, expected) {
		t.Errorf("CallComponents = %v, expected %v", res, expected)
	}
}
