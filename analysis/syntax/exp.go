// Package syntax defines the abstract syntax of lazylang programs:
// integer expressions over named variables, conditionals, builtin
// operator applications and user-defined function calls. Expressions
// are pure data shared by the standard and abstract evaluators.
package syntax

import (
	"fmt"
	"strings"
)

type (
	// Exp is the closed type of lazylang expressions.
	Exp interface {
		fmt.Stringer

		// Args exposes the immediate subexpressions.
		Args() []Exp

		isExp()
	}

	// Const is an integer literal.
	Const struct {
		Value int
	}

	// Var references a variable by name.
	Var struct {
		Name string
	}

	// If is a conditional. The else branch is taken when the condition
	// evaluates to exactly 0.
	If struct {
		Cond, Then, Else Exp
	}

	// BasicFn applies a builtin operator to its arguments.
	BasicFn struct {
		Name string
		Xs   []Exp
	}

	// Call is a plain user-function call.
	Call struct {
		Name string
		Xs   []Exp
	}

	// MemoCall has the shape of a plain call but is evaluated as a pure
	// read of the current memo table under the abstract semantics.
	MemoCall struct {
		Name string
		Xs   []Exp
	}

	// FPICall is a user-function call resolved by computing a least
	// fixed point over the abstract domain.
	FPICall struct {
		Name string
		Xs   []Exp
	}
)

// FunDef is a named function definition. Parameter names are assumed
// unique within a definition.
type FunDef struct {
	Name   string
	Params []string
	Body   Exp
}

func (Const) isExp()    {}
func (Var) isExp()      {}
func (If) isExp()       {}
func (BasicFn) isExp()  {}
func (Call) isExp()     {}
func (MemoCall) isExp() {}
func (FPICall) isExp()  {}

func (Const) Args() []Exp      { return nil }
func (Var) Args() []Exp        { return nil }
func (e If) Args() []Exp       { return []Exp{e.Cond, e.Then, e.Else} }
func (e BasicFn) Args() []Exp  { return e.Xs }
func (e Call) Args() []Exp     { return e.Xs }
func (e MemoCall) Args() []Exp { return e.Xs }
func (e FPICall) Args() []Exp  { return e.Xs }

func (e Const) String() string {
	return fmt.Sprint(e.Value)
}

func (e Var) String() string {
	return e.Name
}

func (e If) String() string {
	return fmt.Sprintf("if %s then %s else %s", e.Cond, e.Then, e.Else)
}

func args(name string, xs []Exp) string {
	strs := make([]string, 0, len(xs))
	for _, x := range xs {
		strs = append(strs, x.String())
	}
	return name + "(" + strings.Join(strs, ", ") + ")"
}

func (e BasicFn) String() string {
	return args(e.Name, e.Xs)
}

func (e Call) String() string {
	return args(e.Name, e.Xs)
}

func (e MemoCall) String() string {
	return args("memo "+e.Name, e.Xs)
}

func (e FPICall) String() string {
	return args("fix "+e.Name, e.Xs)
}

func (d FunDef) String() string {
	return fmt.Sprintf("%s(%s) = %s", d.Name, strings.Join(d.Params, ", "), d.Body)
}
