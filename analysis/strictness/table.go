package strictness

import (
	"github.com/lazylang/strictness/analysis/syntax"
	L "github.com/lazylang/strictness/analysis/lattice"

	"github.com/benbjohnson/immutable"
)

type (
	// Denotation is the standard meaning of a defined function: a map
	// from a tuple of possibly-undefined argument values to a
	// possibly-undefined result. The function table is supplied at
	// invocation time rather than captured at construction time, so
	// every denotation resolves calls through the final table,
	// including itself and definitions registered after it.
	Denotation func(tbl ConcreteTable, args []L.Element) (L.FlatElement, error)

	// AbstractDenotation mirrors Denotation over the two-point domain.
	// It additionally threads the memo table of assumed results.
	AbstractDenotation func(tbl AbstractTable, args []L.Element, memo MemoTable) L.Element

	// ConcreteTable maps function names to standard denotations.
	ConcreteTable struct {
		mp *immutable.Map[string, Denotation]
	}

	// AbstractTable maps function names to abstract denotations.
	AbstractTable struct {
		mp *immutable.Map[string, AbstractDenotation]
	}
)

// NewConcreteTable builds the standard function table of a program.
// A later definition of the same name shadows an earlier one.
func NewConcreteTable(defs []syntax.FunDef) ConcreteTable {
	mp := immutable.NewMap[string, Denotation](nil)
	for _, d := range defs {
		d := d
		mp = mp.Set(d.Name, func(tbl ConcreteTable, args []L.Element) (L.FlatElement, error) {
			return Evaluate(d.Body, tbl, BindParams(d.Params, args))
		})
	}
	return ConcreteTable{mp}
}

// Get retrieves the denotation registered for name, if any.
func (tbl ConcreteTable) Get(name string) (Denotation, bool) {
	return tbl.mp.Get(name)
}

// NewAbstractTable builds the abstract function table of a program.
// Callers intending to resolve recursion through fixed-point calls
// must rewrite the definition bodies for memoization first; the table
// itself registers the bodies as given.
func NewAbstractTable(defs []syntax.FunDef) AbstractTable {
	mp := immutable.NewMap[string, AbstractDenotation](nil)
	for _, d := range defs {
		d := d
		mp = mp.Set(d.Name, func(tbl AbstractTable, args []L.Element, memo MemoTable) L.Element {
			return EvaluateAbstract(d.Body, memo, tbl, BindParams(d.Params, args))
		})
	}
	return AbstractTable{mp}
}

// Get retrieves the abstract denotation registered for name, if any.
func (tbl AbstractTable) Get(name string) (AbstractDenotation, bool) {
	return tbl.mp.Get(name)
}
