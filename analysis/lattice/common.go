package lattice

import (
	"errors"
	"fmt"

	"github.com/lazylang/strictness/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Lattice func(...interface{}) string
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Key     func(...interface{}) string
}{
	Lattice: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Key: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
}

var (
	errUnsupportedTypeConversion = errors.New("UnsupportedTypeConversion")
	errUnsupportedOperation      = errors.New("UnsupportedOperationError")
	errInternal                  = errors.New("internal error")
	errPatternMatch              = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)

type Element interface {
	// Type conversion API
	TwoElement() twoElementLatticeElement
	Flat() FlatElement
	FlatInt() FlatIntElement

	Lattice() Lattice

	// External API for lattice element operations.
	// They dynamically perform lattice type checking.
	Leq(Element) bool
	Geq(Element) bool
	Eq(Element) bool
	Join(Element) Element
	Meet(Element) Element

	// Internal lattice element operations, that skip
	// lattice type checking. Only use under the
	// assumption of lattice type safety.
	leq(Element) bool
	geq(Element) bool
	eq(Element) bool
	join(Element) Element
	meet(Element) Element

	// Representational components
	String() string
	// Encodes the distance from the bottom of the lattice
	// to the element that calls this method.
	Height() int
}

type element struct {
	lattice Lattice
}

func (e element) Lattice() Lattice {
	return e.lattice
}

func (element) TwoElement() twoElementLatticeElement {
	panic(errUnsupportedTypeConversion)
}

func (element) Flat() FlatElement {
	panic(errUnsupportedTypeConversion)
}

func (element) FlatInt() FlatIntElement {
	panic(errUnsupportedTypeConversion)
}

func (element) Height() int {
	panic(errUnsupportedOperation)
}
