// Package strictness implements strictness analysis of lazylang
// programs by abstract interpretation: a standard semantics over the
// flat lattice of integers, and an abstract semantics over the
// two-point domain that tracks whether an undefined input forces an
// undefined output.
package strictness

import (
	"fmt"

	"github.com/lazylang/strictness/utils"

	L "github.com/lazylang/strictness/analysis/lattice"

	"github.com/fatih/color"
)

var errPatternMatch = func(v interface{}) error {
	return fmt.Errorf("invalid pattern match: %v %T", v, v)
}

var (
	elFact = L.Elements()

	flatInt = L.Create().Lattice().FlatInt()
)

// zero and one are the members of the abstract domain.
var (
	zero L.Element = elFact.Zero()
	one  L.Element = elFact.One()
)

// undefined is the concrete bottom value.
func undefined() L.FlatElement {
	return flatInt.Bot().Flat()
}

var colorize = struct {
	Fun    func(...interface{}) string
	Param  func(...interface{}) string
	Strict func(...interface{}) string
	Lazy   func(...interface{}) string
}{
	Fun: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Param: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
	Strict: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgGreen).SprintFunc())(is...)
	},
	Lazy: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiRed).SprintFunc())(is...)
	},
}
