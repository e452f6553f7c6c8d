// Package solver computes least fixed points of monotone functions
// over finite lattice domains by Kleene iteration.
package solver

import (
	L "github.com/lazylang/strictness/analysis/lattice"
	"github.com/lazylang/strictness/utils/worklist"
)

// Fn is the meaning of a recursive function at a fixed argument tuple,
// evaluated under the assumption that the call itself yields `assumed`.
type Fn func(args []L.Element, assumed L.Element) L.Element

// Solve computes the least fixed point of f at args, iterating from
// bottom. Each step re-evaluates f under the previous result as the
// assumed outcome of the recursive call; iteration stops when the
// result stabilizes. Termination requires the domain to be finite and
// f to be monotone over it; both are caller obligations. Divergent
// inputs are cut off after |domain| strict increases, since no chain
// in the domain is longer than that.
func Solve(f Fn, args []L.Element, domain []L.Element, bottom L.Element) L.Element {
	res := bottom
	steps := 0

	worklist.Start(bottom, func(guess L.Element, add func(el L.Element)) {
		res = guess
		if steps >= len(domain) {
			return
		}
		steps++

		if next := f(args, guess); !next.Eq(guess) {
			add(next)
		}
	})

	return res
}
