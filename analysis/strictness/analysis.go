package strictness

import (
	"fmt"
	"strings"

	"github.com/lazylang/strictness/analysis/syntax"
)

type (
	// FunctionResult is the strictness vector of one definition: one
	// verdict per parameter, in declaration order. A true entry means
	// an undefined value for that parameter necessarily makes the call
	// undefined.
	FunctionResult struct {
		Def       syntax.FunDef
		Strict    []bool
		Recursive bool
	}

	// Result is the analysis outcome for a whole program.
	Result struct {
		Functions  []FunctionResult
		Components [][]string
	}
)

// Analyze computes the strictness vector of every definition in the
// program. Each parameter position is probed with a fixed-point call
// where that argument is Zero and all others One; the definition
// bodies are rewritten for memoization first, so recursive calls read
// assumed results instead of re-entering their denotations.
func Analyze(defs []syntax.FunDef) Result {
	rewritten := make([]syntax.FunDef, 0, len(defs))
	for _, d := range defs {
		rewritten = append(rewritten, syntax.FunDef{
			Name:   d.Name,
			Params: d.Params,
			Body:   syntax.RewriteForMemoization(d.Body),
		})
	}
	tbl := NewAbstractTable(rewritten)

	res := Result{Components: syntax.CallComponents(defs)}
	componentSize := map[string]int{}
	for _, c := range res.Components {
		for _, name := range c {
			componentSize[name] = len(c)
		}
	}

	for _, d := range defs {
		fr := FunctionResult{
			Def:       d,
			Strict:    make([]bool, len(d.Params)),
			Recursive: syntax.SelfRecursive(d) || componentSize[d.Name] > 1,
		}

		for i := range d.Params {
			env := EmptyEnvironment()
			probeArgs := make([]syntax.Exp, len(d.Params))
			for j, p := range d.Params {
				probeArgs[j] = syntax.Var{Name: p}
				if i == j {
					env = env.Bind(p, zero)
				} else {
					env = env.Bind(p, one)
				}
			}

			probe := syntax.FPICall{Name: d.Name, Xs: probeArgs}
			fr.Strict[i] = EvaluateAbstract(probe, EmptyMemo(), tbl, env).Eq(zero)
		}

		res.Functions = append(res.Functions, fr)
	}
	return res
}

func (fr FunctionResult) String() string {
	verdicts := make([]string, 0, len(fr.Def.Params))
	for i, p := range fr.Def.Params {
		if fr.Strict[i] {
			verdicts = append(verdicts, colorize.Strict("strict in ")+colorize.Param(p))
		} else {
			verdicts = append(verdicts, colorize.Lazy("lazy in ")+colorize.Param(p))
		}
	}
	str := fmt.Sprintf("%s(%s): %s",
		colorize.Fun(fr.Def.Name),
		strings.Join(fr.Def.Params, ", "),
		strings.Join(verdicts, ", "))
	if fr.Recursive {
		str += " [recursive]"
	}
	return str
}

func (r Result) String() string {
	strs := make([]string, 0, len(r.Functions)+1)
	for _, fr := range r.Functions {
		strs = append(strs, fr.String())
	}

	comps := make([]string, 0, len(r.Components))
	for _, c := range r.Components {
		comps = append(comps, "{"+strings.Join(c, ", ")+"}")
	}
	strs = append(strs, "call components: "+strings.Join(comps, " "))

	return strings.Join(strs, "\n")
}
