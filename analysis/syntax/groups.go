package syntax

import (
	"sort"
)

// CalledFunctions collects the names of user functions invoked anywhere
// in e, in any call form.
func CalledFunctions(e Exp) (res []string) {
	seen := map[string]bool{}
	var visit func(Exp)
	visit = func(e Exp) {
		switch e := e.(type) {
		case Call:
			seen[e.Name] = true
		case MemoCall:
			seen[e.Name] = true
		case FPICall:
			seen[e.Name] = true
		}
		for _, x := range e.Args() {
			visit(x)
		}
	}
	visit(e)

	for name := range seen {
		res = append(res, name)
	}
	sort.Strings(res)
	return
}

// SelfRecursive checks whether the definition calls itself directly.
func SelfRecursive(d FunDef) bool {
	for _, name := range CalledFunctions(d.Body) {
		if name == d.Name {
			return true
		}
	}
	return false
}

// CallComponents partitions the definitions into the strongly
// connected components of the directed call graph, with Tarjan's
// single-pass scheme. Definitions in the same component reach each
// other through calls and must be analyzed under the same fixed-point
// discipline. Call direction matters: a definition that merely calls a
// helper is not grouped with it.
func CallComponents(defs []FunDef) [][]string {
	calls := map[string][]string{}
	names := []string{}
	for _, d := range defs {
		if _, seen := calls[d.Name]; !seen {
			names = append(names, d.Name)
		}
		calls[d.Name] = CalledFunctions(d.Body)
	}

	var (
		index   = map[string]int{}
		lowlink = map[string]int{}
		onStack = map[string]bool{}
		stack   []string
		next    int
		res     [][]string
	)

	var connect func(name string)
	connect = func(name string) {
		index[name] = next
		lowlink[name] = next
		next++
		stack = append(stack, name)
		onStack[name] = true

		for _, callee := range calls[name] {
			if _, defined := calls[callee]; !defined {
				continue
			}
			if _, visited := index[callee]; !visited {
				connect(callee)
				if lowlink[callee] < lowlink[name] {
					lowlink[name] = lowlink[callee]
				}
			} else if onStack[callee] && index[callee] < lowlink[name] {
				lowlink[name] = index[callee]
			}
		}

		if lowlink[name] == index[name] {
			var comp []string
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[top] = false
				comp = append(comp, top)
				if top == name {
					break
				}
			}
			sort.Strings(comp)
			res = append(res, comp)
		}
	}

	for _, name := range names {
		if _, visited := index[name]; !visited {
			connect(name)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i][0] < res[j][0]
	})
	return res
}
