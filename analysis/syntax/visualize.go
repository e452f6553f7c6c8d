package syntax

import (
	"fmt"

	"github.com/lazylang/strictness/utils"
	"github.com/lazylang/strictness/utils/dot"
)

var opts = utils.Opts()

func nodeLabel(e Exp) string {
	switch e := e.(type) {
	case Const:
		return fmt.Sprint(e.Value)
	case Var:
		return e.Name
	case If:
		return "if"
	case BasicFn:
		return e.Name
	case Call:
		return "call " + e.Name
	case MemoCall:
		return "memo " + e.Name
	case FPICall:
		return "fix " + e.Name
	default:
		panic(errPatternMatch(e))
	}
}

// VisualizeExp constructs a dot graph of the expression tree.
func VisualizeExp(e Exp, title string) *dot.DotGraph {
	G := &dot.DotGraph{
		Title: title,
		Options: map[string]string{
			"minlen":  "1",
			"nodesep": fmt.Sprint(opts.NodeSep()),
			"rankdir": "TB",
		},
	}

	id := 0
	var build func(e Exp) *dot.DotNode
	build = func(e Exp) *dot.DotNode {
		n := &dot.DotNode{
			ID: fmt.Sprintf("n%d", id),
			Attrs: dot.DotAttrs{
				"label": nodeLabel(e),
			},
		}
		id++

		switch e.(type) {
		case MemoCall, FPICall:
			n.Attrs["fillcolor"] = "lightyellow"
		case Call:
			n.Attrs["fillcolor"] = "lightblue"
		}

		G.Nodes = append(G.Nodes, n)

		for _, x := range e.Args() {
			G.Edges = append(G.Edges, &dot.DotEdge{
				From:  n,
				To:    build(x),
				Attrs: dot.DotAttrs{},
			})
		}
		return n
	}
	build(e)

	return G
}
