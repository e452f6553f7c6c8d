package syntax

// RewriteForMemoization rebuilds an expression tree with every plain
// call replaced by a memoized call. Every other node form is rebuilt
// unchanged. The pass prepares a function body for analysis under the
// fixed-point discipline, where recursive calls must read assumed
// results from the memo table instead of re-entering the denotation.
func RewriteForMemoization(e Exp) Exp {
	switch e := e.(type) {
	case Const:
		return e
	case Var:
		return e
	case If:
		return If{
			Cond: RewriteForMemoization(e.Cond),
			Then: RewriteForMemoization(e.Then),
			Else: RewriteForMemoization(e.Else),
		}
	case BasicFn:
		return BasicFn{e.Name, rewriteAll(e.Xs)}
	case Call:
		return MemoCall{e.Name, rewriteAll(e.Xs)}
	case MemoCall:
		return MemoCall{e.Name, rewriteAll(e.Xs)}
	case FPICall:
		return FPICall{e.Name, rewriteAll(e.Xs)}
	default:
		panic(errPatternMatch(e))
	}
}

// rewriteAll preserves nil argument lists, so rebuilding a call-free
// tree yields a structurally identical tree.
func rewriteAll(xs []Exp) []Exp {
	if xs == nil {
		return nil
	}
	res := make([]Exp, 0, len(xs))
	for _, x := range xs {
		res = append(res, RewriteForMemoization(x))
	}
	return res
}
