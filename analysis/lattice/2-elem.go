package lattice

type twoElementLatticeElement bool

var twoElemBot twoElementLatticeElement = false
var twoElemTop twoElementLatticeElement = true

func (elementFactory) TwoElement(b bool) twoElementLatticeElement {
	return twoElementLatticeElement(b)
}

// Zero returns the ⊥ element of the two-element lattice, read as
// "definitely undefined" by the strictness analysis.
func (elementFactory) Zero() twoElementLatticeElement {
	return twoElemBot
}

// One returns the ⊤ element of the two-element lattice, read as
// "may be defined" by the strictness analysis.
func (elementFactory) One() twoElementLatticeElement {
	return twoElemTop
}

func (twoElementLatticeElement) Lattice() Lattice {
	return twoElementLattice
}

func (b twoElementLatticeElement) AsBool() bool {
	return bool(b)
}

func (b twoElementLatticeElement) String() string {
	if b {
		return colorize.Element("1")
	}
	return colorize.Element("0")
}

func (e1 twoElementLatticeElement) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

func (e1 twoElementLatticeElement) eq(e2 Element) bool {
	return e1 == e2
}

func (e1 twoElementLatticeElement) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

func (e1 twoElementLatticeElement) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case twoElementLatticeElement:
		return (bool)(e1 || !e2)
	default:
		panic(errInternal)
	}
}

func (e1 twoElementLatticeElement) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

func (e1 twoElementLatticeElement) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case twoElementLatticeElement:
		return (bool)(!e1 || e2)
	default:
		panic(errInternal)
	}
}

func (e1 twoElementLatticeElement) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

func (e1 twoElementLatticeElement) join(e2 Element) Element {
	switch e2.(type) {
	case twoElementLatticeElement:
		if e1 {
			return e1
		}
		return e2
	default:
		panic(errInternal)
	}
}

func (e1 twoElementLatticeElement) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

func (e1 twoElementLatticeElement) meet(e2 Element) Element {
	switch e2.(type) {
	case twoElementLatticeElement:
		if e1 {
			return e2
		}
		return e1
	default:
		panic(errInternal)
	}
}

func (b twoElementLatticeElement) Height() int {
	if bool(b) {
		return 1
	}
	return 0
}

func (b twoElementLatticeElement) TwoElement() twoElementLatticeElement {
	return b
}

func (twoElementLatticeElement) Flat() FlatElement {
	panic(errUnsupportedTypeConversion)
}

func (twoElementLatticeElement) FlatInt() FlatIntElement {
	panic(errUnsupportedTypeConversion)
}
