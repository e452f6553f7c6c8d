package lattice

// FlatLattice is the base of flat lattices: ⊥ below an antichain of
// values below ⊤.
type FlatLattice struct {
	top FlatTop
	bot FlatBot
}

func (l *FlatLattice) init(outer Lattice) {
	inner := flatElementBase{element{outer}}
	l.top = FlatTop{inner}
	l.bot = FlatBot{inner}
}

func (l *FlatLattice) Top() Element {
	return l.top
}

func (l *FlatLattice) Bot() Element {
	return l.bot
}

// FlatIntLattice is the flat lattice of integers. It is the concrete
// value domain of the standard semantics: ⊥ plays the role of the
// undefined value.
type FlatIntLattice struct {
	lattice
	FlatLattice
}

var flatIntLattice = func() *FlatIntLattice {
	lat := new(FlatIntLattice)
	lat.init(lat)
	return lat
}()

func (latticeFactory) FlatInt() *FlatIntLattice {
	return flatIntLattice
}

func (l *FlatIntLattice) String() string {
	return colorize.Lattice("⊥") +
		" < " + colorize.Lattice("ℤ") + " < " +
		colorize.Lattice("T")
}

func (l1 *FlatIntLattice) Eq(l2 Lattice) bool {
	_, ok := l2.(*FlatIntLattice)
	return ok
}

func (l *FlatIntLattice) FlatInt() *FlatIntLattice {
	return l
}
