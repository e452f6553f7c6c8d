package strictness

import (
	"fmt"
	"sort"
	"strings"

	L "github.com/lazylang/strictness/analysis/lattice"
	"github.com/lazylang/strictness/utils"

	"github.com/benbjohnson/immutable"
)

type (
	// memoKey is the exact tuple of abstract argument values a call
	// site was invoked with.
	memoKey struct {
		args []L.Element
	}

	// MemoTable caches the abstract result previously computed for each
	// argument tuple. It is created fresh per analysis query and
	// threaded explicitly; absence of a key means "not yet known" and
	// reads back as Zero. Only the fixed-point solver seeds entries.
	MemoTable struct {
		mp *immutable.Map[memoKey, L.Element]
	}
)

// Hash folds the tuple length and members into a single value.
func (k memoKey) Hash() uint32 {
	hs := make([]uint32, 0, len(k.args)+1)
	hs = append(hs, uint32(len(k.args)))
	for _, arg := range k.args {
		if arg.TwoElement().AsBool() {
			hs = append(hs, 1)
		} else {
			hs = append(hs, 0)
		}
	}
	return utils.HashCombine(hs...)
}

// Equal compares tuples pointwise under lattice element equality.
func (k memoKey) Equal(o memoKey) bool {
	if len(k.args) != len(o.args) {
		return false
	}
	for i := range k.args {
		if !k.args[i].Eq(o.args[i]) {
			return false
		}
	}
	return true
}

// EmptyMemo creates a memo table with no entries.
func EmptyMemo() MemoTable {
	return MemoTable{utils.NewImmMap[memoKey, L.Element]()}
}

// Lookup reads the cached result for the given argument tuple,
// defaulting to Zero when no entry is present.
func (m MemoTable) Lookup(args []L.Element) L.Element {
	if res, found := m.mp.Get(memoKey{args}); found {
		return res
	}
	return zero
}

// Bind produces a new memo table with the given tuple mapped to res.
func (m MemoTable) Bind(args []L.Element, res L.Element) MemoTable {
	return MemoTable{m.mp.Set(memoKey{args}, res)}
}

// Size is the number of cached tuples.
func (m MemoTable) Size() int {
	return m.mp.Len()
}

func (m MemoTable) String() string {
	strs := []string{}
	iter := m.mp.Iterator()
	for !iter.Done() {
		k, res, _ := iter.Next()
		args := make([]string, 0, len(k.args))
		for _, arg := range k.args {
			args = append(args, arg.String())
		}
		strs = append(strs, fmt.Sprintf("(%s) ↦ %s", strings.Join(args, ", "), res))
	}
	sort.Strings(strs)
	return "{" + strings.Join(strs, ", ") + "}"
}
