package strictness

import (
	"testing"

	L "github.com/lazylang/strictness/analysis/lattice"
)

func TestMemoLookupDefault(t *testing.T) {
	memo := EmptyMemo()

	tuples := [][]L.Element{
		nil,
		{zero},
		{one},
		{one, zero},
	}
	for _, args := range tuples {
		if res := memo.Lookup(args); !res.Eq(zero) {
			t.Errorf("empty memo lookup %v = %s, expected 0", args, res)
		}
	}
}

func TestMemoBind(t *testing.T) {
	memo := EmptyMemo().Bind([]L.Element{one, zero}, one)

	if res := memo.Lookup([]L.Element{one, zero}); !res.Eq(one) {
		t.Errorf("lookup of bound tuple = %s, expected 1", res)
	}
	// The exact tuple is the key: permutations and prefixes miss.
	if res := memo.Lookup([]L.Element{zero, one}); !res.Eq(zero) {
		t.Errorf("lookup of permuted tuple = %s, expected 0", res)
	}
	if res := memo.Lookup([]L.Element{one}); !res.Eq(zero) {
		t.Errorf("lookup of prefix tuple = %s, expected 0", res)
	}

	if memo.Size() != 1 {
		t.Errorf("memo size = %d, expected 1", memo.Size())
	}
}

func TestMemoRebindShadows(t *testing.T) {
	args := []L.Element{one}
	memo := EmptyMemo().Bind(args, zero)
	memo2 := memo.Bind(args, one)

	if res := memo2.Lookup(args); !res.Eq(one) {
		t.Errorf("rebind lookup = %s, expected 1", res)
	}
	// Binding is persistent: the original table is unchanged.
	if res := memo.Lookup(args); !res.Eq(zero) {
		t.Errorf("original memo changed by rebind: %s", res)
	}
}
