package strictness

import (
	"fmt"
	"sort"
	"strings"

	L "github.com/lazylang/strictness/analysis/lattice"

	"github.com/benbjohnson/immutable"
)

// Environment maps variable names to lattice values. It is an
// immutable value: binding produces a new environment.
type Environment struct {
	mp *immutable.Map[string, L.Element]
}

// EmptyEnvironment creates an environment with no bindings.
func EmptyEnvironment() Environment {
	return Environment{immutable.NewMap[string, L.Element](nil)}
}

// Get retrieves the value bound to name, if any.
func (env Environment) Get(name string) (L.Element, bool) {
	return env.mp.Get(name)
}

// Bind produces a new environment with name bound to v.
func (env Environment) Bind(name string, v L.Element) Environment {
	return Environment{env.mp.Set(name, v)}
}

// BindParams builds a fresh environment by zipping parameter names with
// argument values, in order. Surplus parameters stay unbound and
// surplus arguments are dropped.
func BindParams(params []string, args []L.Element) Environment {
	env := EmptyEnvironment()
	for i, p := range params {
		if i >= len(args) {
			break
		}
		env = env.Bind(p, args[i])
	}
	return env
}

// Abstracted maps the environment pointwise through the abstraction
// function. Concrete ⊥ bindings become Zero, everything else One.
func (env Environment) Abstracted() Environment {
	res := EmptyEnvironment()
	iter := env.mp.Iterator()
	for !iter.Done() {
		name, v, _ := iter.Next()
		res = res.Bind(name, Abstract(v))
	}
	return res
}

func (env Environment) String() string {
	strs := []string{}
	iter := env.mp.Iterator()
	for !iter.Done() {
		name, v, _ := iter.Next()
		strs = append(strs, fmt.Sprintf("%s ↦ %s", name, v))
	}
	sort.Strings(strs)
	return "[" + strings.Join(strs, ", ") + "]"
}
