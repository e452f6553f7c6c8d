// Package progutil loads lazylang programs from structured YAML
// descriptions: a list of function definitions, a query expression and
// an initial environment. The description is already the structured
// form the evaluators consume; there is no textual expression syntax.
//
// Decoding goes through yaml.v3 for its YAML 1.2 scalar resolution:
// under YAML 1.1 bare names like n or y resolve as booleans, which
// would make them unusable as variable names.
package progutil

import (
	"fmt"
	"os"

	L "github.com/lazylang/strictness/analysis/lattice"
	"github.com/lazylang/strictness/analysis/strictness"
	"github.com/lazylang/strictness/analysis/syntax"

	"gopkg.in/yaml.v3"
)

// Program is a loaded lazylang program.
type Program struct {
	Functions []syntax.FunDef
	Query     syntax.Exp
	Env       strictness.Environment
}

type (
	programFile struct {
		Functions []funDefFile           `yaml:"functions"`
		Query     interface{}            `yaml:"query"`
		Env       map[string]interface{} `yaml:"env"`
	}

	funDefFile struct {
		Name   string      `yaml:"name"`
		Params []string    `yaml:"params"`
		Body   interface{} `yaml:"body"`
	}
)

// LoadProgram reads and decodes the program description at path.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalProgram(data)
}

// UnmarshalProgram decodes a YAML program description.
func UnmarshalProgram(data []byte) (*Program, error) {
	var file programFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	prog := &Program{Env: strictness.EmptyEnvironment()}
	for _, d := range file.Functions {
		body, err := decodeExp(d.Body)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", d.Name, err)
		}
		prog.Functions = append(prog.Functions, syntax.FunDef{
			Name:   d.Name,
			Params: d.Params,
			Body:   body,
		})
	}

	if file.Query != nil {
		query, err := decodeExp(file.Query)
		if err != nil {
			return nil, fmt.Errorf("query: %w", err)
		}
		prog.Query = query
	}

	for name, v := range file.Env {
		switch v := v.(type) {
		case nil:
			// A null binding is the undefined value.
			prog.Env = prog.Env.Bind(name, L.Create().Lattice().FlatInt().Bot())
		case int:
			prog.Env = prog.Env.Bind(name, L.Elements().FlatInt(v))
		default:
			return nil, fmt.Errorf("env %s: expected integer or null, got %T", name, v)
		}
	}

	return prog, nil
}

// expFields reads the recognized fields of an expression node.
func expFields(v interface{}) (map[string]interface{}, error) {
	fields, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected expression node, got %T", v)
	}
	return fields, nil
}

func decodeExp(v interface{}) (syntax.Exp, error) {
	// Bare integers abbreviate constant nodes.
	if c, ok := v.(int); ok {
		return syntax.Const{Value: c}, nil
	}

	fields, err := expFields(v)
	if err != nil {
		return nil, err
	}

	switch {
	case fields["const"] != nil:
		c, ok := fields["const"].(int)
		if !ok {
			return nil, fmt.Errorf("const: expected integer, got %T", fields["const"])
		}
		return syntax.Const{Value: c}, nil

	case fields["var"] != nil:
		name, ok := fields["var"].(string)
		if !ok {
			return nil, fmt.Errorf("var: expected name, got %T", fields["var"])
		}
		return syntax.Var{Name: name}, nil

	case fields["if"] != nil:
		branches, err := expFields(fields["if"])
		if err != nil {
			return nil, err
		}
		cond, err := decodeExp(branches["cond"])
		if err != nil {
			return nil, err
		}
		then, err := decodeExp(branches["then"])
		if err != nil {
			return nil, err
		}
		els, err := decodeExp(branches["else"])
		if err != nil {
			return nil, err
		}
		return syntax.If{Cond: cond, Then: then, Else: els}, nil

	case fields["op"] != nil:
		name, args, err := decodeCall(fields, "op")
		if err != nil {
			return nil, err
		}
		return syntax.BasicFn{Name: name, Xs: args}, nil

	case fields["call"] != nil:
		name, args, err := decodeCall(fields, "call")
		if err != nil {
			return nil, err
		}
		return syntax.Call{Name: name, Xs: args}, nil

	case fields["memo"] != nil:
		name, args, err := decodeCall(fields, "memo")
		if err != nil {
			return nil, err
		}
		return syntax.MemoCall{Name: name, Xs: args}, nil

	case fields["fix"] != nil:
		name, args, err := decodeCall(fields, "fix")
		if err != nil {
			return nil, err
		}
		return syntax.FPICall{Name: name, Xs: args}, nil

	default:
		return nil, fmt.Errorf("unrecognized expression node: %v", v)
	}
}

func decodeCall(fields map[string]interface{}, kind string) (string, []syntax.Exp, error) {
	name, ok := fields[kind].(string)
	if !ok {
		return "", nil, fmt.Errorf("%s: expected name, got %T", kind, fields[kind])
	}

	var args []syntax.Exp
	if rawArgs, present := fields["args"]; present {
		list, ok := rawArgs.([]interface{})
		if !ok {
			return "", nil, fmt.Errorf("%s %s: expected argument list, got %T", kind, name, rawArgs)
		}
		for _, raw := range list {
			arg, err := decodeExp(raw)
			if err != nil {
				return "", nil, err
			}
			args = append(args, arg)
		}
	}
	return name, args, nil
}
