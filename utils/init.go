package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	task       string
	program    string
	output     string
	format     string
	nodesep    float64
	noColorize bool
	verbose    bool
}

const (
	_EVALUATE = iota
	_STRICTNESS
	_EXP_TO_DOT
)

var task = []struct{ flag, explanation string }{{
	"eval",
	"Evaluate the program query under the standard semantics",
}, {
	"strictness",
	"Compute the strictness vector of every defined function",
}, {
	"exp-to-dot",
	"Create a graph for the query expression tree",
}}

var opts = &options{}

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

// Task exposes which analysis task was requested on the command line.
type Task string

func (t Task) IsEvaluate() bool   { return string(t) == task[_EVALUATE].flag }
func (t Task) IsStrictness() bool { return string(t) == task[_STRICTNESS].flag }
func (t Task) IsExpToDot() bool   { return string(t) == task[_EXP_TO_DOT].flag }

func taskExplanations() string {
	strs := make([]string, 0, len(task))
	for _, t := range task {
		strs = append(strs, fmt.Sprintf("  %s\n    \t%s", t.flag, t.explanation))
	}
	return strings.Join(strs, "\n")
}

func init() {
	flag.StringVar(&opts.task, "task", task[_STRICTNESS].flag,
		"Determines which task to perform. One of:\n"+taskExplanations())
	flag.StringVar(&opts.program, "program", "", "Path to the program description to analyze.")
	flag.StringVar(&opts.output, "output", "", "Base name for generated graph files.")
	flag.StringVar(&opts.format, "format", "png", "Output format for generated graph files.")
	flag.Float64Var(&opts.nodesep, "nodesep", 0.35, "Node separation in generated graphs.")
	flag.BoolVar(&opts.noColorize, "no-colorize", false, "Do not colorize terminal output.")
	flag.BoolVar(&opts.verbose, "verbose", false, "Print debugging information while analyzing.")
}

func ParseArgs() {
	flag.Parse()

	found := false
	for _, t := range task {
		if t.flag == opts.task {
			found = true
			break
		}
	}
	if !found {
		log.Fatalf("Unknown task: %s", opts.task)
	}
}

func Opts() *options {
	return opts
}

func (o *options) Task() Task       { return Task(o.task) }
func (o *options) Program() string  { return o.program }
func (o *options) Output() string   { return o.output }
func (o *options) Format() string   { return o.format }
func (o *options) NodeSep() float64 { return o.nodesep }
func (o *options) Verbose() bool    { return o.verbose }
