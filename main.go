package main

import (
	"fmt"
	"log"
	"time"

	"github.com/lazylang/strictness/analysis/strictness"
	"github.com/lazylang/strictness/analysis/syntax"
	"github.com/lazylang/strictness/progutil"
	"github.com/lazylang/strictness/utils"
)

var opts = utils.Opts()

func main() {
	utils.ParseArgs()

	if opts.Program() == "" {
		log.Fatalln("No program given. Use -program to point at a program description.")
	}

	prog, err := progutil.LoadProgram(opts.Program())
	if err != nil {
		log.Fatalln("Failed loading program:", err)
	}

	utils.VerbosePrint("Loaded %d function definition(s)\n", len(prog.Functions))

	task := opts.Task()
	switch {
	case task.IsEvaluate():
		if prog.Query == nil {
			log.Fatalln("The program description has no query expression.")
		}

		tbl := strictness.NewConcreteTable(prog.Functions)
		res, err := strictness.Evaluate(prog.Query, tbl, prog.Env)
		if err != nil {
			log.Fatalln("Evaluation failed:", err)
		}
		fmt.Printf("%s = %s\n", prog.Query, res)

	case task.IsStrictness():
		defer utils.TimeTrack(time.Now(), "strictness analysis")
		fmt.Println(strictness.Analyze(prog.Functions))

	case task.IsExpToDot():
		if prog.Query == nil {
			log.Fatalln("The program description has no query expression.")
		}

		G := syntax.VisualizeExp(prog.Query, prog.Query.String())
		img, err := G.Render(opts.Output(), opts.Format())
		if err != nil {
			log.Fatalln("Rendering failed:", err)
		}
		fmt.Println("Rendered query expression to", img)
	}
}
