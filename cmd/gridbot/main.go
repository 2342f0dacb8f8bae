package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"gridbot/internal/config"
	"gridbot/internal/interpreter"
	"gridbot/internal/trial"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n  %[1]s run [-scenario file.yaml] [-v] <script file>\n  %[1]s trial [-n 100] [-seed 12345] [-workers 8] [-out file.json] [-v]\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "run":
		runCmd(os.Args[2:])
	case "trial":
		trialCmd(os.Args[2:])
	default:
		usage()
	}
}

func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	scenarioPath := fs.String("scenario", "", "scenario YAML file (default: 7x7 advanced grid, enemy at (5,5))")
	verbose := fs.Bool("v", false, "log every move")
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
	}
	setLevel(*verbose)

	scenario := config.DefaultScenario()
	if *scenarioPath != "" {
		var err error
		scenario, err = config.LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	agent, err := scenario.Build()
	if err != nil {
		log.Fatal(err)
	}

	// load the program script from disk
	script, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	prog, err := interpreter.Parse(string(script))
	if err != nil {
		log.Fatal(err)
	}

	ctx := interpreter.NewContext(agent, log.WithField("script", fs.Arg(0)))
	if err := prog.Exec(ctx); err != nil {
		log.Fatal(err)
	}
	if err := interpreter.Report(os.Stdout, agent); err != nil {
		log.Fatal(err)
	}
	log.Debugf("variables: %s", ctx.Env)
}

func trialCmd(args []string) {
	opts := trial.DefaultOptions()
	fs := flag.NewFlagSet("trial", flag.ExitOnError)
	fs.IntVar(&opts.Trials, "n", opts.Trials, "number of trials")
	fs.Int64Var(&opts.Seed, "seed", opts.Seed, "seed")
	fs.IntVar(&opts.Workers, "workers", opts.Workers, "parallel workers")
	fs.IntVar(&opts.MinSize, "min", opts.MinSize, "smallest grid side")
	fs.IntVar(&opts.MaxSize, "max", opts.MaxSize, "largest grid side")
	fs.IntVar(&opts.MaxMoves, "moves", opts.MaxMoves, "max moves per trial")
	out := fs.String("out", "", "write the summary as JSON to this file")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Parse(args)
	setLevel(*verbose)
	if opts.Trials < 0 || opts.MinSize < 0 || opts.MaxMoves < 0 {
		log.Fatal("trial counts and sizes must be non-negative")
	}

	sum := trial.Run(opts)
	if *out != "" {
		b, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*out, b, 0644); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("Trials: %d passed: %d moves: %d\n", sum.Trials, sum.Passed, sum.TotalMoves)
	if !sum.OK() {
		os.Exit(1)
	}
}

func setLevel(verbose bool) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
