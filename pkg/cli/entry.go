// Package cli implements the dynvec command: load a scenario file,
// dispatch the declared runs and print the results.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/dynvec/internal/algorithms"
	"github.com/funvibe/dynvec/internal/scenario"
	"github.com/funvibe/dynvec/internal/tag"
	"github.com/funvibe/dynvec/internal/value"
	"github.com/funvibe/dynvec/pkg/host"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	errText = color.New(color.FgRed)
	tagText = color.New(color.FgYellow)
)

// Run executes the CLI with the given arguments and returns the process
// exit code.
func Run(args []string) int {
	if os.Getenv("NO_COLOR") != "" ||
		(!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		color.NoColor = true
	}

	if len(args) == 0 {
		usage()
		return 1
	}

	switch args[0] {
	case "run":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: dynvec run <scenario.yaml>")
			return 1
		}
		return runScenario(args[1])
	case "tags":
		for _, tg := range tag.Universe() {
			tagText.Printf("%-8s", tg)
			fmt.Printf(" code %d\n", uint8(tg))
		}
		return 0
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		usage()
		return 1
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "dynvec - runtime-tagged generic dispatch")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run <scenario.yaml>  execute the runs declared in a scenario file")
	fmt.Fprintln(os.Stderr, "  tags                 list the tag universe")
	fmt.Fprintf(os.Stderr, "\nAlgorithms: %v\n", algorithms.Names())
}

func runScenario(path string) int {
	f, err := scenario.Load(path)
	if err != nil {
		errText.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	vals, err := f.Build()
	if err != nil {
		errText.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	bridge := host.New()
	failed := 0
	for i, run := range f.Runs {
		heading.Printf("[%d] %s(%s)\n", i+1, run.Algorithm, run.Value)
		res, err := execute(bridge, vals, run)
		if err != nil {
			errText.Fprintf(os.Stderr, "  %s\n", err)
			failed++
			continue
		}
		out, err := Render(res)
		if err != nil {
			errText.Fprintf(os.Stderr, "  rendering: %s\n", err)
			failed++
			continue
		}
		fmt.Println(indent(out))
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func execute(bridge *host.Bridge, vals map[string]value.Dynamic, run scenario.Run) (value.Dynamic, error) {
	v, ok := vals[run.Value]
	if !ok {
		return value.Null(), fmt.Errorf("unknown value %q", run.Value)
	}
	alg, ok := algorithms.Lookup(run.Algorithm)
	if !ok {
		return value.Null(), fmt.Errorf("unknown algorithm %q", run.Algorithm)
	}
	if run.Matrix {
		if alg.Matrix == nil {
			return value.Null(), fmt.Errorf("algorithm %q has no matrix form", run.Algorithm)
		}
		return bridge.DispatchMatrix(v, *alg.Matrix, run.Args...)
	}
	if alg.Vector == nil {
		return value.Null(), fmt.Errorf("algorithm %q has no vector form", run.Algorithm)
	}
	return bridge.DispatchVector(v, *alg.Vector, run.Args...)
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
