// Command stagecraft is a thin CLI wrapper around the solver library: it
// reads a stage.Problem as JSON from a file or stdin, runs one of the
// core operations, and writes a stage.Solution (or score report) as JSON
// to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/stagecraft/candidates"
	"github.com/katalvlaran/stagecraft/greedy"
	"github.com/katalvlaran/stagecraft/score"
	"github.com/katalvlaran/stagecraft/solver"
	"github.com/katalvlaran/stagecraft/stage"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: stagecraft <solve|climb|score|optimize|visualize> [flags]")
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "solve":
		err = runSolve(args)
	case "climb":
		err = runClimb(args)
	case "score":
		err = runScore(args)
	case "optimize", "visualize":
		err = fmt.Errorf("stagecraft: %q is not part of the core solver and is not implemented", cmd)
	default:
		err = fmt.Errorf("stagecraft: unknown command %q", cmd)
	}
	if err != nil {
		log.Fatalf("stagecraft: %v", err)
	}
}

func readProblem(path string) (*stage.Problem, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var prob stage.Problem
	if err := json.NewDecoder(r).Decode(&prob); err != nil {
		return nil, fmt.Errorf("decoding problem: %w", err)
	}
	if err := stage.Validate(&prob); err != nil {
		return nil, fmt.Errorf("invalid problem: %w", err)
	}
	return &prob, nil
}

func writeSolution(sol stage.Solution) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sol)
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	input := fs.String("in", "", "path to problem JSON (default: stdin)")
	seed := fs.Int64("seed", 0, "base RNG seed (0 = derive from system entropy)")
	iterations := fs.Int("iterations", greedy.DefaultIterations, "climb iterations per variant")
	if err := fs.Parse(args); err != nil {
		return err
	}

	prob, err := readProblem(*input)
	if err != nil {
		return err
	}

	opts := solver.DefaultOptions()
	opts.Iterations = *iterations
	opts.Seed = resolveSeed(*seed)

	sol, err := solver.Solve(prob, opts)
	if err != nil {
		return err
	}
	return writeSolution(sol)
}

func runClimb(args []string) error {
	fs := flag.NewFlagSet("climb", flag.ExitOnError)
	input := fs.String("in", "", "path to problem JSON (default: stdin)")
	seed := fs.Int64("seed", 0, "RNG seed (0 = derive from system entropy)")
	iterations := fs.Int("iterations", greedy.DefaultIterations, "number of destroy/rebuild rounds")
	destroyCap := fs.Int("destroy-cap", greedy.DefaultDestroyCap, "max musicians unassigned per round")
	variant := fs.Int("variant", 0, "candidate-generator variant index (0=Stretch,1=Corner,2=Diagonal,3=Compressed)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	prob, err := readProblem(*input)
	if err != nil {
		return err
	}

	gens := candidates.Variants()
	if *variant < 0 || *variant >= len(gens) {
		return fmt.Errorf("variant must be in [0,%d)", len(gens))
	}
	places, err := gens[*variant](prob)
	if err != nil {
		return err
	}

	res, err := greedy.Climb(prob, places, greedy.Options{
		Iterations: *iterations,
		DestroyCap: *destroyCap,
		Seed:       resolveSeed(*seed),
	})
	if err != nil {
		return err
	}

	placements := make([]stage.Placement, len(res.Placements))
	for i, p := range res.Placements {
		placements[i] = stage.PlacementOf(p)
	}
	return writeSolution(stage.Solution{Placements: placements, Volumes: res.Volumes})
}

func runScore(args []string) error {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	input := fs.String("in", "", "path to problem JSON (default: stdin)")
	solutionPath := fs.String("solution", "", "path to solution JSON (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *solutionPath == "" {
		return fmt.Errorf("-solution is required")
	}

	prob, err := readProblem(*input)
	if err != nil {
		return err
	}

	f, err := os.Open(*solutionPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var sol stage.Solution
	if err := json.NewDecoder(f).Decode(&sol); err != nil {
		return fmt.Errorf("decoding solution: %w", err)
	}

	total, valid, offenders, err := score.Score(prob, &sol)
	if err != nil {
		return err
	}

	report := struct {
		Total     int64 `json:"total"`
		Valid     bool  `json:"valid"`
		Offenders []int `json:"offenders,omitempty"`
	}{Total: total, Valid: valid, Offenders: offenders}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// resolveSeed turns a zero seed flag into a system-entropy seed, computed
// once here at the CLI boundary; library code never reads the clock.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
