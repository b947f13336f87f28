// klotski solves a Klotski sliding-block puzzle given a starting board and
// a goal region for the large piece, and prints the shortest move sequence
// found.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/herohde/klotski/pkg/board"
	"github.com/herohde/klotski/pkg/board/notation"
	"github.com/herohde/klotski/pkg/solver"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(1, 0, 0)

const (
	defaultStart = "2113_2113_4556_4786_900a"
	defaultGoal  = "0000_0000_0000_0ff0_0ff0"
)

var (
	start   = flag.String("start", defaultStart, "Starting board, as 20 hex digits (default: classic layout)")
	goal    = flag.String("goal", defaultGoal, "Goal mask for the large piece, as 20 hex digits (default: classic goal)")
	verbose = flag.Bool("verbose", false, "Log search progress to stderr")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: klotski [options]

KLOTSKI solves a sliding-block puzzle given a starting board and a goal
region for the large 2x2 piece, printing the shortest move sequence found.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "KLOTSKI solver %v", version)

	rule, err := parseRule(*start, *goal)
	if err != nil {
		logw.Exitf(ctx, "Error: invalid puzzle: %v", err)
	}

	if *verbose {
		logw.Infof(ctx, "Start:  %v", rule.Start().Image())
		logw.Infof(ctx, "Goal:   %v", rule.GoalMask())
		logw.Infof(ctx, "Pieces: %v", rule.Pieces())
	}

	begin := time.Now()
	result, stats, found := solver.Solve(ctx, rule)
	duration := time.Since(begin)

	if *verbose {
		logw.Infof(ctx, "Search visited %v boards in %v", stats.Visited, duration)
	}

	if !found {
		fmt.Println("path not found.")
		return
	}

	for i, step := range result.Steps {
		fmt.Printf("step %v: Move piece #%v: %v\n", i+1, step.Piece, step.Path)
	}
}

// parseRule validates and parses the CLI's board strings into a Rule,
// mirroring the validation pipeline of the original implementation: both
// strings must be well-formed 20-hex-digit boards, the start board's
// pieces must each form a valid Klotski shape, and the goal mask itself
// must be a single valid 2x2 shape the large piece could occupy.
func parseRule(startStr, goalStr string) (*board.Rule, error) {
	startPattern, err := notation.Decode(startStr)
	if err != nil {
		return nil, fmt.Errorf("start board: %w", err)
	}
	if err := notation.ValidateLayout(startPattern); err != nil {
		return nil, fmt.Errorf("start board: %w", err)
	}
	if empty := notation.CountEmptyCells(startPattern); empty != 2 {
		return nil, fmt.Errorf("start board '%v' must have exactly 2 empty cells, got %v", startStr, empty)
	}

	goalPattern, err := notation.Decode(goalStr)
	if err != nil {
		return nil, fmt.Errorf("goal mask: %w", err)
	}
	if err := notation.ValidateGoalMask(goalPattern); err != nil {
		return nil, fmt.Errorf("goal mask '%v': %w", goalStr, err)
	}

	startBoard := board.NewBoard(startPattern)
	return board.NewRule(startBoard, goalPattern), nil
}
