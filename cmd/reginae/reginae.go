package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/vlopes11/reginae/heuristics"
	"github.com/vlopes11/reginae/lib"
)

type weightedRef struct {
	name   string
	weight float64
}

var (
	configPath string
	cacheDir   string
	weighted   []weightedRef
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("[reginae] ")

	flag.StringVar(&configPath, "config", "", "yaml run configuration")
	flag.StringVar(&cacheDir, "cache", "", "persistent depleted cache directory")
	flag.Func("e", "scoring function as name:weight", func(p string) error {
		name, value, found := strings.Cut(p, ":")
		if len(name) == 0 {
			return fmt.Errorf("the evaluator name cannot be empty")
		}

		weight := 0.0
		if found {
			var err error
			weight, err = strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("failed parsing the weight: %w", err)
			}
		}

		weighted = append(weighted, weightedRef{name: name, weight: weight})
		return nil
	})
	flag.Parse()
}

func main() {
	solver := lib.NewSolver()

	if len(configPath) > 0 {
		config, err := lib.LoadConfig(configPath)
		if err != nil {
			log.Panic(err.Error())
		}
		if err := config.Wire(solver, heuristics.Lookup); err != nil {
			log.Panicf("%v, have %v", err, heuristics.Names())
		}
		if len(cacheDir) == 0 {
			cacheDir = config.Cache
		}
	}

	for _, ref := range weighted {
		f, ok := heuristics.Lookup(ref.name)
		if !ok {
			log.Panicf("unknown evaluator '%s', have %v", ref.name, heuristics.Names())
		}
		solver.WithEvaluator(f, ref.weight)
	}

	if len(cacheDir) > 0 {
		depleted, err := lib.OpenBadgerDepletedSet(cacheDir)
		if err != nil {
			log.Panic(err.Error())
		}
		defer depleted.Close()
		solver.WithDepletedSet(depleted)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Panic(err.Error())
	}

	board, err := parseBoard(string(input))
	if err != nil {
		log.Panic(err.Error())
	}

	solution := solver.Solve(board)
	fmt.Printf("%v with %v jumps: %v\n", solution.Success, solution.Jumps, solution.Board.SortedQueens())
}

// parseBoard reads a board width followed by a comma-separated list of
// pre-placed queen indices; everything but digits and commas is ignored.
func parseBoard(input string) (*lib.Board, error) {
	clean := strings.Builder{}
	for _, char := range input {
		if (char >= '0' && char <= '9') || char == ',' {
			clean.WriteRune(char)
		}
	}

	parts := strings.Split(clean.String(), ",")
	if len(parts[0]) == 0 {
		return nil, fmt.Errorf("no width provided")
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid width provided: %w", err)
	}

	board := lib.NewBoard(width)
	for _, part := range parts[1:] {
		if len(part) == 0 {
			continue
		}
		queen, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if queen >= width*width {
			return nil, fmt.Errorf("queen %d is outside the board", queen)
		}
		board.Toggle(queen)
	}

	return board, nil
}
