package lib

import "sort"

// Solver performs a depth-first backtracking search with best-first local
// ordering: the most promising child is expanded first, but every child is
// tried before a node is declared dead. Dead nodes are remembered across
// calls through the depleted set. A Solver instance must not run
// concurrent Solve calls.
type Solver struct {
	depleted  DepletedSet
	evaluator Evaluator
	jumps     int
}

// Solution is the terminal state of a solve call. On failure the board
// carries the caller's queens unchanged, except that an empty start keeps
// the forced corner queen.
type Solution struct {
	Board   *Board
	Success bool
	Jumps   int
}

type frontier struct {
	index int
	score uint64
}

func NewSolver() *Solver {
	return &Solver{depleted: NewMemoryDepletedSet()}
}

func (s *Solver) WithEvaluator(f EvalFunc, weight float64) *Solver {
	s.evaluator.InjectEvaluator(f, weight)
	return s
}

func (s *Solver) WithDepletedSet(depleted DepletedSet) *Solver {
	s.depleted = depleted
	return s
}

// Jumps reports the cumulative expansion count over the solver lifetime.
func (s *Solver) Jumps() int {
	return s.jumps
}

func (s *Solver) Solve(board *Board) Solution {
	normalized := Normalize(board)
	path := make([]int, 0, normalized.Width())
	success, jumps := s.solve(normalized, path)
	return Solution{
		Board:   normalized.ToBoard(),
		Success: success,
		Jumps:   jumps,
	}
}

func (s *Solver) solve(board *NormalizedBoard, path []int) (bool, int) {
	if board.IsEmpty() {
		// the canonical representative always admits a solution with a
		// queen near the origin
		board.Toggle(0)
	} else if board.IsSolved() {
		return true, s.jumps
	}

	sorted := append([]int(nil), path...)
	sort.Ints(sorted)
	if s.depleted.Contains(board.Width(), sorted) {
		return false, s.jumps
	}

	s.jumps++

	lastMove := 0
	if len(path) > 0 {
		lastMove = path[len(path)-1]
	}

	unexplored := []frontier{}
	for _, index := range board.Available() {
		board.Toggle(index)
		score := s.evaluator.Score(board.Board, lastMove)
		board.Toggle(index)
		unexplored = append(unexplored, frontier{index: index, score: score})
	}

	// stable, so equal scores keep ascending index order before popping
	sort.SliceStable(unexplored, func(i, j int) bool {
		return unexplored[i].score < unexplored[j].score
	})

	for i := len(unexplored) - 1; i >= 0; i-- {
		index := unexplored[i].index
		board.Toggle(index)
		if success, jumps := s.solve(board, append(path, index)); success {
			return success, jumps
		}
		board.Toggle(index)
	}

	// record the dead class under all four rotations; the fourth turn
	// restores the current orientation
	for i := 0; i < 4; i++ {
		board.RotateClockwise()
		s.depleted.Record(board.Width(), board.SortedQueens())
	}

	return false, s.jumps
}
