package lib

import "math"

// EvalFunc scores a board snapshot against the most recently placed queen.
// Implementations must be pure; by convention they return values in [0,1],
// though the combined score is clamped regardless.
type EvalFunc func(board *Board, lastMove int) float64

type weightedEvaluator struct {
	f      EvalFunc
	weight float64
}

// Evaluator combines an ordered collection of weighted scoring functions
// into a single integer ranking key per candidate move.
type Evaluator struct {
	evaluators []weightedEvaluator
}

// Score computes the weighted sum of all registered functions, normalized
// by the total absolute weight, clamps it to (0,1] and scales it to the
// full uint64 range for a stable total order without float comparisons.
func (e *Evaluator) Score(board *Board, lastMove int) uint64 {
	totalWeight := 0.0
	for _, w := range e.evaluators {
		totalWeight += math.Abs(w.weight)
	}
	totalWeight = math.Max(totalWeight, math.SmallestNonzeroFloat64)

	score := 0.0
	for _, w := range e.evaluators {
		score += w.f(board, lastMove) * w.weight / totalWeight
	}

	score = math.Min(math.Max(score, math.SmallestNonzeroFloat64), 1.0)
	if score >= 1.0 {
		// float to uint64 conversion does not saturate in Go
		return math.MaxUint64
	}

	return uint64(score * float64(math.MaxUint64))
}

func (e *Evaluator) InjectEvaluator(f EvalFunc, weight float64) *Evaluator {
	e.evaluators = append(e.evaluators, weightedEvaluator{f: f, weight: weight})
	return e
}

func (e *Evaluator) Reset() *Evaluator {
	e.evaluators = nil
	return e
}
