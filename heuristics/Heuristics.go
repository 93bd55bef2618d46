// Package heuristics carries the example scoring functions and the name
// registry run configurations bind against. Every function conforms to
// lib.EvalFunc and is pure.
package heuristics

import (
	"sort"

	"github.com/vlopes11/reginae/lib"
)

var registry = map[string]lib.EvalFunc{
	"overlapping":     Overlapping,
	"ladder":          Ladder,
	"wrapping_ladder": WrappingLadder,
}

func Lookup(name string) (lib.EvalFunc, bool) {
	f, ok := registry[name]
	return f, ok
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Overlapping scores higher as the cells attacked from the last move also
// carry attacks along the other three lines, naturally from other queens.
func Overlapping(board *lib.Board, lastMove int) float64 {
	count := 0
	sum := 0

	scan := board.TraverseLines(lastMove)
	for {
		_, cell, ok := scan.Next()
		if !ok {
			break
		}
		count++
		switch scan.Line() {
		case lib.LineHorizontal:
			sum += attacks(cell.IsAttackedVertical(), cell.IsAttackedPrincipal(), cell.IsAttackedAntiDiagonal())
		case lib.LineVertical:
			sum += attacks(cell.IsAttackedHorizontal(), cell.IsAttackedPrincipal(), cell.IsAttackedAntiDiagonal())
		case lib.LinePrincipal:
			sum += attacks(cell.IsAttackedHorizontal(), cell.IsAttackedVertical(), cell.IsAttackedAntiDiagonal())
		case lib.LineAntiDiagonal:
			sum += attacks(cell.IsAttackedHorizontal(), cell.IsAttackedVertical(), cell.IsAttackedPrincipal())
		}
	}

	return float64(sum) / float64(count*3)
}

var ladderOffsets = [8][2]int{
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
}

// Ladder scores higher as more queens sit a knight's move from the last
// move. It performs well for odd widths but harms even-width search.
func Ladder(board *lib.Board, lastMove int) float64 {
	width := board.Width()
	row := lastMove / width
	column := lastMove - row*width

	count := 0
	for _, offset := range ladderOffsets {
		c, r := column+offset[0], row+offset[1]
		if c >= 0 && c < width && r >= 0 && r < width && board.IsQueen(r*width+c) {
			count++
		}
	}

	return float64(count) / 8.0
}

// WrappingLadder is Ladder on a toroidal surface: knight probes wrap
// around the board edges via unsigned index arithmetic. Combined with a
// negative weight it can offset the regular ladder on even widths.
func WrappingLadder(board *lib.Board, lastMove int) float64 {
	width := uint64(board.Width())
	cells := width * width
	last := uint64(lastMove)

	count := 0
	for _, offset := range [4]uint64{2*width - 1, width - 2, 2*width + 1, width + 2} {
		if board.IsQueen(int((last - offset) % cells)) {
			count++
		}
		if board.IsQueen(int((last + offset) % cells)) {
			count++
		}
	}

	return float64(count) / 8.0
}

func attacks(flags ...bool) int {
	count := 0
	for _, flag := range flags {
		if flag {
			count++
		}
	}
	return count
}
