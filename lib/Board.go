package lib

import "strings"

// Board is an N×N grid of cells plus the sorted set of placed queen
// indices. Attack flags are maintained incrementally on every toggle.
type Board struct {
	cells  []Cell
	queens IndexSet
	width  int
}

func NewBoard(width int) *Board {
	return &Board{
		cells: make([]Cell, width*width),
		width: width,
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) IsSolved() bool {
	return b.queens.Len() == b.width
}

func (b *Board) IsEmpty() bool {
	return b.queens.Len() == 0
}

func (b *Board) IsQueen(index int) bool {
	return b.cells[index].IsQueen()
}

func (b *Board) Cell(index int) Cell {
	return b.cells[index]
}

func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, 0, b.width)
	for i := 0; i < len(b.cells); i += b.width {
		rows = append(rows, b.cells[i:i+b.width])
	}
	return rows
}

func (b *Board) SortedQueens() []int {
	return b.queens.Values()
}

// Available lists the free cell indices in ascending order.
func (b *Board) Available() []int {
	available := []int{}
	for i, c := range b.cells {
		if c.IsFree() {
			available = append(available, i)
		}
	}
	return available
}

func (b *Board) Clear() *Board {
	for i := range b.cells {
		b.cells[i].clear()
	}
	b.queens.Clear()
	return b
}

func (b *Board) Clone() *Board {
	clone := &Board{
		cells: make([]Cell, len(b.cells)),
		width: b.width,
	}
	copy(clone.cells, b.cells)
	clone.queens.Data = b.queens.Values()
	return clone
}

func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.queens.Len() != o.queens.Len() {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	for i := range b.queens.Data {
		if b.queens.Data[i] != o.queens.Data[i] {
			return false
		}
	}
	return true
}

func (b *Board) ToggleWithPair(column, row int) *Board {
	return b.Toggle(row*b.width + column)
}

// Toggle places a queen if the cell is free, removes it if the cell holds
// a queen, and does nothing if the cell is only attacked.
func (b *Board) Toggle(index int) *Board {
	if b.cells[index].IsFree() {
		return b.putQueen(index)
	} else if b.cells[index].IsQueen() {
		return b.removeQueen(index)
	}
	return b
}

func (b *Board) putQueen(index int) *Board {
	b.cells[index].putQueen()
	b.queens.Add(index)
	b.attack(index)
	return b
}

func (b *Board) removeQueen(index int) *Board {
	b.cells[index].removeQueen()
	b.queens.Remove(index)

	bounds := newBoundaries(index, b.width)
	for i := bounds.horizontalMin; i <= bounds.horizontalMax; i++ {
		b.cells[i].liftHorizontal()
	}
	for i := bounds.verticalMin; i <= bounds.verticalMax; i += b.width {
		b.cells[i].liftVertical()
	}
	for i := bounds.principalMin; i <= bounds.principalMax; i += b.width + 1 {
		b.cells[i].liftPrincipal()
	}
	for i := bounds.antidiagonalMin; i <= bounds.antidiagonalMax; i += b.width - 1 {
		b.cells[i].liftAntiDiagonal()
		if b.width == 1 {
			break
		}
	}

	// the lifted lines cross other queens' lines, so restore the union
	for _, q := range b.queens.Data {
		b.attack(q)
	}

	return b
}

func (b *Board) attack(index int) {
	bounds := newBoundaries(index, b.width)
	for i := bounds.horizontalMin; i <= bounds.horizontalMax; i++ {
		b.cells[i].attackHorizontal()
	}
	for i := bounds.verticalMin; i <= bounds.verticalMax; i += b.width {
		b.cells[i].attackVertical()
	}
	for i := bounds.principalMin; i <= bounds.principalMax; i += b.width + 1 {
		b.cells[i].attackPrincipal()
	}
	for i := bounds.antidiagonalMin; i <= bounds.antidiagonalMax; i += b.width - 1 {
		b.cells[i].attackAntiDiagonal()
		if b.width == 1 {
			break
		}
	}
}

// takeQueens clears every cell and hands back the sorted queen indices.
func (b *Board) takeQueens() []int {
	for i := range b.cells {
		b.cells[i].clear()
	}
	queens := b.queens.Values()
	b.queens.Clear()
	return queens
}

const (
	QueenRune    rune = '█'
	AttackedRune rune = '▓'
	FreeRune     rune = '░'
)

var lineal = []rune("0123456789abcdefghijklmnopqrstuvwxyz")

func (b *Board) String() string {
	sb := strings.Builder{}

	sb.WriteString("\ny x")
	for i := 0; i < b.width; i++ {
		sb.WriteRune(lineal[i%len(lineal)])
	}
	sb.WriteString("\n")
	for i := 0; i < b.width; i++ {
		sb.WriteRune(lineal[i%len(lineal)])
		sb.WriteString("  ")
		for _, c := range b.cells[b.width*i : b.width*i+b.width] {
			switch {
			case c.IsQueen():
				sb.WriteRune(QueenRune)
			case c.IsAttacked():
				sb.WriteRune(AttackedRune)
			default:
				sb.WriteRune(FreeRune)
			}
		}
		sb.WriteRune('\n')
	}

	return sb.String()
}

// boundaries gives, for a given index, the minimum and maximum in-bounds
// cell index along each of the four lines through it. The steps are 1,
// width, width+1 and width-1 respectively.
type boundaries struct {
	horizontalMin   int
	horizontalMax   int
	verticalMin     int
	verticalMax     int
	principalMin    int
	principalMax    int
	antidiagonalMin int
	antidiagonalMax int
}

func newBoundaries(index, width int) boundaries {
	row := index / width
	column := index - row*width
	minDistanceToZero := min(row, column)
	minColumnDistanceToRight := min(row, width-column-1)
	minRowDistanceToLeft := min(column, width-row-1)
	minDistanceToWidth := min(width-row-1, width-column-1)

	horizontalMin := row * width
	verticalMin := column

	return boundaries{
		horizontalMin:   horizontalMin,
		horizontalMax:   horizontalMin + width - 1,
		verticalMin:     verticalMin,
		verticalMax:     verticalMin + width*(width-1),
		principalMin:    index - (width+1)*minDistanceToZero,
		principalMax:    index + (width+1)*minDistanceToWidth,
		antidiagonalMin: index - (width-1)*minColumnDistanceToRight,
		antidiagonalMax: index + (width-1)*minRowDistanceToLeft,
	}
}

// Line names one of the four attack lines through a cell.
type Line int

const (
	LineHorizontal Line = iota
	LineVertical
	LinePrincipal
	LineAntiDiagonal
)

// LineScan walks the four attack lines through an index in fixed order:
// horizontal, vertical, principal diagonal, antidiagonal, each clipped to
// board bounds.
type LineScan struct {
	board   *Board
	bounds  boundaries
	line    Line
	index   int
	emitted Line
	done    bool
}

// TraverseLines produces a restartable scan over the cells attacked from
// the given index.
//
// A board of width 8 yields, for index 0: 0..7, then 0,8,..,56, then
// 0,9,..,63, then 0.
func (b *Board) TraverseLines(index int) *LineScan {
	s := &LineScan{
		board:  b,
		bounds: newBoundaries(index, b.width),
	}
	s.Reset()
	return s
}

func (s *LineScan) Reset() {
	s.line = LineHorizontal
	s.index = s.bounds.horizontalMin
	s.done = false
}

// Line reports which attack line the cell returned by the last Next call
// lies on.
func (s *LineScan) Line() Line {
	return s.emitted
}

func (s *LineScan) Next() (int, Cell, bool) {
	if s.done {
		return 0, 0, false
	}

	index := s.index
	s.emitted = s.line
	s.advance()

	return index, s.board.cells[index], true
}

func (s *LineScan) advance() {
	width := s.board.width
	switch s.line {
	case LineHorizontal:
		if s.index < s.bounds.horizontalMax {
			s.index++
		} else {
			s.line = LineVertical
			s.index = s.bounds.verticalMin
		}
	case LineVertical:
		if s.index < s.bounds.verticalMax {
			s.index += width
		} else {
			s.line = LinePrincipal
			s.index = s.bounds.principalMin
		}
	case LinePrincipal:
		if s.index < s.bounds.principalMax {
			s.index += width + 1
		} else {
			s.line = LineAntiDiagonal
			s.index = s.bounds.antidiagonalMin
		}
	case LineAntiDiagonal:
		if s.index < s.bounds.antidiagonalMax && width > 1 {
			s.index += width - 1
		} else {
			s.done = true
		}
	}
}
