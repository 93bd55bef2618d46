package lib

// NormalizedBoard wraps a board with a clockwise quarter-turn count in
// [0,3], tracking how far it sits from the caller's original orientation.
// The canonical orientation is the rotation whose first queen, under the
// polar scan order, has the smallest rank; ties prefer fewer rotations.
type NormalizedBoard struct {
	*Board
	rotations uint
}

// Normalize wraps the board and rotates it into its canonical orientation.
func Normalize(board *Board) *NormalizedBoard {
	n := &NormalizedBoard{Board: board}
	return n.normalize()
}

func (n *NormalizedBoard) Rotations() uint {
	return n.rotations
}

// Merge keeps the argument's board but sums both rotation counts mod 4.
func (n *NormalizedBoard) Merge(rhs *NormalizedBoard) *NormalizedBoard {
	return &NormalizedBoard{
		Board:     rhs.Board,
		rotations: (n.rotations + rhs.rotations) % 4,
	}
}

// ToBoard rotates back to the original orientation and unwraps the board.
func (n *NormalizedBoard) ToBoard() *Board {
	for r := (4 - n.rotations%4) % 4; r > 0; r-- {
		n.RotateClockwise()
	}
	n.rotations = 0
	return n.Board
}

// RotateClockwise re-indexes every queen a quarter turn clockwise. The
// board is rebuilt by re-toggling each queen into its new position, which
// re-derives all attack flags from scratch. Four applications compose to
// the identity.
func (n *NormalizedBoard) RotateClockwise() *NormalizedBoard {
	queens := n.takeQueens()
	width := n.width
	for _, q := range queens {
		truncated := q / width
		term := 1 + q - truncated*width
		n.Toggle(width*term - truncated - 1)
	}
	return n
}

func (n *NormalizedBoard) normalize() *NormalizedBoard {
	if n.IsEmpty() {
		return n
	}

	var ranks [4]int
	for d := range ranks {
		ranks[d] = n.polarRank()
		n.RotateClockwise()
	}

	var rotations uint
	if ranks[0] <= min(ranks[1], ranks[2], ranks[3]) {
		rotations = 0
	} else if ranks[1] <= min(ranks[2], ranks[3]) {
		rotations = 1
	} else if ranks[2] <= ranks[3] {
		rotations = 2
	} else {
		rotations = 3
	}

	for i := uint(0); i < rotations; i++ {
		n.RotateClockwise()
	}

	n.rotations = (n.rotations + rotations) % 4
	return n
}

// polarRank is the scan position of the first queen under the polar order.
// The board must not be empty.
func (n *NormalizedBoard) polarRank() int {
	scan := newPolarScan(n.width)
	for rank := 0; ; rank++ {
		index, ok := scan.Next()
		if !ok {
			return rank
		}
		if n.IsQueen(index) {
			return rank
		}
	}
}

// polarScan enumerates all board indices exactly once, in concentric
// square rings of increasing radius: for ring r it emits (0,r), walks down
// column r to row r, then walks left along row r back to column 0.
type polarScan struct {
	width  int
	column int
	row    int
	max    int
}

func newPolarScan(width int) *polarScan {
	return &polarScan{width: width}
}

func (p *polarScan) Next() (int, bool) {
	if p.max >= p.width {
		return 0, false
	}

	result := p.row*p.width + p.column

	if p.column == 0 {
		p.max++
		p.column = p.max
		p.row = 0
	} else if p.row < p.max {
		p.row++
	} else {
		p.column--
	}

	return result, true
}
