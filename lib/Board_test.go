package lib

import "testing"

func TestToggleWorks(t *testing.T) {
	board := NewBoard(8).Toggle(0)

	if !board.IsQueen(0) {
		t.Fatal("queen not placed")
	}
	for _, index := range []int{1, 7, 8, 56, 9, 63} {
		if !board.Cell(index).IsAttacked() {
			t.Errorf("cell %d not attacked", index)
		}
	}
	if board.Cell(10).IsAttacked() {
		t.Error("cell 10 should be free")
	}
}

func TestToggleRemovesQueen(t *testing.T) {
	board := NewBoard(8).Toggle(0).Toggle(0)

	if !board.IsEmpty() {
		t.Fatal("queen not removed")
	}
	for i := 0; i < 64; i++ {
		if board.Cell(i).IsAttacked() {
			t.Fatalf("cell %d still attacked", i)
		}
	}
}

func TestToggleNoOpOnAttackedCell(t *testing.T) {
	board := NewBoard(8).Toggle(0)

	// cell 7 is on the queen's row
	board.Toggle(7)
	if board.IsQueen(7) {
		t.Fatal("queen placed on attacked cell")
	}
	if got := board.queens.Len(); got != 1 {
		t.Fatalf("expected 1 queen, got %d", got)
	}
}

func TestRemoveKeepsCrossingAttacks(t *testing.T) {
	// queens 0 and 12 do not attack each other; queen 12's row crosses
	// queen 0's principal diagonal at cell 9
	board := NewBoard(8).Toggle(0).Toggle(12)

	if !board.Cell(9).IsAttackedHorizontal() || !board.Cell(9).IsAttackedPrincipal() {
		t.Fatal("cell 9 should be covered by both queens")
	}

	board.Toggle(12)
	if board.Cell(9).IsAttackedHorizontal() {
		t.Error("cell 9 horizontal attack not lifted")
	}
	if !board.Cell(9).IsAttackedPrincipal() {
		t.Error("cell 9 principal attack lost on removal")
	}
}

// recomputes the expected attack flags from scratch and compares them with
// the incrementally maintained cells.
func checkAttackInvariant(t *testing.T, board *Board) {
	t.Helper()

	width := board.Width()
	expected := make([]Cell, width*width)
	for _, q := range board.SortedQueens() {
		expected[q].putQueen()
		bounds := newBoundaries(q, width)
		for i := bounds.horizontalMin; i <= bounds.horizontalMax; i++ {
			expected[i].attackHorizontal()
		}
		for i := bounds.verticalMin; i <= bounds.verticalMax; i += width {
			expected[i].attackVertical()
		}
		for i := bounds.principalMin; i <= bounds.principalMax; i += width + 1 {
			expected[i].attackPrincipal()
		}
		for i := bounds.antidiagonalMin; i <= bounds.antidiagonalMax; i += width - 1 {
			expected[i].attackAntiDiagonal()
		}
	}

	queens := 0
	for i, want := range expected {
		if got := board.Cell(i); got != want {
			t.Fatalf("cell %d: got %08b, want %08b", i, got, want)
		}
		if want.IsQueen() {
			queens++
		}
	}
	if got := len(board.SortedQueens()); got != queens {
		t.Fatalf("queen set size %d does not match %d flagged cells", got, queens)
	}
}

func TestAttackInvariantAfterToggles(t *testing.T) {
	board := NewBoard(8)
	for _, index := range []int{0, 12, 25, 39, 12, 0, 54, 3, 39, 17} {
		board.Toggle(index)
		checkAttackInvariant(t, board)
	}
}

func TestAvailableAscending(t *testing.T) {
	board := NewBoard(4).Toggle(5)

	available := board.Available()
	if len(available) == 0 {
		t.Fatal("no available cells")
	}
	for i := 1; i < len(available); i++ {
		if available[i-1] >= available[i] {
			t.Fatalf("available not ascending: %v", available)
		}
	}
	for _, index := range available {
		if !board.Cell(index).IsFree() {
			t.Fatalf("cell %d not free", index)
		}
	}
}

func TestIsSolved(t *testing.T) {
	board := NewBoard(4)
	for _, q := range []int{1, 7, 8, 14} {
		board.Toggle(q)
	}

	if !board.IsSolved() {
		t.Fatal("a full non-attacking placement should be solved")
	}
	if got, want := len(board.SortedQueens()), 4; got != want {
		t.Fatalf("got %d queens, want %d", got, want)
	}
}

func TestClear(t *testing.T) {
	board := NewBoard(5).Toggle(7).Toggle(15)

	board.Clear()
	if !board.IsEmpty() {
		t.Fatal("board not empty after clear")
	}
	if got, want := len(board.Available()), 25; got != want {
		t.Fatalf("got %d free cells, want %d", got, want)
	}
}

func TestToggleWithPair(t *testing.T) {
	board := NewBoard(8).ToggleWithPair(2, 1)

	if !board.IsQueen(10) {
		t.Fatal("expected queen at index 10")
	}
}

func TestCloneIsDetached(t *testing.T) {
	board := NewBoard(8).Toggle(0)
	clone := board.Clone()

	if !board.Equal(clone) {
		t.Fatal("clone differs from original")
	}

	clone.Toggle(12)
	if board.Equal(clone) {
		t.Fatal("clone shares state with original")
	}
	if board.IsQueen(12) {
		t.Fatal("original mutated through clone")
	}
}

func TestBoundaryCases(t *testing.T) {
	check := func(index, width int, expected [8]int) {
		t.Helper()
		computed := newBoundaries(index, width)
		got := [8]int{
			computed.horizontalMin, computed.horizontalMax,
			computed.verticalMin, computed.verticalMax,
			computed.principalMin, computed.principalMax,
			computed.antidiagonalMin, computed.antidiagonalMax,
		}
		if got != expected {
			t.Fatalf("index %d width %d: got %v, want %v", index, width, got, expected)
		}
	}

	check(0, 8, [8]int{0, 7, 0, 56, 0, 63, 0, 0})
	check(7, 8, [8]int{0, 7, 7, 63, 7, 7, 7, 56})
	check(56, 8, [8]int{56, 63, 0, 56, 56, 56, 7, 56})
	check(63, 8, [8]int{56, 63, 7, 63, 0, 63, 63, 63})
	check(8, 8, [8]int{8, 15, 0, 56, 8, 62, 1, 8})
	check(50, 8, [8]int{48, 55, 2, 58, 32, 59, 15, 57})
	check(37, 8, [8]int{32, 39, 5, 61, 1, 55, 23, 58})
	check(0, 9, [8]int{0, 8, 0, 72, 0, 80, 0, 0})
	check(8, 9, [8]int{0, 8, 8, 80, 8, 8, 8, 72})
	check(72, 9, [8]int{72, 80, 0, 72, 72, 72, 8, 72})
	check(80, 9, [8]int{72, 80, 8, 80, 0, 80, 80, 80})
	check(40, 9, [8]int{36, 44, 4, 76, 0, 80, 8, 72})
	check(30, 9, [8]int{27, 35, 3, 75, 0, 80, 6, 54})
	check(31, 9, [8]int{27, 35, 4, 76, 1, 71, 7, 63})
	check(32, 9, [8]int{27, 35, 5, 77, 2, 62, 8, 72})
	check(41, 9, [8]int{36, 44, 5, 77, 1, 71, 17, 73})
	check(50, 9, [8]int{45, 53, 5, 77, 0, 80, 26, 74})
	check(49, 9, [8]int{45, 53, 4, 76, 9, 79, 17, 73})
	check(48, 9, [8]int{45, 53, 3, 75, 18, 78, 8, 72})
	check(39, 9, [8]int{36, 44, 3, 75, 9, 79, 7, 63})
	check(2, 9, [8]int{0, 8, 2, 74, 2, 62, 2, 18})
	check(52, 9, [8]int{45, 53, 7, 79, 2, 62, 44, 76})
}

func TestTraverseLinesOrder(t *testing.T) {
	expected := []int{
		0, 1, 2, 3, 4, 5, 6, 7,
		0, 8, 16, 24, 32, 40, 48, 56,
		0, 9, 18, 27, 36, 45, 54, 63,
		0,
	}
	lines := []Line{
		LineHorizontal, LineHorizontal, LineHorizontal, LineHorizontal,
		LineHorizontal, LineHorizontal, LineHorizontal, LineHorizontal,
		LineVertical, LineVertical, LineVertical, LineVertical,
		LineVertical, LineVertical, LineVertical, LineVertical,
		LinePrincipal, LinePrincipal, LinePrincipal, LinePrincipal,
		LinePrincipal, LinePrincipal, LinePrincipal, LinePrincipal,
		LineAntiDiagonal,
	}

	scan := NewBoard(8).TraverseLines(0)
	for i, want := range expected {
		index, _, ok := scan.Next()
		if !ok {
			t.Fatalf("scan ended early at %d", i)
		}
		if index != want {
			t.Fatalf("position %d: got index %d, want %d", i, index, want)
		}
		if scan.Line() != lines[i] {
			t.Fatalf("position %d: got line %d, want %d", i, scan.Line(), lines[i])
		}
	}
	if _, _, ok := scan.Next(); ok {
		t.Fatal("scan should be exhausted")
	}
}

func TestTraverseLinesRestart(t *testing.T) {
	scan := NewBoard(8).TraverseLines(50)

	first := []int{}
	for {
		index, _, ok := scan.Next()
		if !ok {
			break
		}
		first = append(first, index)
	}

	scan.Reset()
	for i := 0; ; i++ {
		index, _, ok := scan.Next()
		if !ok {
			if i != len(first) {
				t.Fatalf("restarted scan ended at %d, want %d", i, len(first))
			}
			break
		}
		if index != first[i] {
			t.Fatalf("restarted scan diverged at %d: got %d, want %d", i, index, first[i])
		}
	}
}

func TestIndexSet(t *testing.T) {
	set := IndexSet{}
	for _, v := range []int{5, 1, 9, 5, 1} {
		set.Add(v)
	}

	if got, want := set.Len(), 3; got != want {
		t.Fatalf("got %d values, want %d", got, want)
	}
	if got := set.Values(); got[0] != 1 || got[1] != 5 || got[2] != 9 {
		t.Fatalf("values not sorted: %v", got)
	}

	set.Remove(5)
	if set.Contains(5) {
		t.Fatal("value 5 not removed")
	}
	if !set.Contains(1) || !set.Contains(9) {
		t.Fatal("unrelated values lost on removal")
	}
}
