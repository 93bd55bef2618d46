package lib

// Cell packs the state of one board square: a queen flag and one attack
// flag per line through the square. A square is free iff no bit is set.
type Cell uint8

const (
	cellQueen Cell = 1 << iota
	cellHorizontal
	cellVertical
	cellPrincipal
	cellAntiDiagonal
)

func (c Cell) IsQueen() bool {
	return c&cellQueen == cellQueen
}

func (c Cell) IsAttacked() bool {
	return c != 0
}

func (c Cell) IsAttackedHorizontal() bool {
	return c&cellHorizontal == cellHorizontal
}

func (c Cell) IsAttackedVertical() bool {
	return c&cellVertical == cellVertical
}

func (c Cell) IsAttackedPrincipal() bool {
	return c&cellPrincipal == cellPrincipal
}

func (c Cell) IsAttackedAntiDiagonal() bool {
	return c&cellAntiDiagonal == cellAntiDiagonal
}

func (c Cell) IsFree() bool {
	return c == 0
}

func (c *Cell) clear() {
	*c = 0
}

func (c *Cell) putQueen() {
	*c |= cellQueen
}

func (c *Cell) removeQueen() {
	*c &^= cellQueen
}

func (c *Cell) attackHorizontal() {
	*c |= cellHorizontal
}

func (c *Cell) attackVertical() {
	*c |= cellVertical
}

func (c *Cell) attackPrincipal() {
	*c |= cellPrincipal
}

func (c *Cell) attackAntiDiagonal() {
	*c |= cellAntiDiagonal
}

func (c *Cell) liftHorizontal() {
	*c &^= cellHorizontal
}

func (c *Cell) liftVertical() {
	*c &^= cellVertical
}

func (c *Cell) liftPrincipal() {
	*c &^= cellPrincipal
}

func (c *Cell) liftAntiDiagonal() {
	*c &^= cellAntiDiagonal
}
