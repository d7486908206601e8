package snake

// Board geometry. The handheld display is 128×64 pixels with a 1 px frame and
// 4 px cells, which leaves a 31×15 playing field.
const (
	Width  = 31
	Height = 15

	// MaxLen is the number of cells on the board and the capacity of a Body.
	MaxLen = Width * Height

	// WinLen is the winning length. Both board dimensions are odd, so a
	// cycle-free body can never cover every cell; eating all but one fruit wins.
	WinLen = MaxLen - 1

	// StartLen is the length of a fresh snake; the score is Len - StartLen.
	StartLen = 7
)

// Cell is a board coordinate. x grows to the right, y grows downwards.
//
// Coordinates are unsigned bytes: stepping left from x=0 (or up from y=0)
// wraps to 255, which CollidesWithFrame reports as off-board. There is no
// separate negative check.
type Cell struct {
	X, Y uint8
}

// CollidesWithFrame reports whether c lies outside the board.
func CollidesWithFrame(c Cell) bool {
	return c.X > Width-1 || c.Y > Height-1
}

// index maps an on-board cell to 0..MaxLen-1 in row-major order.
func (c Cell) index() int {
	return int(c.X) + Width*int(c.Y)
}

// cellAt is the inverse of index.
func cellAt(i int) Cell {
	return Cell{X: uint8(i % Width), Y: uint8(i / Width)}
}
