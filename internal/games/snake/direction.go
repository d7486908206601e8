package snake

// Direction is a movement direction. The encoding is load-bearing: two
// directions are orthogonal exactly when their sum is odd, so any reordering
// must keep Up/Down and Left/Right on equal parity.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// IsOrthogonal reports whether a and b are at a right angle to each other.
// Equal or opposite directions have an even sum.
func IsOrthogonal(a, b Direction) bool {
	return (a+b)%2 == 1
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Valid reports whether d is one of the four encoded directions.
func (d Direction) Valid() bool {
	return d <= DirLeft
}

// Step returns the neighbour of c in direction d. Moving off the top or left
// edge wraps the coordinate to 255.
func (d Direction) Step(c Cell) Cell {
	switch d {
	case DirUp:
		c.Y--
	case DirRight:
		c.X++
	case DirDown:
		c.Y++
	case DirLeft:
		c.X--
	}
	return c
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
