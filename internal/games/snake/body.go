package snake

// Body is the snake as a bounded sequence of cells, head at index 0.
//
// Cells has compile-time capacity MaxLen; only the first Len entries are live.
// Entries past Len are stale leftovers from earlier moves and are kept as-is
// so a saved record round-trips byte for byte.
type Body struct {
	Cells [MaxLen]Cell
	Len   uint16
}

// Head returns the first cell.
func (b *Body) Head() Cell {
	return b.Cells[0]
}

// Live returns the live cells, head first. The slice aliases the body.
func (b *Body) Live() []Cell {
	return b.Cells[:b.Len]
}

// Contains reports whether c is one of the live cells.
func (b *Body) Contains(c Cell) bool {
	for _, p := range b.Live() {
		if p == c {
			return true
		}
	}
	return false
}

// Advance shifts the live cells one slot towards the tail and writes head at
// index 0. The last live cell falls out of view unless Len was bumped first.
// Len must stay below MaxLen.
func (b *Body) Advance(head Cell) {
	copy(b.Cells[1:b.Len+1], b.Cells[:b.Len])
	b.Cells[0] = head
}
