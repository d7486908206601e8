package snake

import "testing"

func TestCollidesWithFrame(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, false},
		{"bottom-right corner", Cell{30, 14}, false},
		{"right edge", Cell{31, 5}, true},
		{"bottom edge", Cell{5, 15}, true},
		{"wrapped left", DirLeft.Step(Cell{0, 5}), true},
		{"wrapped up", DirUp.Step(Cell{5, 0}), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CollidesWithFrame(tc.cell); got != tc.expected {
				t.Errorf("CollidesWithFrame(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestWrappedCoordinate(t *testing.T) {
	c := DirLeft.Step(Cell{0, 3})
	if c.X != 255 {
		t.Errorf("stepping left from x=0 gave x=%d, expected 255", c.X)
	}
}

func TestCellIndexRoundTrip(t *testing.T) {
	for i := 0; i < MaxLen; i++ {
		c := cellAt(i)
		if CollidesWithFrame(c) {
			t.Fatalf("cellAt(%d) = %v is off-board", i, c)
		}
		if c.index() != i {
			t.Fatalf("cellAt(%d).index() = %d", i, c.index())
		}
	}
}

func TestBoardConstants(t *testing.T) {
	if MaxLen != 465 {
		t.Errorf("MaxLen = %d, expected 465", MaxLen)
	}
	if WinLen != 464 {
		t.Errorf("WinLen = %d, expected 464", WinLen)
	}
}

func TestIsOrthogonal(t *testing.T) {
	tests := []struct {
		a, b     Direction
		expected bool
	}{
		{DirUp, DirRight, true},
		{DirUp, DirLeft, true},
		{DirDown, DirRight, true},
		{DirDown, DirLeft, true},
		{DirUp, DirDown, false},
		{DirLeft, DirRight, false},
		{DirUp, DirUp, false},
		{DirRight, DirRight, false},
	}

	for _, tc := range tests {
		if got := IsOrthogonal(tc.a, tc.b); got != tc.expected {
			t.Errorf("IsOrthogonal(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
		if got := IsOrthogonal(tc.b, tc.a); got != tc.expected {
			t.Errorf("IsOrthogonal(%v, %v) (reversed) = %v, expected %v", tc.b, tc.a, got, tc.expected)
		}
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
	}
}

func TestBodyAdvance(t *testing.T) {
	var b Body
	b.Len = 3
	b.Cells[0] = Cell{3, 1}
	b.Cells[1] = Cell{2, 1}
	b.Cells[2] = Cell{1, 1}

	b.Advance(Cell{4, 1})

	want := []Cell{{4, 1}, {3, 1}, {2, 1}}
	for i, c := range b.Live() {
		if c != want[i] {
			t.Errorf("cell %d = %v, expected %v", i, c, want[i])
		}
	}
	// The dropped tail stays in storage past Len.
	if b.Cells[3] != (Cell{1, 1}) {
		t.Errorf("stale cell = %v, expected {1 1}", b.Cells[3])
	}

	// Growing: bump Len first, the old tail stays visible.
	b.Len++
	b.Advance(Cell{5, 1})
	if b.Len != 4 || b.Cells[3] != (Cell{2, 1}) {
		t.Errorf("after growth tail = %v (len %d), expected {2 1} (len 4)", b.Cells[3], b.Len)
	}
}
