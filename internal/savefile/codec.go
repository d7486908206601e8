// Package savefile persists a single snake record as a fixed-size binary blob.
//
// Layout, little-endian:
//
//	0     4  magic "SNK\x01"
//	4   930  465 cells, x then y
//	934   2  live length
//	936   1  current direction
//	937   1  requested direction
//	938   2  fruit x, y
//	940   1  lifecycle
//	941   1  endless (0 or 1)
//	942   4  timer start
//	946   4  timer stopped
package savefile

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vovakirdan/pocket-snake/internal/games/snake"
)

// RecordSize is the exact length of an encoded record.
const RecordSize = len(magic) + snake.MaxLen*2 + 2 + 1 + 1 + 2 + 1 + 1 + 4 + 4

const magic = "SNK\x01"

var (
	// ErrNoSave is returned by Load when there is no save file.
	ErrNoSave = errors.New("savefile: no saved game")
	// ErrCorrupt is returned when the file exists but cannot be decoded.
	ErrCorrupt = errors.New("savefile: corrupt record")
)

// Encode serializes rec, including stale cells past the live length.
func Encode(rec snake.Record) []byte {
	buf := make([]byte, 0, RecordSize)
	buf = append(buf, magic...)
	for _, c := range rec.Body.Cells {
		buf = append(buf, c.X, c.Y)
	}
	buf = binary.LittleEndian.AppendUint16(buf, rec.Body.Len)
	buf = append(buf, byte(rec.Current), byte(rec.Next))
	buf = append(buf, rec.Fruit.X, rec.Fruit.Y)
	buf = append(buf, byte(rec.State))
	var endless byte
	if rec.Endless {
		endless = 1
	}
	buf = append(buf, endless)
	buf = binary.LittleEndian.AppendUint32(buf, rec.TimerStart)
	buf = binary.LittleEndian.AppendUint32(buf, rec.TimerStopped)
	return buf
}

// Decode parses a record produced by Encode. Any structural problem is
// reported as ErrCorrupt.
func Decode(data []byte) (snake.Record, error) {
	var rec snake.Record
	if len(data) != RecordSize {
		return rec, fmt.Errorf("%w: size %d, expected %d", ErrCorrupt, len(data), RecordSize)
	}
	if string(data[:len(magic)]) != magic {
		return rec, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}

	p := data[len(magic):]
	for i := range rec.Body.Cells {
		rec.Body.Cells[i] = snake.Cell{X: p[2*i], Y: p[2*i+1]}
	}
	p = p[snake.MaxLen*2:]

	rec.Body.Len = binary.LittleEndian.Uint16(p)
	rec.Current = snake.Direction(p[2])
	rec.Next = snake.Direction(p[3])
	rec.Fruit = snake.Cell{X: p[4], Y: p[5]}
	rec.State = snake.Lifecycle(p[6])
	endless := p[7]
	rec.TimerStart = binary.LittleEndian.Uint32(p[8:])
	rec.TimerStopped = binary.LittleEndian.Uint32(p[12:])

	switch {
	case rec.Body.Len == 0 || rec.Body.Len > snake.WinLen:
		return rec, fmt.Errorf("%w: length %d", ErrCorrupt, rec.Body.Len)
	case snake.CollidesWithFrame(rec.Fruit):
		return rec, fmt.Errorf("%w: fruit at %d,%d", ErrCorrupt, rec.Fruit.X, rec.Fruit.Y)
	case !rec.Current.Valid() || !rec.Next.Valid():
		return rec, fmt.Errorf("%w: direction %d/%d", ErrCorrupt, rec.Current, rec.Next)
	case !rec.State.Valid():
		return rec, fmt.Errorf("%w: lifecycle %d", ErrCorrupt, rec.State)
	case endless > 1:
		return rec, fmt.Errorf("%w: endless flag %d", ErrCorrupt, endless)
	}
	for _, c := range rec.Body.Live() {
		if snake.CollidesWithFrame(c) {
			return rec, fmt.Errorf("%w: body cell at %d,%d", ErrCorrupt, c.X, c.Y)
		}
	}
	rec.Endless = endless == 1
	return rec, nil
}
