package snake

import (
	"time"
)

// fakeClock is a manually advanced wall clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// cueRecorder counts played cues.
type cueRecorder struct {
	failures, eats, flourishes int
	backlightOn, backlightAuto int
}

func (r *cueRecorder) PlayFailure()      { r.failures++ }
func (r *cueRecorder) PlayEatCue()       { r.eats++ }
func (r *cueRecorder) PlayFlourish()     { r.flourishes++ }
func (r *cueRecorder) ForceBacklightOn() { r.backlightOn++ }
func (r *cueRecorder) BacklightAuto()    { r.backlightAuto++ }

// memStore keeps the last saved record.
type memStore struct {
	saves int
	last  Record
	err   error
}

func (s *memStore) Save(rec Record) error {
	s.saves++
	s.last = rec
	return s.err
}

// fakeTicks records tick source commands.
type fakeTicks struct {
	running bool
	period  time.Duration
	starts  int
	stops   int
}

func (f *fakeTicks) Start(period time.Duration) {
	f.running = true
	f.period = period
	f.starts++
}

func (f *fakeTicks) Stop() {
	f.running = false
	f.stops++
}

type fixture struct {
	game  *Game
	clock *fakeClock
	cues  *cueRecorder
	store *memStore
}

func newFixture() fixture {
	f := fixture{
		clock: newFakeClock(),
		cues:  &cueRecorder{},
		store: &memStore{},
	}
	f.game = New(
		WithClock(f.clock.Now),
		WithNotifier(f.cues),
		WithStore(f.store),
		WithSeed(42),
	)
	f.game.NewGame()
	return f
}

// setBody replaces the live snake, head first.
func (f fixture) setBody(cells ...Cell) {
	f.game.rec.Body.Len = uint16(len(cells))
	copy(f.game.rec.Body.Cells[:], cells)
}

func (f fixture) setMovement(d Direction) {
	f.game.rec.Current = d
	f.game.rec.Next = d
}

// hasDuplicates reports whether the live body repeats a cell.
func hasDuplicates(b *Body) bool {
	seen := make(map[Cell]bool)
	for _, p := range b.Live() {
		if seen[p] {
			return true
		}
		seen[p] = true
	}
	return false
}
