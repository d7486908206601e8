package snake

// Lifecycle is the coarse state of a game.
type Lifecycle uint8

const (
	StateLife       Lifecycle = iota // normal play
	StatePause                       // simulation and timer frozen, arrows edit settings
	StateLastChance                  // one tick of grace after hitting something
	StateGameOver                    // terminal until reset
)

// Valid reports whether l is a known lifecycle value.
func (l Lifecycle) Valid() bool {
	return l <= StateGameOver
}

func (l Lifecycle) String() string {
	switch l {
	case StateLife:
		return "life"
	case StatePause:
		return "pause"
	case StateLastChance:
		return "last_chance"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Record is the complete, persistable state of one game.
// Timestamps are Unix seconds truncated to 32 bits.
type Record struct {
	Body         Body
	Current      Direction // direction used by the last step
	Next         Direction // requested direction, applied only if orthogonal
	Fruit        Cell
	State        Lifecycle
	Endless      bool
	TimerStart   uint32 // when the running clock was (re)started
	TimerStopped uint32 // elapsed seconds captured at the last freeze
}

// Score is the number of fruits eaten.
func (r *Record) Score() int {
	return int(r.Body.Len) - StartLen
}

// Won reports whether the record is a finished, winning game.
func (r *Record) Won() bool {
	return r.State == StateGameOver && r.Body.Len >= WinLen
}

// Percent is the share of the winnable fruits eaten so far.
func (r *Record) Percent() float64 {
	return float64(r.Score()) / 4.57
}

// Result summarizes a finished game.
type Result struct {
	Score   int
	Length  int
	Elapsed uint32 // seconds
	Won     bool
	Endless bool
}

// Result returns the summary of the record as it stands.
func (r *Record) Result() Result {
	return Result{
		Score:   r.Score(),
		Length:  int(r.Body.Len),
		Elapsed: r.TimerStopped,
		Won:     r.Won(),
		Endless: r.Endless,
	}
}
