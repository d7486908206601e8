package snake

// Snapshot is a read-only copy of the game taken once per loop iteration for
// presentation. It never aliases the live record.
type Snapshot struct {
	Record  Record
	Elapsed uint32 // seconds, live while running
	Steps   uint64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Record:  g.rec,
		Elapsed: g.Elapsed(),
		Steps:   g.steps,
	}
}

// Banner returns the overlay title for paused and finished games, or "" while
// the game is running.
func (s Snapshot) Banner() string {
	switch s.Record.State {
	case StatePause:
		return "Pause"
	case StateGameOver:
		if s.Record.Body.Len >= WinLen {
			return "You WON!"
		}
		return "Game Over"
	default:
		return ""
	}
}
