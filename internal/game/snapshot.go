package game

import "github.com/vovakirdan/tinyhero/internal/grid"

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Scene       Scene
	Stage       int
	TotalPixels int
	Grid        grid.Grid // editor grid, or the hero during play
	Scroll      float64
	Remaining   int // gimmicks not yet triggered
	Best        int
	Cleared     bool
	Dead        bool
	Log         []string
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.tick,
		Scene: g.scene,
		Best:  g.best,
	}

	switch g.scene {
	case SceneEdit:
		s.Stage = g.edit.params.Stage
		s.TotalPixels = g.edit.params.TotalPixels
		s.Grid = g.edit.grid
	case ScenePlay:
		p := g.play
		s.Stage = p.params.Stage
		s.TotalPixels = p.params.TotalPixels
		s.Grid = p.grid
		s.Scroll = p.scroll
		s.Remaining = p.params.Course.Remaining()
		s.Cleared = p.cleared
		s.Dead = p.dead
		s.Log = p.log.Lines()
	case SceneResult:
		r := g.result.params
		s.Stage = r.Stage
		s.TotalPixels = r.TotalPixels
		s.Cleared = r.Cleared
		s.Dead = !r.Cleared
	}

	return s
}
