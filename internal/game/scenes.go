package game

import (
	"github.com/vovakirdan/tinyhero/internal/core"
	"github.com/vovakirdan/tinyhero/internal/gimmick"
	"github.com/vovakirdan/tinyhero/internal/grid"
	"github.com/vovakirdan/tinyhero/internal/stage"
)

// EditParams opens the pixel editor.
type EditParams struct {
	Stage       int
	TotalPixels int
}

// PlayParams starts a stage with the shape built in the editor.
type PlayParams struct {
	Grid        grid.Grid
	Stage       int
	TotalPixels int
	Course      *stage.Stage
}

// ResultParams opens the result screen.
type ResultParams struct {
	Cleared         bool
	Stage           int
	TotalPixels     int
	RemainingPixels int
	NewPixels       int
}

type editState struct {
	params EditParams
	grid   grid.Grid
	cursor int // cell index under the cursor
}

type playState struct {
	params PlayParams
	grid   grid.Grid
	scroll float64
	ticks  uint64

	changeTicks int          // pause after a gimmick, counting down
	changes     grid.Changes // cells highlighted during the pause
	last        gimmick.Kind

	finishTicks int // delay before the result screen, counting down
	cleared     bool
	dead        bool

	alert Alert
	log   *EventLog
}

type resultState struct {
	params ResultParams
	flavor string
}

// enterEdit opens the editor with an empty grid.
func (g *Game) enterEdit(p EditParams) {
	g.edit = editState{params: p, cursor: grid.Index(grid.RowMiddle, 1)}
	g.scene = SceneEdit
	g.logger.Debug("edit", "stage", p.Stage, "pixels", p.TotalPixels)
}

func (g *Game) stepEdit(in core.InputFrame) {
	e := &g.edit
	row, col := e.cursor/grid.Size, e.cursor%grid.Size

	switch {
	case in.Has(core.ActionUp):
		row = max(row-1, 0)
	case in.Has(core.ActionDown):
		row = min(row+1, grid.Size-1)
	case in.Has(core.ActionLeft):
		col = max(col-1, 0)
	case in.Has(core.ActionRight):
		col = min(col+1, grid.Size-1)
	}
	e.cursor = grid.Index(row, col)

	if in.Has(core.ActionToggle) {
		g.toggleCell(e.cursor)
	}
	if in.Has(core.ActionBack) {
		g.scene = SceneTitle
		return
	}
	if in.Has(core.ActionConfirm) {
		g.depart()
	}
}

// toggleCell flips a cell, refusing to exceed the pixel budget.
func (g *Game) toggleCell(i int) bool {
	e := &g.edit
	if !e.grid.Get(i) && grid.Count(e.grid) >= e.params.TotalPixels {
		return false
	}
	e.grid = e.grid.Toggle(i)
	return true
}

// depart generates the course and starts the stage. It needs at least one pixel.
func (g *Game) depart() bool {
	e := g.edit
	if grid.Count(e.grid) < 1 {
		return false
	}

	course, err := stage.Course(g.cfg.StageParams(), g.seed, e.params.Stage)
	if err != nil {
		g.logger.Error("generate stage", "stage", e.params.Stage, "error", err)
		return false
	}
	g.logger.Debug("stage generated",
		"stage", course.Number,
		"gimmicks", len(course.Placements),
		"length", course.Length,
		"speed", course.Speed,
	)

	g.enterPlay(PlayParams{
		Grid:        e.grid,
		Stage:       e.params.Stage,
		TotalPixels: e.params.TotalPixels,
		Course:      course,
	})
	return true
}

func (g *Game) enterPlay(p PlayParams) {
	d := g.cfg.Display
	g.play = playState{
		params: p,
		grid:   p.Grid,
		log:    NewEventLog(d.LogLines, g.ticks(d.LogTicks)),
	}
	g.paused = false
	g.scene = ScenePlay
}

func (g *Game) stepPlay() {
	p := &g.play
	p.ticks++
	p.log.Tick()
	if p.alert.ttl > 0 {
		p.alert.ttl--
	}

	if p.finishTicks > 0 {
		p.finishTicks--
		if p.finishTicks == 0 {
			g.finishStage()
		}
		return
	}
	if p.cleared || p.dead {
		return
	}

	if p.changeTicks > 0 {
		p.changeTicks--
		if p.changeTicks == 0 {
			g.settleChange()
		}
		return
	}

	course := p.params.Course
	p.scroll += g.scrollStep(course.Speed)

	if pl, ok := course.Next(p.scroll); ok {
		g.trigger(pl.Kind)
		return
	}

	if course.Cleared(p.scroll) {
		p.cleared = true
		p.finishTicks = g.ticks(g.cfg.Display.ClearTicks)
		g.logger.Debug("stage cleared", "stage", p.params.Stage, "remaining", grid.Count(p.grid))
		if p.finishTicks == 0 {
			g.finishStage()
		}
	}
}

// trigger resolves one gimmick and starts the change pause.
func (g *Game) trigger(k gimmick.Kind) {
	p := &g.play
	res := gimmick.Apply(k, p.grid, g.rng)
	p.grid = res.Grid
	p.last = k
	p.changes = grid.Diff(res.OldGrid, res.Grid)

	color := core.ColorWhite
	if info, ok := gimmick.Lookup(k); ok {
		color = info.Color
	}
	p.alert = Alert{
		Text:  gimmick.AlertText(k, res.OldGrid, res.Grid),
		Color: color,
		ttl:   g.ticks(g.cfg.Display.AlertTicks),
	}
	p.log.Add(res.LogText)

	g.logger.Debug("gimmick",
		"stage", p.params.Stage,
		"kind", k,
		"scroll", p.scroll,
		"before", res.OldGrid.Compact(),
		"after", res.Grid.Compact(),
	)

	p.changeTicks = g.ticks(g.cfg.Display.ChangeTicks)
	if p.changeTicks == 0 {
		g.settleChange()
	}
}

// settleChange ends the change pause and checks for death.
func (g *Game) settleChange() {
	p := &g.play
	p.changes = grid.Changes{}
	if grid.Count(p.grid) > 0 {
		return
	}

	p.dead = true
	p.finishTicks = g.ticks(g.cfg.Display.DeathTicks)
	g.logger.Debug("hero lost", "stage", p.params.Stage, "last_gimmick", p.last)
	if p.finishTicks == 0 {
		g.finishStage()
	}
}

// finishStage records the attempt and moves to the result screen.
func (g *Game) finishStage() {
	p := g.play
	remaining := grid.Count(p.grid)

	rp := ResultParams{
		Cleared:         p.cleared,
		Stage:           p.params.Stage,
		TotalPixels:     p.params.TotalPixels,
		RemainingPixels: remaining,
	}
	if p.cleared {
		rp.NewPixels = g.cfg.Pixels.PerClear
		g.best = max(g.best, p.params.Stage)
	}

	g.summaries = append(g.summaries, RunSummary{
		Stage:           p.params.Stage,
		Cleared:         p.cleared,
		RemainingPixels: remaining,
		TotalPixels:     p.params.TotalPixels,
		Pattern:         p.params.Grid,
		Seed:            g.seed,
		Ticks:           p.ticks,
	})
	g.logger.Info("stage finished", "stage", rp.Stage, "cleared", rp.Cleared, "remaining", remaining)

	g.enterResult(rp)
}

func (g *Game) enterResult(p ResultParams) {
	texts := deathTexts
	if p.Cleared {
		texts = clearTexts
	}
	g.result = resultState{params: p, flavor: texts[g.rng.Intn(len(texts))]}
	g.paused = false
	g.scene = SceneResult
}

func (g *Game) stepResult(in core.InputFrame) {
	r := g.result.params

	if in.Has(core.ActionBack) {
		g.scene = SceneTitle
		return
	}

	if r.Cleared {
		if in.Has(core.ActionConfirm) {
			g.enterEdit(EditParams{Stage: r.Stage + 1, TotalPixels: g.nextBudget(r)})
		}
		return
	}

	if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
		g.enterEdit(EditParams{Stage: r.Stage, TotalPixels: r.TotalPixels})
	}
}

// nextBudget is the pixel budget after a clear.
func (g *Game) nextBudget(r ResultParams) int {
	return min(stage.NextBudget(r.TotalPixels, r.NewPixels), g.cfg.Pixels.Max)
}
