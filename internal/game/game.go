// Package game runs one Tiny Hero session: the title screen, the pixel
// editor, the scrolling stage and the result screen. It is driven one tick at
// a time by the platform layer and never touches the terminal directly.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tinyhero/internal/config"
	"github.com/vovakirdan/tinyhero/internal/core"
	"github.com/vovakirdan/tinyhero/internal/grid"
	"github.com/vovakirdan/tinyhero/internal/stage"
)

// Scene identifies the active screen.
type Scene uint8

const (
	SceneTitle Scene = iota
	SceneEdit
	ScenePlay
	SceneResult
)

var sceneNames = [...]string{
	SceneTitle:  "title",
	SceneEdit:   "edit",
	ScenePlay:   "play",
	SceneResult: "result",
}

func (s Scene) String() string {
	if int(s) < len(sceneNames) {
		return sceneNames[s]
	}
	return "unknown"
}

// Minimum terminal size for the play field.
const (
	MinWidth  = 60
	MinHeight = 20
)

// baseTickRate is the rate that stage speeds and display tick counts are expressed in.
const baseTickRate = 60

// RunSummary describes one finished stage attempt.
type RunSummary struct {
	Stage           int
	Cleared         bool
	RemainingPixels int
	TotalPixels     int
	Pattern         grid.Grid // shape the player departed with
	Seed            int64
	Ticks           uint64 // ticks spent in the play scene
}

// Game is a Tiny Hero session.
type Game struct {
	cfg    config.Config
	logger *log.Logger
	rng    *rand.Rand
	seed   int64

	tick     uint64
	tickRate int
	screenW  int
	screenH  int
	tooSmall bool
	paused   bool

	scene  Scene
	edit   editState
	play   playState
	result resultState

	best      int // highest stage cleared this session
	summaries []RunSummary
}

// New creates a game using cfg. A nil logger discards game events.
func New(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the game identifier used by storage.
func (g *Game) ID() string {
	return "tinyhero"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tiny Hero"
}

// Reset starts a fresh session on the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = baseTickRate
	}
	g.paused = false
	g.best = 0
	g.summaries = nil
	g.edit = editState{}
	g.play = playState{}
	g.result = resultState{}
	g.scene = SceneTitle

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.logger.Debug("session reset", "seed", cfg.Seed, "tick_rate", g.tickRate)
}

// Resize updates the screen size without restarting the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinWidth || h < MinHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.scene == ScenePlay && in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.scene {
	case SceneTitle:
		if in.Has(core.ActionConfirm) {
			g.enterEdit(EditParams{Stage: 1, TotalPixels: g.budgetFor(1)})
		}
	case SceneEdit:
		g.stepEdit(in)
	case ScenePlay:
		g.stepPlay()
	case SceneResult:
		g.stepResult(in)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.best,
		GameOver: g.scene == SceneResult && !g.result.params.Cleared,
		Paused:   g.paused || g.tooSmall,
	}
}

// Scene returns the active screen.
func (g *Game) Scene() Scene {
	return g.scene
}

// TakeSummaries returns the stage attempts finished since the last call.
func (g *Game) TakeSummaries() []RunSummary {
	out := g.summaries
	g.summaries = nil
	return out
}

// budgetFor returns the starting pixel budget for a stage.
func (g *Game) budgetFor(n int) int {
	return min(stage.PixelsForStage(n), g.cfg.Pixels.Max)
}

// ticks converts a count at baseTickRate to the running tick rate.
func (g *Game) ticks(n int) int {
	if n <= 0 {
		return 0
	}
	return max(1, n*g.tickRate/baseTickRate)
}

// scrollStep is how far the course moves in one tick at the given speed.
func (g *Game) scrollStep(speed float64) float64 {
	return speed * g.cfg.Display.ScrollScale * baseTickRate / float64(g.tickRate)
}
