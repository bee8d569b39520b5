package game

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tinyhero/internal/config"
	"github.com/vovakirdan/tinyhero/internal/core"
	"github.com/vovakirdan/tinyhero/internal/gimmick"
	"github.com/vovakirdan/tinyhero/internal/grid"
	"github.com/vovakirdan/tinyhero/internal/stage"
)

func newTestGame(seed int64) *Game {
	g := New(config.Default(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// runUntil steps with no input until the scene changes to want.
func runUntil(t *testing.T, g *Game, want Scene) {
	t.Helper()
	for range 10000 {
		if g.Scene() == want {
			return
		}
		press(g)
	}
	t.Fatalf("scene %s never reached, stuck in %s", want, g.Scene())
}

func mustParse(t *testing.T, s string) grid.Grid {
	t.Helper()
	gr, err := grid.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return gr
}

func TestTitleStartsStageOne(t *testing.T) {
	g := newTestGame(1)
	if g.Scene() != SceneTitle {
		t.Fatalf("scene = %s, want title", g.Scene())
	}

	press(g, core.ActionConfirm)

	s := g.Snapshot()
	if s.Scene != SceneEdit || s.Stage != 1 || s.TotalPixels != 1 {
		t.Errorf("after start: scene %s stage %d pixels %d, want edit 1 1", s.Scene, s.Stage, s.TotalPixels)
	}
}

func TestEditRespectsBudget(t *testing.T) {
	g := newTestGame(1)
	g.enterEdit(EditParams{Stage: 3, TotalPixels: 2})

	press(g, core.ActionToggle) // center
	press(g, core.ActionUp)     // top middle
	press(g, core.ActionToggle) // second pixel
	press(g, core.ActionLeft)   // top left
	press(g, core.ActionToggle) // refused
	if got := grid.Count(g.Snapshot().Grid); got != 2 {
		t.Fatalf("pixels = %d, want 2", got)
	}
	if g.Snapshot().Grid.Get(0) {
		t.Error("third pixel should have been refused")
	}

	press(g, core.ActionRight)
	press(g, core.ActionToggle) // clear top middle
	press(g, core.ActionLeft)
	press(g, core.ActionToggle) // now allowed
	want := mustParse(t, "100/010/000")
	if got := g.Snapshot().Grid; got != want {
		t.Errorf("grid =\n%v\nwant\n%v", got, want)
	}
}

func TestEditCursorClamps(t *testing.T) {
	g := newTestGame(1)
	g.enterEdit(EditParams{Stage: 1, TotalPixels: 1})

	for range 5 {
		press(g, core.ActionUp)
		press(g, core.ActionLeft)
	}
	if g.edit.cursor != 0 {
		t.Errorf("cursor = %d, want 0", g.edit.cursor)
	}
	for range 5 {
		press(g, core.ActionDown)
		press(g, core.ActionRight)
	}
	if g.edit.cursor != grid.Cells-1 {
		t.Errorf("cursor = %d, want %d", g.edit.cursor, grid.Cells-1)
	}
}

func TestDepartNeedsAPixel(t *testing.T) {
	g := newTestGame(1)
	g.enterEdit(EditParams{Stage: 1, TotalPixels: 1})

	press(g, core.ActionConfirm)
	if g.Scene() != SceneEdit {
		t.Fatalf("departed with an empty grid")
	}

	press(g, core.ActionToggle)
	press(g, core.ActionConfirm)
	if g.Scene() != ScenePlay {
		t.Fatalf("scene = %s, want play", g.Scene())
	}
	if n := len(g.play.params.Course.Placements); n != stage.GimmickCount(1, 10) {
		t.Errorf("course has %d gimmicks, want %d", n, stage.GimmickCount(1, 10))
	}
}

func TestEditBackReturnsToTitle(t *testing.T) {
	g := newTestGame(1)
	g.enterEdit(EditParams{Stage: 4, TotalPixels: 4})
	press(g, core.ActionBack)
	if g.Scene() != SceneTitle {
		t.Errorf("scene = %s, want title", g.Scene())
	}
}

func playCourse(g *Game, pattern grid.Grid, st int, total int, placements ...stage.Placement) {
	length := 100.0
	if n := len(placements); n > 0 {
		length = placements[n-1].X + 100
	}
	g.enterPlay(PlayParams{
		Grid:        pattern,
		Stage:       st,
		TotalPixels: total,
		Course:      &stage.Stage{Number: st, Placements: placements, Length: length, Speed: 2},
	})
}

func TestDeathAndRetry(t *testing.T) {
	g := newTestGame(1)
	pattern := mustParse(t, "100/000/000")
	playCourse(g, pattern, 2, 2, stage.Placement{Kind: gimmick.Ceiling, X: 10})

	runUntil(t, g, SceneResult)

	st := g.State()
	if !st.GameOver {
		t.Error("GameOver should be set after death")
	}
	if st.Score != 0 {
		t.Errorf("Score = %d, want 0", st.Score)
	}

	sums := g.TakeSummaries()
	if len(sums) != 1 {
		t.Fatalf("got %d summaries, want 1", len(sums))
	}
	want := RunSummary{Stage: 2, TotalPixels: 2, Pattern: pattern, Seed: 1, Ticks: sums[0].Ticks}
	if sums[0] != want {
		t.Errorf("summary = %+v, want %+v", sums[0], want)
	}
	if len(g.TakeSummaries()) != 0 {
		t.Error("summaries should be drained")
	}

	press(g, core.ActionRestart)
	s := g.Snapshot()
	if s.Scene != SceneEdit || s.Stage != 2 || s.TotalPixels != 2 {
		t.Errorf("retry gave scene %s stage %d pixels %d, want edit 2 2", s.Scene, s.Stage, s.TotalPixels)
	}
	if grid.Count(s.Grid) != 0 {
		t.Error("retry should start from an empty grid")
	}
}

func TestDeathBackToTitle(t *testing.T) {
	g := newTestGame(1)
	playCourse(g, mustParse(t, "000/000/001"), 1, 1, stage.Placement{Kind: gimmick.Floor, X: 10})
	runUntil(t, g, SceneResult)

	press(g, core.ActionBack)
	if g.Scene() != SceneTitle {
		t.Errorf("scene = %s, want title", g.Scene())
	}
}

func TestClearAdvancesWithBudget(t *testing.T) {
	g := newTestGame(1)
	// The shield column blocks the enemy ahead.
	playCourse(g, mustParse(t, "000/001/000"), 1, 1, stage.Placement{Kind: gimmick.EnemyFront, X: 10})

	runUntil(t, g, SceneResult)

	st := g.State()
	if st.GameOver {
		t.Error("GameOver set after a clear")
	}
	if st.Score != 1 {
		t.Errorf("Score = %d, want 1", st.Score)
	}

	r := g.result.params
	if !r.Cleared || r.RemainingPixels != 1 || r.NewPixels != 1 {
		t.Errorf("result = %+v", r)
	}

	press(g, core.ActionConfirm)
	s := g.Snapshot()
	if s.Scene != SceneEdit || s.Stage != 2 || s.TotalPixels != 2 {
		t.Errorf("next stage gave scene %s stage %d pixels %d, want edit 2 2", s.Scene, s.Stage, s.TotalPixels)
	}
}

func TestBudgetCapsAtNine(t *testing.T) {
	g := newTestGame(1)
	g.enterResult(ResultParams{Cleared: true, Stage: 12, TotalPixels: 9, RemainingPixels: 3, NewPixels: 1})

	press(g, core.ActionConfirm)
	if s := g.Snapshot(); s.Stage != 13 || s.TotalPixels != 9 {
		t.Errorf("stage %d pixels %d, want 13 9", s.Stage, s.TotalPixels)
	}
}

func TestOneGimmickPerTick(t *testing.T) {
	g := newTestGame(1)
	playCourse(g, mustParse(t, "111/111/111"), 3, 9,
		stage.Placement{Kind: gimmick.Rotate, X: 2},
		stage.Placement{Kind: gimmick.Mirror, X: 2},
	)

	press(g) // scroll reaches 2, first gimmick fires
	if got := g.play.params.Course.Remaining(); got != 1 {
		t.Fatalf("remaining = %d after first tick, want 1", got)
	}
	if g.play.log.Len() != 1 {
		t.Errorf("log has %d lines, want 1", g.play.log.Len())
	}

	// The second one waits for the change pause to end.
	for range g.cfg.Display.ChangeTicks {
		press(g)
		if got := g.play.params.Course.Remaining(); got != 1 {
			t.Fatalf("second gimmick fired during the pause")
		}
	}
	press(g)
	if got := g.play.params.Course.Remaining(); got != 0 {
		t.Errorf("remaining = %d, want 0", got)
	}
}

func TestChangeHighlightClearsAfterPause(t *testing.T) {
	g := newTestGame(1)
	playCourse(g, mustParse(t, "110/010/000"), 2, 3, stage.Placement{Kind: gimmick.Ceiling, X: 2})

	press(g)
	if len(g.play.changes.Removed) != 2 {
		t.Fatalf("Removed = %v, want two cells", g.play.changes.Removed)
	}
	if !g.play.alert.Active() || !strings.Contains(g.play.alert.Text, "-2px") {
		t.Errorf("alert = %+v", g.play.alert)
	}

	for range g.cfg.Display.ChangeTicks {
		press(g)
	}
	if !g.play.changes.Empty() {
		t.Errorf("changes still highlighted: %+v", g.play.changes)
	}
}

func TestPauseStopsScrolling(t *testing.T) {
	g := newTestGame(1)
	playCourse(g, mustParse(t, "000/010/000"), 1, 1, stage.Placement{Kind: gimmick.Rotate, X: 500})

	press(g)
	before := g.Snapshot().Scroll

	if st := press(g, core.ActionPause); !st.State.Paused {
		t.Fatal("Paused not reported")
	}
	press(g)
	press(g)
	if got := g.Snapshot().Scroll; got != before {
		t.Errorf("scroll moved while paused: %f -> %f", before, got)
	}

	press(g, core.ActionPause)
	if got := g.Snapshot().Scroll; got <= before {
		t.Errorf("scroll did not resume: %f", got)
	}
}

func TestTooSmallFreezes(t *testing.T) {
	g := New(config.Default(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Error("small window should report Paused")
	}
	press(g, core.ActionConfirm)
	if g.Scene() != SceneTitle {
		t.Error("input handled in a too-small window")
	}

	g.Resize(80, 24)
	press(g, core.ActionConfirm)
	if g.Scene() != SceneEdit {
		t.Error("input ignored after resize")
	}
}

func TestTickRateScaling(t *testing.T) {
	g := New(config.Default(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})

	if got := g.ticks(12); got != 6 {
		t.Errorf("ticks(12) at 30fps = %d, want 6", got)
	}
	if got := g.scrollStep(2); got != 4 {
		t.Errorf("scrollStep(2) at 30fps = %f, want 4", got)
	}
	if got := g.ticks(1); got != 1 {
		t.Errorf("ticks(1) at 30fps = %d, want 1", got)
	}
}

// playSession drives a full session with a fixed input script.
func playSession(seed int64) []Snapshot {
	g := newTestGame(seed)
	script := map[int][]core.Action{
		0: {core.ActionConfirm},
		1: {core.ActionToggle},
		2: {core.ActionConfirm},
	}

	var snaps []Snapshot
	for i := range 3000 {
		st := press(g, script[i]...)
		if g.Scene() == SceneResult {
			if st.State.GameOver {
				press(g, core.ActionRestart)
			} else {
				press(g, core.ActionConfirm)
			}
			press(g, core.ActionToggle)
			press(g, core.ActionConfirm)
		}
		if i%50 == 0 {
			snaps = append(snaps, g.Snapshot())
		}
	}
	return snaps
}

func TestSameSeedReplaysIdentically(t *testing.T) {
	a := playSession(7)
	b := playSession(7)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed and input produced different sessions")
	}
}

func TestRenderScenes(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), "T I N Y   H E R O") {
		t.Error("title not rendered")
	}

	press(g, core.ActionConfirm)
	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"STAGE 1", "Pixels: 0 / 1", "Ceiling", "Enemy Ahead"} {
		if !strings.Contains(out, want) {
			t.Errorf("edit screen missing %q", want)
		}
	}

	playCourse(g, mustParse(t, "100/000/000"), 1, 1, stage.Placement{Kind: gimmick.Ceiling, X: 10})
	g.Render(scr)
	if !strings.Contains(scr.String(), "■ × 1") {
		t.Error("pixel HUD not rendered")
	}

	runUntil(t, g, SceneResult)
	g.Render(scr)
	out = scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over not rendered")
	}
	found := false
	for _, text := range deathTexts {
		if strings.Contains(out, text) {
			found = true
		}
	}
	if !found {
		t.Error("no death flavor text rendered")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.Default(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	scr := core.NewScreen(40, 12)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("too-small message not rendered")
	}
}

func TestCourseIgnoresEarlierDraws(t *testing.T) {
	g := newTestGame(42)
	// Earlier stages consume the session rng through shuffles and flavor texts.
	for range 17 {
		g.rng.Intn(100)
	}

	g.enterEdit(EditParams{Stage: 2, TotalPixels: 2})
	press(g, core.ActionToggle)
	press(g, core.ActionConfirm)
	if g.Scene() != ScenePlay {
		t.Fatalf("scene = %s, want play", g.Scene())
	}

	want, err := stage.Course(config.Default().StageParams(), 42, 2)
	if err != nil {
		t.Fatalf("Course failed: %v", err)
	}
	got := g.play.params.Course
	if !reflect.DeepEqual(got.Placements, want.Placements) || got.Length != want.Length {
		t.Errorf("stage 2 course =\n%+v\nwant\n%+v", got.Placements, want.Placements)
	}
}
