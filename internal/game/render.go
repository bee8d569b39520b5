package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tinyhero/internal/core"
	"github.com/vovakirdan/tinyhero/internal/gimmick"
	"github.com/vovakirdan/tinyhero/internal/grid"
)

// Grid cell geometry on screen.
const (
	cellW   = 4
	cellH   = 2
	cellGap = 1
	gridW   = grid.Size*(cellW+cellGap) - cellGap
	gridH   = grid.Size*(cellH+cellGap) - cellGap
)

// unitsPerColumn is how many course units one screen column covers.
const unitsPerColumn = 16.0

// Render draws the active scene to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	switch g.scene {
	case SceneTitle:
		g.renderTitle(dst)
	case SceneEdit:
		g.renderEdit(dst)
	case ScenePlay:
		g.renderPlay(dst)
	case SceneResult:
		g.renderResult(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorText)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", MinWidth, MinHeight), core.ColorDim)
}

func (g *Game) renderTitle(dst *core.Screen) {
	cy := g.screenH/2 - 3

	// A small hero made of three pixels.
	hero := grid.Grid{0, 1, 0, 1, 1, 1, 0, 1, 0}
	for i := range grid.Cells {
		if hero.Get(i) {
			x := g.screenW/2 - 3 + (i%grid.Size)*2
			dst.DrawText(x, cy-5+i/grid.Size, "██", core.ColorPlayer)
		}
	}

	dst.DrawTextCentered(cy, "T I N Y   H E R O", core.ColorPlayer)
	dst.DrawTextCentered(cy+2, "Shape is destiny.", core.ColorDim)
	if g.best > 0 {
		dst.DrawTextCentered(cy+4, fmt.Sprintf("Best this session: stage %d", g.best), core.ColorAccent)
	}
	if (g.tick/30)%2 == 0 {
		dst.DrawTextCentered(cy+6, "Press Enter to start", core.ColorText)
	}
	dst.DrawTextCentered(g.screenH-1, "Enter: start | Q: quit", core.ColorDim)
}

func (g *Game) renderEdit(dst *core.Screen) {
	e := g.edit
	leftX := g.screenW * 3 / 10
	rightX := g.screenW * 7 / 10
	gx := leftX - gridW/2
	gy := g.screenH/2 - gridH/2 + 1

	dst.DrawTextCentered(0, fmt.Sprintf("STAGE %d", e.params.Stage), core.ColorPlayer)

	used := grid.Count(e.grid)
	drawCentered(dst, leftX, gy-3, fmt.Sprintf("Pixels: %d / %d", used, e.params.TotalPixels), core.ColorText)
	drawCentered(dst, leftX, gy-2, "Space places a pixel", core.ColorDim)

	drawGrid(dst, gx, gy, e.grid, grid.Changes{})
	cx := gx + (e.cursor%grid.Size)*(cellW+cellGap)
	cy := gy + (e.cursor/grid.Size)*(cellH+cellGap)
	for dy := range cellH {
		dst.Set(cx-1, cy+dy, '[', core.ColorAccent)
		dst.Set(cx+cellW, cy+dy, ']', core.ColorAccent)
	}

	drawCentered(dst, rightX, 3, "Gimmicks ahead", core.ColorDim)
	fresh := make(map[gimmick.Kind]bool)
	for _, k := range gimmick.UnlockedAt(e.params.Stage) {
		fresh[k] = true
	}
	for i, k := range gimmick.Unlocked(e.params.Stage) {
		info, _ := gimmick.Lookup(k)
		x := rightX - 8
		y := 5 + i
		dst.DrawText(x, y, info.Icon, info.Color)
		dst.DrawText(x+3, y, info.Label, core.ColorText)
		if fresh[k] && e.params.Stage > 1 {
			dst.DrawText(x+15, y, "NEW", core.ColorAccent)
		}
	}

	departColor := core.ColorPlayer
	if used < 1 {
		departColor = core.ColorDim
	}
	drawCentered(dst, rightX, g.screenH*3/4, "[ Enter: DEPART ]", departColor)

	dst.DrawTextCentered(g.screenH-1, "Arrows/WASD: move | Space: toggle | Enter: depart | B: title", core.ColorDim)
}

func (g *Game) renderPlay(dst *core.Screen) {
	p := g.play
	course := p.params.Course

	dst.DrawTextCentered(0, fmt.Sprintf("STAGE %d", p.params.Stage), core.ColorPlayer)
	hud := fmt.Sprintf("■ × %d", grid.Count(p.grid))
	dst.DrawText(g.screenW-utf8.RuneCountInString(hud)-2, 0, hud, core.ColorPlayer)

	barW := g.screenW - 4
	filled := int(course.Progress(p.scroll) * float64(barW))
	dst.DrawHLine(2, 1, barW, '─', core.ColorGrid)
	dst.DrawHLine(2, 1, filled, '━', core.ColorPlayer)

	for i, line := range p.log.Lines() {
		dst.DrawTextCentered(3+i, line, core.ColorText)
	}

	gx := g.screenW/4 - gridW/2
	gy := g.screenH/2 - gridH/2 + 1
	drawGrid(dst, gx, gy, p.grid, p.changes)
	dst.DrawHLine(gx, gy+gridH, g.screenW-gx, '─', core.ColorGrid)

	heroRight := gx + gridW + 1
	for _, pl := range course.Placements {
		x := heroRight + int((pl.X-p.scroll)/unitsPerColumn)
		if x < heroRight || x >= g.screenW {
			continue
		}
		info, ok := gimmick.Lookup(pl.Kind)
		if !ok {
			continue
		}
		color := info.Color
		if pl.Triggered {
			color = core.ColorDim
		}
		for _, row := range markerRows(pl.Kind) {
			dst.DrawText(x, gy+row*(cellH+cellGap), info.Icon, color)
		}
	}

	if p.alert.Active() {
		dst.DrawTextCentered(gy+gridH+2, p.alert.Text, p.alert.Color)
	}

	if g.paused {
		drawOverlay(dst, "PAUSED", "Press P to resume")
	}
	dst.DrawTextCentered(g.screenH-1, "P: pause | Q: quit", core.ColorDim)
}

func (g *Game) renderResult(dst *core.Screen) {
	r := g.result.params
	y := g.screenH/2 - 6

	if r.Cleared {
		dst.DrawTextCentered(y, "STAGE CLEAR", core.ColorPlayer)
		dst.DrawTextCentered(y+2, fmt.Sprintf("STAGE %d", r.Stage), core.ColorPlayer)
		dst.DrawTextCentered(y+4, fmt.Sprintf("Pixels left: %d", r.RemainingPixels), core.ColorText)
		dst.DrawTextCentered(y+5, fmt.Sprintf("Pixels gained: +%d", r.NewPixels), core.ColorAccent)
		dst.DrawTextCentered(y+7, g.result.flavor, core.ColorDim)
		dst.DrawTextCentered(y+10, fmt.Sprintf("[ Enter: next stage with %d pixels ]", g.nextBudget(r)), core.ColorPlayer)
		dst.DrawTextCentered(g.screenH-1, "Enter: next stage | B: title | Q: quit", core.ColorDim)
		return
	}

	dst.DrawTextCentered(y, "GAME OVER", core.ColorEnemy)
	dst.DrawTextCentered(y+2, fmt.Sprintf("STAGE %d", r.Stage), core.ColorEnemy)
	dst.DrawTextCentered(y+5, g.result.flavor, core.ColorDim)
	dst.DrawTextCentered(y+8, "[ R: retry ]", core.ColorPlayer)
	dst.DrawTextCentered(y+10, "[ B: title ]", core.ColorDim)
	dst.DrawTextCentered(g.screenH-1, "R: retry | B: title | Q: quit", core.ColorDim)
}

// drawGrid draws the 3x3 pattern with its top-left corner at (x, y).
// Cells in ch are highlighted: removed in the enemy color, added in the accent.
func drawGrid(dst *core.Screen, x, y int, gr grid.Grid, ch grid.Changes) {
	state := make(map[int]core.Color, len(ch.Removed)+len(ch.Added))
	for _, i := range ch.Removed {
		state[i] = core.ColorEnemy
	}
	for _, i := range ch.Added {
		state[i] = core.ColorAccent
	}

	for i := range grid.Cells {
		r := core.NewRect(x+(i%grid.Size)*(cellW+cellGap), y+(i/grid.Size)*(cellH+cellGap), cellW, cellH)
		switch c, changed := state[i]; {
		case changed && !gr.Get(i):
			dst.DrawRect(r, '░', c)
		case changed:
			dst.DrawRect(r, '█', c)
		case gr.Get(i):
			dst.DrawRect(r, '█', core.ColorPlayer)
		default:
			dst.DrawRect(r, '░', core.ColorEmpty)
		}
	}
}

// markerRows returns the grid rows a gimmick's marker is drawn on.
func markerRows(k gimmick.Kind) []int {
	switch k {
	case gimmick.Ceiling, gimmick.EnemyTop:
		return []int{grid.RowTop}
	case gimmick.Floor, gimmick.EnemyBottom:
		return []int{grid.RowBottom}
	case gimmick.Narrow:
		return []int{grid.RowTop, grid.RowBottom}
	default:
		return []int{grid.RowMiddle}
	}
}

// drawCentered draws text centered on column cx.
func drawCentered(dst *core.Screen, cx, y int, text string, c core.Color) {
	dst.DrawText(cx-utf8.RuneCountInString(text)/2, y, text, c)
}

// drawOverlay draws a boxed message in the middle of the screen.
func drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := dst.Bounds().Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	for i, line := range lines {
		drawCentered(dst, box.X+box.W/2, box.Y+1+i, line, core.ColorText)
	}
}
