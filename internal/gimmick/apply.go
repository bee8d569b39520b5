package gimmick

import (
	"fmt"

	"github.com/vovakirdan/tinyhero/internal/grid"
)

// Result is what a triggered gimmick produced.
type Result struct {
	Kind    Kind
	OldGrid grid.Grid
	Grid    grid.Grid
	LogText string
	Attack  *grid.AttackResult // set for enemy kinds only
}

// Lost returns how many pixels the gimmick removed.
func (r Result) Lost() int {
	return grid.Count(r.OldGrid) - grid.Count(r.Grid)
}

// enemy describes where an enemy kind strikes and how its messages read.
type enemy struct {
	row       int
	direction string // "ahead", "above", "below"
}

var enemies = map[Kind]enemy{
	EnemyFront:  {row: grid.RowMiddle, direction: "ahead"},
	EnemyTop:    {row: grid.RowTop, direction: "above"},
	EnemyBottom: {row: grid.RowBottom, direction: "below"},
}

// Apply runs the gimmick k against g. rng is only consulted by Shuffle.
// An unknown kind leaves the grid as it was and logs "???".
func Apply(k Kind, g grid.Grid, rng grid.Rand) Result {
	res := Result{Kind: k, OldGrid: g}

	switch k {
	case Ceiling:
		removed := grid.RowCount(g, grid.RowTop)
		res.Grid = grid.RemoveRow(g, grid.RowTop)
		res.LogText = "Slipped under the ceiling!"
		if removed > 0 {
			res.LogText = fmt.Sprintf("The ceiling scraped off %d px!", removed)
		}

	case Floor:
		removed := grid.RowCount(g, grid.RowBottom)
		res.Grid = grid.RemoveRow(g, grid.RowBottom)
		res.LogText = "The floor held firm!"
		if removed > 0 {
			res.LogText = fmt.Sprintf("%d px crumbled underfoot...", removed)
		}

	case Narrow:
		removed := grid.ColumnCount(g, 0) + grid.ColumnCount(g, 2)
		res.Grid = grid.RemoveColumns(g, 0, 2)
		res.LogText = "Passed the narrow path safely!"
		if removed > 0 {
			res.LogText = fmt.Sprintf("The narrow path shaved off %d px...", removed)
		}

	case Rotate:
		res.Grid = grid.RotateCW(g)
		res.LogText = "The world twisted 90 degrees...!"

	case Gravity:
		res.Grid = grid.Gravity(g)
		res.LogText = "Gravity well! Pixels collapsed downward!"

	case Mirror:
		res.Grid = grid.Mirror(g)
		res.LogText = "Through the mirror world... left and right swapped!"

	case Shuffle:
		res.Grid = grid.Shuffle(g, rng)
		res.LogText = "Caught in a vortex of chaos! Your shape... changed!"

	case EnemyFront, EnemyTop, EnemyBottom:
		e := enemies[k]
		attack := grid.EnemyAttack(g, e.row)
		res.Grid = attack.Grid
		res.Attack = &attack
		switch {
		case attack.Defended:
			res.LogText = fmt.Sprintf("Repelled the enemy %s!", e.direction)
		case attack.Missed:
			res.LogText = fmt.Sprintf("The attack from %s hit nothing!", e.direction)
		default:
			res.LogText = fmt.Sprintf("The enemy %s stole a pixel...", e.direction)
		}

	default:
		res.Grid = g
		res.LogText = "???"
	}

	return res
}

// AlertText builds the banner shown when k fires, e.g. "▼ Ceiling! -2px".
// It returns "" for an unknown kind.
func AlertText(k Kind, old, next grid.Grid) string {
	info, ok := Lookup(k)
	if !ok {
		return ""
	}
	banner := fmt.Sprintf("%s %s!", info.Icon, info.Label)
	if lost := grid.Count(old) - grid.Count(next); lost > 0 {
		banner += fmt.Sprintf(" -%dpx", lost)
	}
	return banner
}
