// Package gimmick defines the hazards a stage is built from: what each one
// does to the grid, the text it produces, how it is displayed, and at which
// stage it becomes available.
package gimmick

import "github.com/vovakirdan/tinyhero/internal/core"

// Kind identifies a gimmick.
type Kind uint8

// Gimmick kinds. Unknown is the zero value and never appears in a stage.
const (
	Unknown Kind = iota
	Ceiling
	Floor
	Narrow
	Rotate
	Gravity
	Mirror
	Shuffle
	EnemyFront
	EnemyTop
	EnemyBottom
)

// Info is the static display metadata of a kind.
type Info struct {
	ID    string // wire identifier, e.g. "enemy_front"
	Label string
	Icon  string
	Color core.Color
}

var infos = [...]Info{
	Ceiling:     {ID: "ceiling", Label: "Ceiling", Icon: "▼", Color: 0xf87171},
	Floor:       {ID: "floor", Label: "Floor", Icon: "▲", Color: 0xf87171},
	Narrow:      {ID: "narrow", Label: "Narrow", Icon: "◁▷", Color: 0xfbbf24},
	Rotate:      {ID: "rotate", Label: "Rotate", Icon: "↻", Color: 0xa78bfa},
	Gravity:     {ID: "gravity", Label: "Gravity", Icon: "↓", Color: 0x60a5fa},
	Mirror:      {ID: "mirror", Label: "Mirror", Icon: "⇔", Color: 0x34d399},
	Shuffle:     {ID: "shuffle", Label: "Shuffle", Icon: "✦", Color: 0xc084fc},
	EnemyFront:  {ID: "enemy_front", Label: "Enemy Ahead", Icon: "◆", Color: core.ColorEnemy},
	EnemyTop:    {ID: "enemy_top", Label: "Enemy Above", Icon: "◆", Color: core.ColorEnemy},
	EnemyBottom: {ID: "enemy_bottom", Label: "Enemy Below", Icon: "◆", Color: core.ColorEnemy},
}

// All returns every real kind in declaration order.
func All() []Kind {
	return []Kind{Ceiling, Floor, Narrow, Rotate, Gravity, Mirror, Shuffle, EnemyFront, EnemyTop, EnemyBottom}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k > Unknown && int(k) < len(infos)
}

// Lookup returns the display metadata for k.
func Lookup(k Kind) (Info, bool) {
	if !k.Valid() {
		return Info{}, false
	}
	return infos[k], true
}

// String returns the wire identifier, or "unknown".
func (k Kind) String() string {
	if info, ok := Lookup(k); ok {
		return info.ID
	}
	return "unknown"
}

// ParseKind maps a wire identifier back to its Kind.
// External data may carry identifiers this build does not know; ok is false then.
func ParseKind(id string) (Kind, bool) {
	for _, k := range All() {
		if infos[k].ID == id {
			return k, true
		}
	}
	return Unknown, false
}

// IsRemoval reports whether k can only delete cells (ceiling, floor, narrow).
// Stage generation never lets three of these follow each other.
func IsRemoval(k Kind) bool {
	switch k {
	case Ceiling, Floor, Narrow:
		return true
	}
	return false
}

// IsEnemy reports whether k is one of the attacking enemies.
func IsEnemy(k Kind) bool {
	switch k {
	case EnemyFront, EnemyTop, EnemyBottom:
		return true
	}
	return false
}
