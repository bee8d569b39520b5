package core

import "fmt"

// Color is a 24-bit RGB foreground color for a screen cell.
// The zero value means "terminal default" (pure black is not representable).
type Color uint32

// Palette shared by the game screens.
const (
	ColorDefault Color = 0
	ColorPlayer  Color = 0x4eff7a
	ColorEnemy   Color = 0xfb7185
	ColorAccent  Color = 0xffd644
	ColorText    Color = 0xe0e0e0
	ColorDim     Color = 0x888888
	ColorEmpty   Color = 0x222233
	ColorGrid    Color = 0x444466
	ColorWhite   Color = 0xffffff
)

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c == ColorDefault {
		return ""
	}
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}
