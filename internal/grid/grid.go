// Package grid implements the 3x3 pixel pattern the player carries through a
// stage, together with every transformation a gimmick can apply to it.
//
// A Grid is an array, so it is copied on assignment. Every function here takes
// a Grid by value and returns a new one; callers never observe mutation.
//
// Index layout (row-major):
//
//	[0][1][2]
//	[3][4][5]
//	[6][7][8]
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Grid dimensions.
const (
	Size  = 3
	Cells = Size * Size
)

// Row indices.
const (
	RowTop    = 0
	RowMiddle = 1
	RowBottom = 2
)

// ShieldColumn is the column that blocks enemy attacks when occupied.
const ShieldColumn = Size - 1

// Grid is a 9-cell binary pattern. 0 = empty, 1 = occupied.
type Grid [Cells]uint8

// Errors returned when building a Grid from external data.
var (
	ErrInvalidShape = errors.New("grid: invalid shape")
	ErrInvalidCell  = errors.New("grid: invalid cell value")
)

// Rand is the random source used by Shuffle.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// rotateMap[i] is the source index for output index i of a clockwise turn.
var rotateMap = [Cells]int{6, 3, 0, 7, 4, 1, 8, 5, 2}

// Index returns the flat index of (row, col).
func Index(row, col int) int {
	return row*Size + col
}

// FromSlice builds a Grid from exactly 9 values of 0 or 1.
func FromSlice(vals []int) (Grid, error) {
	var g Grid
	if len(vals) != Cells {
		return g, fmt.Errorf("%w: got %d values, want %d", ErrInvalidShape, len(vals), Cells)
	}
	for i, v := range vals {
		if v != 0 && v != 1 {
			return Grid{}, fmt.Errorf("%w: index %d has %d", ErrInvalidCell, i, v)
		}
		g[i] = uint8(v)
	}
	return g, nil
}

// Parse builds a Grid from a 9-character string of '0'/'1' (or '.'/'#').
// Whitespace and '/' separators are ignored, so "100/010/000" is accepted.
func Parse(s string) (Grid, error) {
	vals := make([]int, 0, Cells)
	for i, r := range s {
		switch r {
		case '0', '.':
			vals = append(vals, 0)
		case '1', '#':
			vals = append(vals, 1)
		case ' ', '\n', '\t', '/':
		default:
			return Grid{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidCell, r, i)
		}
	}
	return FromSlice(vals)
}

// Get reports whether cell i is occupied.
func (g Grid) Get(i int) bool {
	return g[i] == 1
}

// Set returns a copy of g with cell i set to on.
func (g Grid) Set(i int, on bool) Grid {
	if on {
		g[i] = 1
	} else {
		g[i] = 0
	}
	return g
}

// Toggle returns a copy of g with cell i flipped.
func (g Grid) Toggle(i int) Grid {
	g[i] ^= 1
	return g
}

// Count returns the number of occupied cells (0-9).
func Count(g Grid) int {
	n := 0
	for _, v := range g {
		n += int(v)
	}
	return n
}

// RowCount returns the number of occupied cells in a row.
func RowCount(g Grid, row int) int {
	checkRow(row)
	base := row * Size
	return int(g[base] + g[base+1] + g[base+2])
}

// ColumnCount returns the number of occupied cells in a column.
func ColumnCount(g Grid, col int) int {
	checkColumn(col)
	return int(g[col] + g[Size+col] + g[2*Size+col])
}

// RotateCW rotates the pattern 90 degrees clockwise.
func RotateCW(g Grid) Grid {
	var next Grid
	for i := range next {
		next[i] = g[rotateMap[i]]
	}
	return next
}

// Gravity drops every occupied cell to the bottom of its column.
func Gravity(g Grid) Grid {
	var next Grid
	for col := range Size {
		n := ColumnCount(g, col)
		for row := Size - n; row < Size; row++ {
			next[Index(row, col)] = 1
		}
	}
	return next
}

// Mirror swaps the left and right columns of every row.
func Mirror(g Grid) Grid {
	next := g
	for row := range Size {
		base := row * Size
		next[base], next[base+2] = g[base+2], g[base]
	}
	return next
}

// Shuffle keeps the pixel count but scatters the pixels over random cells.
// Positions come from a Fisher-Yates permutation of all 9 indices, so every
// placement is equally likely.
func Shuffle(g Grid, rng Rand) Grid {
	n := Count(g)
	var pos [Cells]int
	for i := range pos {
		pos[i] = i
	}
	for i := Cells - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pos[i], pos[j] = pos[j], pos[i]
	}

	var next Grid
	for _, p := range pos[:n] {
		next[p] = 1
	}
	return next
}

// RemoveRow clears a whole row.
func RemoveRow(g Grid, row int) Grid {
	checkRow(row)
	for col := range Size {
		g[Index(row, col)] = 0
	}
	return g
}

// RemoveColumns clears every listed column.
func RemoveColumns(g Grid, cols ...int) Grid {
	for _, col := range cols {
		checkColumn(col)
		for row := range Size {
			g[Index(row, col)] = 0
		}
	}
	return g
}

// String renders the grid as three lines of '#' and '.'.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Cells + Size - 1)
	for i, v := range g {
		if i > 0 && i%Size == 0 {
			sb.WriteByte('\n')
		}
		if v == 1 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Compact renders the grid as a 9-character '0'/'1' string, the inverse of Parse.
func (g Grid) Compact() string {
	b := make([]byte, Cells)
	for i, v := range g {
		b[i] = '0' + v
	}
	return string(b)
}

func checkRow(row int) {
	if row < 0 || row >= Size {
		panic(fmt.Sprintf("grid: row %d out of range", row))
	}
}

func checkColumn(col int) {
	if col < 0 || col >= Size {
		panic(fmt.Sprintf("grid: column %d out of range", col))
	}
}
