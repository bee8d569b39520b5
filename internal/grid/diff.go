package grid

// Changes lists the cells that flipped between two grids, in ascending order.
type Changes struct {
	Removed []int // 1 -> 0
	Added   []int // 0 -> 1
}

// Empty reports whether nothing changed.
func (c Changes) Empty() bool {
	return len(c.Removed) == 0 && len(c.Added) == 0
}

// Diff returns which cells were removed and added going from old to next.
// Only presentation uses this; game decisions look at the grids themselves.
func Diff(old, next Grid) Changes {
	var c Changes
	for i := range Cells {
		switch {
		case old[i] == 1 && next[i] == 0:
			c.Removed = append(c.Removed, i)
		case old[i] == 0 && next[i] == 1:
			c.Added = append(c.Added, i)
		}
	}
	return c
}
