package grid

import "testing"

func TestEnemyAttack(t *testing.T) {
	tests := []struct {
		name       string
		grid       string
		row        int
		want       string
		defended   bool
		missed     bool
		removedIdx int
	}{
		{
			name:       "shield column blocks",
			grid:       "001/001/001",
			row:        RowMiddle,
			want:       "001/001/001",
			defended:   true,
			removedIdx: -1,
		},
		{
			name:       "shield blocks even with full row",
			grid:       "000/111/000",
			row:        RowMiddle,
			want:       "000/111/000",
			defended:   true,
			removedIdx: -1,
		},
		{
			name:       "center cell stolen first",
			grid:       "110/000/000",
			row:        RowTop,
			want:       "100/000/000",
			removedIdx: 1,
		},
		{
			name:       "left cell stolen when center empty",
			grid:       "000/000/100",
			row:        RowBottom,
			want:       "000/000/000",
			removedIdx: 6,
		},
		{
			name:       "empty row misses",
			grid:       "111/000/111",
			row:        RowMiddle,
			want:       "111/000/111",
			missed:     true,
			removedIdx: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EnemyAttack(mustParse(t, tt.grid), tt.row)
			if want := mustParse(t, tt.want); res.Grid != want {
				t.Errorf("grid =\n%v\nwant\n%v", res.Grid, want)
			}
			if res.Defended != tt.defended {
				t.Errorf("Defended = %v, want %v", res.Defended, tt.defended)
			}
			if res.Missed != tt.missed {
				t.Errorf("Missed = %v, want %v", res.Missed, tt.missed)
			}
			if res.RemovedIndex != tt.removedIdx {
				t.Errorf("RemovedIndex = %d, want %d", res.RemovedIndex, tt.removedIdx)
			}
		})
	}
}

func TestEnemyAttackExactlyOneOutcome(t *testing.T) {
	for _, g := range allGrids() {
		for row := range Size {
			res := EnemyAttack(g, row)
			outcomes := 0
			if res.Defended {
				outcomes++
			}
			if res.Missed {
				outcomes++
			}
			if res.RemovedIndex >= 0 {
				outcomes++
			}
			if outcomes != 1 {
				t.Fatalf("row %d of\n%v\nhad %d outcomes: %+v", row, g, outcomes, res)
			}

			shielded := g.Get(Index(row, ShieldColumn))
			if shielded && (!res.Defended || res.Grid != g) {
				t.Fatalf("shielded row %d of\n%v\nnot defended", row, g)
			}
			if RowCount(g, row) == 0 && (!res.Missed || res.RemovedIndex != -1 || res.Grid != g) {
				t.Fatalf("empty row %d of\n%v\nnot a clean miss", row, g)
			}
			if res.RemovedIndex >= 0 && Count(res.Grid) != Count(g)-1 {
				t.Fatalf("steal on row %d of\n%v\nremoved %d pixels", row, g, Count(g)-Count(res.Grid))
			}
		}
	}
}

func TestDiff(t *testing.T) {
	old := mustParse(t, "110/001/000")
	next := mustParse(t, "010/000/011")

	c := Diff(old, next)

	wantRemoved := []int{0, 5}
	wantAdded := []int{7, 8}
	if !equalInts(c.Removed, wantRemoved) {
		t.Errorf("Removed = %v, want %v", c.Removed, wantRemoved)
	}
	if !equalInts(c.Added, wantAdded) {
		t.Errorf("Added = %v, want %v", c.Added, wantAdded)
	}
	if c.Empty() {
		t.Error("Empty() should be false")
	}
}

func TestDiffSameGridIsEmpty(t *testing.T) {
	for _, g := range allGrids() {
		c := Diff(g, g)
		if !c.Empty() {
			t.Fatalf("Diff of identical grids not empty: %+v", c)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
