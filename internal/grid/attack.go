package grid

// AttackResult is the outcome of an enemy attack on one row.
// Exactly one of Defended, Missed, or RemovedIndex >= 0 holds.
type AttackResult struct {
	Grid         Grid
	Defended     bool // shield column was occupied, nothing changed
	RemovedIndex int  // index of the stolen pixel, or -1
	Missed       bool // row was empty, nothing changed
}

// EnemyAttack resolves an enemy striking the given row from the right.
//
// An occupied shield column blocks the attack. Otherwise the rightmost
// occupied cell among columns 1 and 0 is removed. An empty row is a miss.
func EnemyAttack(g Grid, row int) AttackResult {
	checkRow(row)

	if g[Index(row, ShieldColumn)] == 1 {
		return AttackResult{Grid: g, Defended: true, RemovedIndex: -1}
	}

	for col := ShieldColumn - 1; col >= 0; col-- {
		idx := Index(row, col)
		if g[idx] == 1 {
			next := g
			next[idx] = 0
			return AttackResult{Grid: next, RemovedIndex: idx}
		}
	}

	return AttackResult{Grid: g, RemovedIndex: -1, Missed: true}
}
