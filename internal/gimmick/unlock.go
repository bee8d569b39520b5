package gimmick

// unlockTable maps a stage to the kinds first available there.
// Every kind appears in exactly one entry.
var unlockTable = map[int][]Kind{
	1: {Ceiling, EnemyFront},
	2: {Narrow, EnemyTop},
	3: {Rotate},
	4: {Gravity, EnemyBottom},
	5: {Mirror},
	6: {Floor},
	7: {Shuffle},
}

// MaxUnlockStage is the last stage that unlocks anything.
const MaxUnlockStage = 7

// UnlockedAt returns the kinds newly available at exactly this stage.
func UnlockedAt(stage int) []Kind {
	entry := unlockTable[stage]
	out := make([]Kind, len(entry))
	copy(out, entry)
	return out
}

// Unlocked returns the cumulative pool for a stage: the entries of stages
// 1..stage in ascending order. Stage 0 or below yields an empty pool.
func Unlocked(stage int) []Kind {
	var pool []Kind
	for s := 1; s <= stage && s <= MaxUnlockStage; s++ {
		pool = append(pool, unlockTable[s]...)
	}
	return pool
}

// UnlockStage returns the stage at which k becomes available, or 0.
func UnlockStage(k Kind) int {
	for s := 1; s <= MaxUnlockStage; s++ {
		for _, u := range unlockTable[s] {
			if u == k {
				return s
			}
		}
	}
	return 0
}
