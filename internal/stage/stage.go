// Package stage builds the obstacle course for one attempt at a stage.
package stage

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tinyhero/internal/core"
	"github.com/vovakirdan/tinyhero/internal/gimmick"
	"github.com/vovakirdan/tinyhero/internal/grid"
)

// ErrInvalidStage is returned for stage numbers below 1.
var ErrInvalidStage = errors.New("stage: stage number must be at least 1")

// Pixel budget limits.
const (
	MaxPixels      = grid.Cells
	PixelsPerClear = 1
)

// Rand is the random source used for generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Params are the course-building constants.
type Params struct {
	BaseSpeed      float64 // scroll units per tick at stage 0
	SpeedIncrement float64 // added per stage
	MinGap         float64 // smallest distance between gimmicks
	MaxGap         float64 // gaps are drawn from [MinGap, MaxGap)
	StartMargin    float64 // distance before the first gap
	EndMargin      float64 // distance after the last gimmick
	MaxGimmicks    int     // cap on gimmicks per stage
}

// DefaultParams returns the standard course constants.
func DefaultParams() Params {
	return Params{
		BaseSpeed:      2.0,
		SpeedIncrement: 0.15,
		MinGap:         300,
		MaxGap:         400,
		StartMargin:    500,
		EndMargin:      300,
		MaxGimmicks:    10,
	}
}

// Placement is one gimmick on the course.
type Placement struct {
	Kind      gimmick.Kind
	X         float64
	Triggered bool
}

// Stage is a generated course. Only the Triggered flags change after creation.
type Stage struct {
	Number     int
	Placements []Placement
	Length     float64
	Speed      float64
}

// Next marks and returns the first untriggered placement at or behind scroll.
// At most one placement is returned per call.
func (s *Stage) Next(scroll float64) (*Placement, bool) {
	for i := range s.Placements {
		p := &s.Placements[i]
		if p.Triggered {
			continue
		}
		if scroll < p.X {
			return nil, false
		}
		p.Triggered = true
		return p, true
	}
	return nil, false
}

// Remaining counts placements not yet triggered.
func (s *Stage) Remaining() int {
	n := 0
	for _, p := range s.Placements {
		if !p.Triggered {
			n++
		}
	}
	return n
}

// Cleared reports whether scroll has reached the end of the course.
func (s *Stage) Cleared(scroll float64) bool {
	return scroll >= s.Length
}

// Progress returns scroll as a fraction of the course length in [0, 1].
func (s *Stage) Progress(scroll float64) float64 {
	if s.Length <= 0 {
		return 1
	}
	return core.ClampF(scroll/s.Length, 0, 1)
}

// GimmickCount returns how many gimmicks stage n holds: min(floor(3 + 0.8n), max).
func GimmickCount(n, maxGimmicks int) int {
	// Integer form of floor(3 + 0.8n).
	count := 3 + n*4/5
	return min(count, maxGimmicks)
}

// Speed returns the scroll speed for stage n.
func (p Params) Speed(n int) float64 {
	return p.BaseSpeed + float64(n)*p.SpeedIncrement
}

// PixelsForStage returns the pixel budget for a stage: one per stage, capped at 9.
func PixelsForStage(n int) int {
	return min(n, MaxPixels)
}

// NextBudget returns the budget after a clear that awarded gained pixels.
func NextBudget(total, gained int) int {
	return min(total+gained, MaxPixels)
}

// CourseSeed derives the generator seed for stage n of a session seeded
// with seed. Each stage gets its own source so a course depends only on the
// session seed and the stage number.
func CourseSeed(seed int64, n int) int64 {
	return seed + int64(n)
}

// Course generates stage n the way a session seeded with seed does.
func Course(p Params, seed int64, n int) (*Stage, error) {
	return NewGenerator(p, rand.New(rand.NewSource(CourseSeed(seed, n)))).Generate(n)
}

// Generator builds stages from a fixed set of Params and a random source.
type Generator struct {
	params Params
	rng    Rand
}

// NewGenerator creates a generator. The rng is owned by the caller and
// advanced by every Generate call.
func NewGenerator(p Params, rng Rand) *Generator {
	return &Generator{params: p, rng: rng}
}

// Generate builds the course for stage n.
func (g *Generator) Generate(n int) (*Stage, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStage, n)
	}

	pool := gimmick.Unlocked(n)
	count := GimmickCount(n, g.params.MaxGimmicks)

	st := &Stage{
		Number:     n,
		Placements: make([]Placement, 0, count),
		Speed:      g.params.Speed(n),
	}

	x := g.params.StartMargin
	for range count {
		kind := PickKind(pool, st.Placements, g.rng)
		x += g.params.MinGap + g.rng.Float64()*(g.params.MaxGap-g.params.MinGap)
		st.Placements = append(st.Placements, Placement{Kind: kind, X: x})
	}
	st.Length = x + g.params.EndMargin

	return st, nil
}

// PickKind chooses the next gimmick for a course.
//
// The candidate set is pool minus the previous kind, and minus every removal
// kind once the last two placements were both removals. When that leaves
// nothing, the whole pool is used instead. The choice is uniform.
func PickKind(pool []gimmick.Kind, placed []Placement, rng Rand) gimmick.Kind {
	if len(pool) == 0 {
		return gimmick.Unknown
	}

	last := gimmick.Unknown
	if len(placed) > 0 {
		last = placed[len(placed)-1].Kind
	}

	streak := 0
	for i := len(placed) - 1; i >= 0 && gimmick.IsRemoval(placed[i].Kind); i-- {
		streak++
	}

	candidates := make([]gimmick.Kind, 0, len(pool))
	for _, k := range pool {
		if k == last {
			continue
		}
		if streak >= 2 && gimmick.IsRemoval(k) {
			continue
		}
		candidates = append(candidates, k)
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	return candidates[rng.Intn(len(candidates))]
}
