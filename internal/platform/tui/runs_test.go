package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tinyhero/internal/grid"
	"github.com/vovakirdan/tinyhero/internal/storage"
)

type fakeRunSource struct {
	top, recent []storage.RunRecord
	stats       *storage.Stats
	err         error
}

func (f *fakeRunSource) TopRuns(limit int) ([]storage.RunRecord, error) {
	return f.top, f.err
}

func (f *fakeRunSource) RecentRuns(limit int) ([]storage.RunRecord, error) {
	return f.recent, f.err
}

func (f *fakeRunSource) Stats() (*storage.Stats, error) {
	if f.stats == nil {
		return nil, errors.New("no stats")
	}
	return f.stats, nil
}

func TestRunsModelSwitchesView(t *testing.T) {
	src := &fakeRunSource{
		top:    []storage.RunRecord{{Stage: 7, Cleared: true}, {Stage: 3}},
		recent: []storage.RunRecord{{Stage: 2}},
		stats:  &storage.Stats{Runs: 3, Clears: 1, BestStage: 7},
	}
	m := NewRunsModel(src, 100, 30)

	if len(m.Runs()) != 2 {
		t.Fatalf("top view loaded %d runs, want 2", len(m.Runs()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)
	if m.view != RunsViewRecent {
		t.Errorf("view = %v, want Recent", m.view)
	}
	if len(m.Runs()) != 1 || m.Runs()[0].Stage != 2 {
		t.Errorf("recent view loaded %+v", m.Runs())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(RunsModel).view != RunsViewTop {
		t.Error("tab should switch back to Best")
	}
}

func TestRunsModelBackAndQuit(t *testing.T) {
	m := NewRunsModel(&fakeRunSource{}, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := next.(RunsModel)
	if !back.IsGoingBack() || back.IsQuitting() || cmd == nil {
		t.Errorf("esc: goingBack=%v quitting=%v", back.IsGoingBack(), back.IsQuitting())
	}

	next, _ = m.Update(runeKey("q"))
	quit := next.(RunsModel)
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Errorf("q: goingBack=%v quitting=%v", quit.IsGoingBack(), quit.IsQuitting())
	}
}

func TestRunsModelView(t *testing.T) {
	pattern, _ := grid.Parse("100/010/001")
	src := &fakeRunSource{
		top: []storage.RunRecord{{
			Stage: 5, Cleared: true, RemainingPixels: 3, TotalPixels: 6,
			Pattern: pattern, CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
		}},
		stats: &storage.Stats{Runs: 1, Clears: 1, BestStage: 5, AvgStage: 5},
	}

	tests := []struct {
		name  string
		width int
		want  []string
	}{
		{"wide with sidebar", 120, []string{"RUN HISTORY - BEST", "#../.#./..#", "3/6"}},
		{"narrow stats line", 70, []string{"Attempts 1 | Clears 1 | Best stage 5", "clear"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewRunsModel(src, tt.width, 30).View()
			for _, want := range tt.want {
				if !strings.Contains(v, want) {
					t.Errorf("View() missing %q", want)
				}
			}
		})
	}
}

func TestRunsModelEmptyAndError(t *testing.T) {
	if v := NewRunsModel(nil, 80, 24).View(); !strings.Contains(v, "No runs recorded yet") {
		t.Error("nil source should show the empty message")
	}

	src := &fakeRunSource{err: errors.New("db locked")}
	if v := NewRunsModel(src, 80, 24).View(); !strings.Contains(v, "db locked") {
		t.Error("load error should be shown")
	}
}

func TestShapeString(t *testing.T) {
	g, _ := grid.Parse("110/000/011")
	if got := shapeString(g); got != "##./.../.##" {
		t.Errorf("shapeString = %q, want %q", got, "##./.../.##")
	}
}
