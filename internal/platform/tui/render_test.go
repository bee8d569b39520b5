package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tinyhero/internal/core"
)

func TestRenderKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(0, 0, "STAGE", core.ColorAccent)
	s.DrawText(6, 0, "1", core.ColorPlayer)
	s.DrawText(0, 2, "go", core.ColorDefault)

	out := NewRenderer().Render(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, want := range []string{"STAGE", "1", "go"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRendererCachesStyles(t *testing.T) {
	r := NewRenderer()
	r.style(core.ColorEnemy)
	r.style(core.ColorEnemy)
	r.style(core.ColorPlayer)

	// default + two colors
	if len(r.styles) != 3 {
		t.Errorf("len(styles) = %d, want 3", len(r.styles))
	}
}
