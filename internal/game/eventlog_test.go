package game

import (
	"slices"
	"testing"
)

func TestEventLogKeepsNewestFirst(t *testing.T) {
	l := NewEventLog(4, 100)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l.Add(s)
	}

	want := []string{"e", "d", "c", "b"}
	if got := l.Lines(); !slices.Equal(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestEventLogExpires(t *testing.T) {
	l := NewEventLog(4, 3)
	l.Add("old")
	l.Tick()
	l.Add("new")

	l.Tick()
	l.Tick()
	if got := l.Lines(); !slices.Equal(got, []string{"new"}) {
		t.Errorf("Lines() = %v, want [new]", got)
	}

	l.Tick()
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}
