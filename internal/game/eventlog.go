package game

import "github.com/vovakirdan/tinyhero/internal/core"

// logEntry is one line of the play-scene event log.
type logEntry struct {
	text string
	ttl  int
}

// EventLog keeps the newest messages, each expiring after a fixed number of ticks.
type EventLog struct {
	entries []logEntry // newest first
	max     int
	ttl     int
}

// NewEventLog creates a log holding at most maxLines messages for ttl ticks each.
func NewEventLog(maxLines, ttl int) *EventLog {
	return &EventLog{max: maxLines, ttl: ttl}
}

// Add pushes a message to the top, dropping the oldest beyond the limit.
func (l *EventLog) Add(text string) {
	l.entries = append([]logEntry{{text: text, ttl: l.ttl}}, l.entries...)
	if len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}
}

// Tick ages every message and removes the expired ones.
func (l *EventLog) Tick() {
	kept := l.entries[:0]
	for _, e := range l.entries {
		e.ttl--
		if e.ttl > 0 {
			kept = append(kept, e)
		}
	}
	l.entries = kept
}

// Lines returns the visible messages, newest first.
func (l *EventLog) Lines() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.text
	}
	return out
}

// Len returns the number of visible messages.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Alert is the large banner shown when a gimmick triggers.
type Alert struct {
	Text  string
	Color core.Color
	ttl   int
}

// Active reports whether the banner is still showing.
func (a Alert) Active() bool {
	return a.ttl > 0
}
