// Package msglog provides the bounded ring of recent raid event messages.
package msglog

import "fmt"

// Level controls how a message is styled in the HUD message pane.
type Level int

const (
	// LevelInfo is the default for routine events.
	LevelInfo Level = iota
	// LevelWarning flags dangerous but survivable situations.
	LevelWarning
	// LevelCritical flags death, extraction and other raid-ending events.
	LevelCritical
	// LevelLoot flags item pickups and rewards.
	LevelLoot
)

// Entry is a single logged message.
type Entry struct {
	Text  string
	Level Level
}

// Log keeps the most recent messages, evicting the oldest when full.
type Log struct {
	entries []Entry
	maxSize int
}

// New creates a log that retains up to maxSize messages.
func New(maxSize int) *Log {
	return &Log{
		entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Push appends a message, evicting the oldest entry if the log is full.
func (l *Log) Push(level Level, text string) {
	e := Entry{Text: text, Level: level}
	if len(l.entries) >= l.maxSize {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = e
		return
	}
	l.entries = append(l.entries, e)
}

// Pushf formats and appends a message.
func (l *Log) Pushf(level Level, format string, args ...any) {
	l.Push(level, fmt.Sprintf(format, args...))
}

// Recent returns the last n entries, oldest first (fewer if the log is shorter).
func (l *Log) Recent(n int) []Entry {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[len(l.entries)-n:]
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear drops all entries. Called when a new raid starts.
func (l *Log) Clear() {
	l.entries = l.entries[:0]
}
