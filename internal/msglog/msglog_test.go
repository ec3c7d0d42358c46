package msglog

import (
	"fmt"
	"testing"
)

func TestPushAndRecent(t *testing.T) {
	l := New(10)
	l.Push(LevelInfo, "first")
	l.Push(LevelWarning, "second")
	l.Push(LevelLoot, "third")

	recent := l.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(recent))
	}
	if recent[0].Text != "second" || recent[1].Text != "third" {
		t.Errorf("Wrong order: got %q, %q", recent[0].Text, recent[1].Text)
	}
	if recent[1].Level != LevelLoot {
		t.Errorf("Expected loot level, got %v", recent[1].Level)
	}
}

func TestEvictionKeepsNewest(t *testing.T) {
	l := New(3)
	for i := 0; i < 5; i++ {
		l.Pushf(LevelInfo, "msg %d", i)
	}

	if l.Len() != 3 {
		t.Fatalf("Expected 3 retained entries, got %d", l.Len())
	}
	recent := l.Recent(3)
	for i, want := range []string{"msg 2", "msg 3", "msg 4"} {
		if recent[i].Text != want {
			t.Errorf("Entry %d: expected %q, got %q", i, want, recent[i].Text)
		}
	}
}

func TestRecentLargerThanLog(t *testing.T) {
	l := New(10)
	l.Push(LevelInfo, "only")

	recent := l.Recent(5)
	if len(recent) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(recent))
	}
}

func TestClear(t *testing.T) {
	l := New(10)
	for i := 0; i < 4; i++ {
		l.Push(LevelInfo, fmt.Sprintf("m%d", i))
	}
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Expected empty log after Clear, got %d entries", l.Len())
	}
	l.Push(LevelInfo, "after")
	if l.Len() != 1 {
		t.Errorf("Log unusable after Clear: %d entries", l.Len())
	}
}
