package game

import "testing"

func TestStateMachineStartsAtMenu(t *testing.T) {
	sm := NewStateMachine()

	if sm.Current() != ModeMainMenu {
		t.Errorf("Expected initial mode main_menu, got %s", sm.Current())
	}
	if sm.Previous() != ModeMainMenu {
		t.Errorf("Expected initial previous main_menu, got %s", sm.Previous())
	}
}

func TestTransitionTracksPrevious(t *testing.T) {
	sm := NewStateMachine()

	if !sm.Transition(ModeActive) {
		t.Fatal("main_menu -> active should be allowed")
	}
	if !sm.Transition(ModeInventory) {
		t.Fatal("active -> inventory should be allowed")
	}

	if sm.Current() != ModeInventory {
		t.Errorf("Expected current inventory, got %s", sm.Current())
	}
	if sm.Previous() != ModeActive {
		t.Errorf("Expected previous active, got %s", sm.Previous())
	}
}

func TestIllegalTransitionLeavesMachineUntouched(t *testing.T) {
	sm := NewStateMachine()

	// The menu cannot jump straight into an overlay.
	if sm.Transition(ModeInventory) {
		t.Error("main_menu -> inventory should be denied")
	}
	if sm.Current() != ModeMainMenu {
		t.Errorf("Expected mode unchanged after denial, got %s", sm.Current())
	}
	if sm.Previous() != ModeMainMenu {
		t.Errorf("Expected previous unchanged after denial, got %s", sm.Previous())
	}

	sm.Transition(ModeActive)
	sm.Transition(ModeGameOver)
	if sm.Transition(ModePaused) {
		t.Error("game_over -> paused should be denied")
	}
	if sm.Current() != ModeGameOver {
		t.Errorf("Expected mode game_over after denial, got %s", sm.Current())
	}
}

func TestOverlayOnWorldOnlyFromActive(t *testing.T) {
	sm := NewStateMachine()
	sm.Transition(ModeActive)
	sm.Transition(ModeLooting)

	if !sm.OverlayOnWorld() {
		t.Error("Looting entered from a live raid should overlay the world")
	}

	sm.Transition(ModeActive)
	sm.Transition(ModeMainMenu)
	sm.Transition(ModeHelp)

	if sm.OverlayOnWorld() {
		t.Error("Help entered from the menu should not overlay the world")
	}
}

func TestActiveToActiveAllowed(t *testing.T) {
	// Extraction rolls straight into the next raid without leaving Active.
	sm := NewStateMachine()
	sm.Transition(ModeActive)

	if !sm.Transition(ModeActive) {
		t.Error("active -> active should be allowed")
	}
	if sm.Previous() != ModeActive {
		t.Errorf("Expected previous active, got %s", sm.Previous())
	}
}

func TestEveryModeHasTransitions(t *testing.T) {
	for m := Mode(0); m < modeCount; m++ {
		targets, ok := allowedTransitions[m]
		if !ok || len(targets) == 0 {
			t.Errorf("Mode %s has no outgoing transitions", m)
			continue
		}
		for _, to := range targets {
			if to < 0 || to >= modeCount {
				t.Errorf("Mode %s allows transition to invalid mode %d", m, to)
			}
		}
	}
}

func TestModeStrings(t *testing.T) {
	for m := Mode(0); m < modeCount; m++ {
		if m.String() == "unknown" {
			t.Errorf("Mode %d has no name", m)
		}
	}
	if Mode(99).String() != "unknown" {
		t.Errorf("Expected unknown for out-of-range mode, got %s", Mode(99).String())
	}
}
