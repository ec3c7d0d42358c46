// Package game provides the mode state machine and the fixed-tick loop
// that drives a raid.
package game

// Mode is the screen or activity the game is currently in. Exactly one
// mode is current at any time and every mode change goes through
// StateMachine.Transition.
type Mode int

const (
	// ModeMainMenu is the title screen.
	ModeMainMenu Mode = iota
	// ModeActive is the live raid, the only mode where simulation runs.
	ModeActive
	// ModeInventory is the inventory overlay over a frozen raid.
	ModeInventory
	// ModeLooting is the container overlay over a frozen raid.
	ModeLooting
	// ModeGameOver is the death summary screen.
	ModeGameOver
	// ModePaused is the pause screen.
	ModePaused
	// ModeMap is the zone overview screen.
	ModeMap
	// ModeCharacter is the operator sheet screen.
	ModeCharacter
	// ModeHelp is the key reference screen.
	ModeHelp

	modeCount
)

// String returns a short mode name for logs and traces.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main_menu"
	case ModeActive:
		return "active"
	case ModeInventory:
		return "inventory"
	case ModeLooting:
		return "looting"
	case ModeGameOver:
		return "game_over"
	case ModePaused:
		return "paused"
	case ModeMap:
		return "map"
	case ModeCharacter:
		return "character"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// allowedTransitions is the closed set of legal mode changes. Active to
// Active covers extraction rolling straight into the next raid.
var allowedTransitions = map[Mode][]Mode{
	ModeMainMenu: {ModeActive, ModeHelp},
	ModeActive: {
		ModeActive, ModeInventory, ModeLooting, ModeGameOver,
		ModePaused, ModeMap, ModeCharacter, ModeHelp, ModeMainMenu,
	},
	ModeInventory: {ModeActive},
	ModeLooting:   {ModeActive},
	ModeGameOver:  {ModeActive, ModeMainMenu},
	ModePaused:    {ModeActive, ModeMainMenu},
	ModeMap:       {ModeActive},
	ModeCharacter: {ModeActive},
	ModeHelp:      {ModeActive, ModeMainMenu},
}

// StateMachine is the single authority over the current mode. It keeps
// one step of history, enough to tell whether an overlay sits on a live
// raid.
type StateMachine struct {
	current  Mode
	previous Mode
}

// NewStateMachine starts at the main menu.
func NewStateMachine() *StateMachine {
	return &StateMachine{current: ModeMainMenu, previous: ModeMainMenu}
}

// Transition moves to the requested mode and records the old one as
// previous. Illegal transitions are denied and leave the machine
// untouched.
func (s *StateMachine) Transition(to Mode) bool {
	allowed := false
	for _, m := range allowedTransitions[s.current] {
		if m == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}
	s.previous = s.current
	s.current = to
	return true
}

// Current returns the current mode.
func (s *StateMachine) Current() Mode {
	return s.current
}

// Previous returns the mode that was current before the last transition.
func (s *StateMachine) Previous() Mode {
	return s.previous
}

// OverlayOnWorld reports whether an overlay mode was entered from a live
// raid, in which case the frozen world is drawn beneath it.
func (s *StateMachine) OverlayOnWorld() bool {
	return s.previous == ModeActive
}
