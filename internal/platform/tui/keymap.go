package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// holdWindow is how long a key press keeps a continuous action held.
// Terminals report repeats, not releases, so a key counts as held until its
// repeats stop arriving.
const holdWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionLaunch, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "enter", "n":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// KeyState is the boolean key-state table the game reads each frame.
// Movement and launch stay held for holdWindow after their last press;
// every other action is delivered to exactly one frame.
type KeyState struct {
	held    map[core.Action]time.Time
	pressed map[core.Action]bool
	window  time.Duration
}

// NewKeyState creates an empty key table.
func NewKeyState() *KeyState {
	return &KeyState{
		held:    make(map[core.Action]time.Time),
		pressed: make(map[core.Action]bool),
		window:  holdWindow,
	}
}

// isContinuous reports whether an action is held rather than one-shot.
func isContinuous(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionLaunch:
		return true
	}
	return false
}

// Press records a key press at now.
func (k *KeyState) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if isContinuous(a) {
		// Opposite directions cancel the stale one so a quick turn is not
		// read as both keys held.
		switch a {
		case core.ActionLeft:
			delete(k.held, core.ActionRight)
		case core.ActionRight:
			delete(k.held, core.ActionLeft)
		}
		k.held[a] = now
		return
	}
	k.pressed[a] = true
}

// Frame returns the input frame for a tick at now and consumes one-shot
// presses. Held actions whose window has lapsed are released.
func (k *KeyState) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, at := range k.held {
		if now.Sub(at) > k.window {
			delete(k.held, a)
			continue
		}
		in.Set(a)
	}
	for a := range k.pressed {
		in.Set(a)
		delete(k.pressed, a)
	}
	return in
}

// Release drops every held and pending action.
func (k *KeyState) Release() {
	clear(k.held)
	clear(k.pressed)
}
