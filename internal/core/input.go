package core

import "math/bits"

// Action is a player intent, independent of the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionConfirm
	ActionPause
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Up", "Down", "Confirm", "Pause", "Quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions held during one tick. The zero value is
// an empty frame and frames copy by value.
type InputFrame struct {
	mask uint16
}

// NewInputFrame returns a frame with nothing held.
func NewInputFrame() InputFrame { return InputFrame{} }

// Set marks a as held. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a != ActionNone && a < actionCount {
		f.mask |= 1 << a
	}
}

// Has reports whether a is held.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.mask&(1<<a) != 0
}

// Len counts the held actions.
func (f InputFrame) Len() int { return bits.OnesCount16(f.mask) }

// Clear releases every action.
func (f *InputFrame) Clear() { f.mask = 0 }

// KeyTracker turns a stream of held frames into edge-triggered presses.
// Call Advance once per tick before querying.
type KeyTracker struct {
	down, pressed InputFrame
}

// NewKeyTracker returns a tracker with nothing held.
func NewKeyTracker() *KeyTracker { return &KeyTracker{} }

// Advance records the held set for a new tick. An action is pressed when it
// is held now and was not held on the previous tick.
func (k *KeyTracker) Advance(held InputFrame) {
	k.pressed = InputFrame{mask: held.mask &^ k.down.mask}
	k.down = held
}

// WasPressed reports whether a became held on this tick.
func (k *KeyTracker) WasPressed(a Action) bool { return k.pressed.Has(a) }
// IsDown reports whether a is held on this tick.
func (k *KeyTracker) IsDown(a Action) bool     { return k.down.Has(a) }
