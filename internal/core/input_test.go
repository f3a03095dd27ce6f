package core

import "testing"

func frameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("empty frame should not have Left")
	}

	f.Set(ActionLeft)
	f.Set(ActionUp)
	if !f.Has(ActionLeft) || !f.Has(ActionUp) {
		t.Error("frame should have Left and Up")
	}

	if f.Len() != 2 {
		t.Errorf("Len = %d, want 2", f.Len())
	}

	copied := f
	f.Clear()
	if f.Has(ActionLeft) || f.Len() != 0 {
		t.Error("Clear should remove all actions")
	}
	if !copied.Has(ActionLeft) {
		t.Error("a copied frame should not share state")
	}

	var zero InputFrame
	zero.Set(ActionNone)
	zero.Set(Action(42))
	if zero.Len() != 0 || zero.Has(Action(42)) {
		t.Error("None and unknown actions should be ignored")
	}
}

func TestKeyTrackerHeldKeyPressesOnce(t *testing.T) {
	k := NewKeyTracker()

	presses := 0
	for i := 0; i < 30; i++ {
		k.Advance(frameOf(ActionConfirm))
		if k.WasPressed(ActionConfirm) {
			presses++
			if i != 0 {
				t.Errorf("press registered on frame %d, expected frame 0", i)
			}
		}
		if !k.IsDown(ActionConfirm) {
			t.Fatalf("frame %d: key should be down", i)
		}
	}
	if presses != 1 {
		t.Errorf("holding a key for 30 frames gave %d presses, expected 1", presses)
	}
}

func TestKeyTrackerReleaseAndPressAgain(t *testing.T) {
	k := NewKeyTracker()

	sequence := []struct {
		held    bool
		pressed bool
	}{
		{true, true},
		{true, false},
		{false, false},
		{true, true},
		{false, false},
		{false, false},
		{true, true},
	}

	for i, step := range sequence {
		if step.held {
			k.Advance(frameOf(ActionUp))
		} else {
			k.Advance(NewInputFrame())
		}
		if got := k.WasPressed(ActionUp); got != step.pressed {
			t.Errorf("step %d: WasPressed = %v, expected %v", i, got, step.pressed)
		}
	}
}

func TestKeyTrackerIndependentKeys(t *testing.T) {
	k := NewKeyTracker()

	k.Advance(frameOf(ActionUp))
	k.Advance(frameOf(ActionUp, ActionDown))

	if k.WasPressed(ActionUp) {
		t.Error("Up is still held, should not be pressed again")
	}
	if !k.WasPressed(ActionDown) {
		t.Error("Down was newly held, should be pressed")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" {
		t.Errorf("ActionConfirm.String() = %q", ActionConfirm.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
