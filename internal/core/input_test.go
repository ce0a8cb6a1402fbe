package core

import "testing"

func TestInputFrameLastDirectionWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionPause)
	f.Set(ActionDown)

	dir, ok := f.Direction()
	if !ok {
		t.Fatal("Direction() should report a buffered direction")
	}
	if dir != DirDown {
		t.Errorf("Direction() = %s, expected down", dir)
	}
	if !f.Has(ActionPause) {
		t.Error("Pause should still be set")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Clear()

	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
	if _, ok := f.Direction(); ok {
		t.Error("Clear should drop the buffered direction")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	f.Clear()

	if dir, ok := clone.Direction(); !ok || dir != DirRight {
		t.Errorf("clone Direction() = %s, %v; expected right, true", dir, ok)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}
