package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(f.Actions) != len(want) {
		t.Fatalf("Actions = %v, expected %v", f.Actions, want)
	}
	for i := range want {
		if f.Actions[i] != want[i] {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], want[i])
		}
	}

	if !f.Has(ActionRotate) || f.Has(ActionDrop) {
		t.Error("Has() does not reflect recorded actions")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionPause) {
		t.Error("Clone should keep actions after the source is cleared")
	}
}

func TestActionString(t *testing.T) {
	if ActionDrop.String() != "Drop" {
		t.Errorf("ActionDrop.String() = %q", ActionDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
