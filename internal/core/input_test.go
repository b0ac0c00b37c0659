package core

import (
	"math"
	"testing"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionFire)

	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Fatal("constructor actions should be set")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as active")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove every action")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) || !zero.Empty() {
		t.Error("zero frame should be empty")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionFire, "Fire"},
		{ActionPause, "Pause"},
		{Action(999), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}

func TestRuntimeConfigDT(t *testing.T) {
	if dt := (RuntimeConfig{TickRate: 30}).DT(); dt != 1.0/30 {
		t.Errorf("DT() = %v, expected 1/30", dt)
	}
	if dt := (RuntimeConfig{}).DT(); dt != 1.0/60 {
		t.Errorf("DT() with zero tick rate = %v, expected 1/60", dt)
	}
	if d := DefaultConfig().TickDuration(90); math.Abs(d.Seconds()-1.5) > 1e-6 {
		t.Errorf("TickDuration(90) = %v, expected 1.5s", d)
	}
}
