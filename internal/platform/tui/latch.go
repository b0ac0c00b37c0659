package tui

import (
	"time"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// latchHold is how long a movement key counts as held after its last
// press. Terminals report key repeats but never releases, so this bridges
// the gap between the first press and the start of auto-repeat.
const latchHold = 250 * time.Millisecond

// opposite pairs directions so that pressing one drops the other at once.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

func holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionJump, core.ActionFire:
		return true
	}
	return false
}

// inputLatch turns key press events into per-tick input frames.
// Movement and fire keys stay held for a few ticks; everything else fires
// exactly once.
type inputLatch struct {
	hold int // ticks
	held map[core.Action]int
	once core.InputFrame
}

func newInputLatch(tickRate int) *inputLatch {
	cfg := core.RuntimeConfig{TickRate: tickRate}
	return &inputLatch{
		hold: max(int(latchHold.Seconds()/cfg.DT()), 1),
		held: make(map[core.Action]int),
		once: core.NewInputFrame(),
	}
}

// press records a key press.
func (l *inputLatch) press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !holdable(a) {
		l.once.Set(a)
		return
	}
	if o, ok := opposite[a]; ok {
		delete(l.held, o)
	}
	l.held[a] = l.hold
}

// frame returns the input for the next tick and ages the held keys.
func (l *inputLatch) frame() core.InputFrame {
	f := l.once.Clone()
	l.once.Clear()

	for a, left := range l.held {
		f.Set(a)
		if left <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = left - 1
		}
	}
	return f
}

// reset drops all pending input.
func (l *inputLatch) reset() {
	clear(l.held)
	l.once.Clear()
}
