package minesweeper

// effects holds timed visual feedback. Effects observe outcomes and never
// touch the rules state.
type effects struct {
	flashIndex int // Cell of the last bomb hit
	flashTicks int
	flashTotal int

	sparkleTicks int
}

func (e *effects) reset() {
	*e = effects{}
}

// flash highlights a hit bomb for the given number of ticks.
func (e *effects) flash(index, ticks int) {
	e.flashIndex = index
	e.flashTicks = ticks
	e.flashTotal = ticks
}

// sparkle starts the victory animation.
func (e *effects) sparkle(ticks int) {
	e.sparkleTicks = ticks
}

// step advances all timers by one tick.
func (e *effects) step() {
	if e.flashTicks > 0 {
		e.flashTicks--
	}
	if e.sparkleTicks > 0 {
		e.sparkleTicks--
	}
}

// flashing reports whether index should be drawn as a hit bomb this tick.
// The highlight blinks four times over its lifetime.
func (e *effects) flashing(index int) bool {
	if e.flashTicks == 0 || index != e.flashIndex {
		return false
	}
	period := e.flashTotal / 8
	if period == 0 {
		return true
	}
	return ((e.flashTotal-e.flashTicks)/period)%2 == 0
}

// sparkling reports whether the victory animation is running.
func (e *effects) sparkling() bool {
	return e.sparkleTicks > 0
}
