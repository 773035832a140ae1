package sim

// LightState represents a traffic light phase.
type LightState string

const (
	LightGreen  LightState = "green"
	LightYellow LightState = "yellow"
	LightRed    LightState = "red"
)

// Phase durations in ticks, matching the reference signal timing.
const (
	greenTicks  = 60
	yellowTicks = 10
	redTicks    = 60
)

// TrafficLight is a timer-driven green → yellow → red cycle. It is stepped
// by the display loop and is advisory only: neither assignment policy
// consults it.
type TrafficLight struct {
	state LightState
	timer int
}

// NewTrafficLight creates a light starting its green phase.
func NewTrafficLight() *TrafficLight {
	return &TrafficLight{state: LightGreen}
}

// State returns the current phase.
func (l *TrafficLight) State() LightState {
	return l.state
}

// Step advances the light's timer by one tick, cycling phases when their
// duration elapses.
func (l *TrafficLight) Step() {
	l.timer++
	switch {
	case l.state == LightGreen && l.timer > greenTicks:
		l.state = LightYellow
		l.timer = 0
	case l.state == LightYellow && l.timer > yellowTicks:
		l.state = LightRed
		l.timer = 0
	case l.state == LightRed && l.timer > redTicks:
		l.state = LightGreen
		l.timer = 0
	}
}
