// Package mover holds the quadrant path mover chain: per-node progress
// state, the fixed-period animator and the drawing of each node's bent
// path.
package mover

// State is the animated progress of one node. Scale travels between the
// committed values 0 and 1 in equal steps; progress is counted in whole
// steps so a unit always completes after exactly stepsPerUnit updates.
type State struct {
	scale     float64
	prevScale float64
	dir       int

	steps        int
	stepsPerUnit int
}

func NewState(stepsPerUnit int) *State {
	if stepsPerUnit < 1 {
		stepsPerUnit = 1
	}
	return &State{stepsPerUnit: stepsPerUnit}
}

func (s *State) Scale() float64     { return s.scale }
func (s *State) PrevScale() float64 { return s.prevScale }
func (s *State) Dir() int           { return s.dir }
func (s *State) Idle() bool         { return s.dir == 0 }

// Update advances scale by one step in the active direction. It reports
// true on the update that completes a full unit; scale is then snapped to
// the new committed value and the state goes idle.
func (s *State) Update() bool {
	if s.dir == 0 {
		return false
	}
	s.steps++
	s.scale = s.prevScale + float64(s.dir*s.steps)/float64(s.stepsPerUnit)
	if s.steps < s.stepsPerUnit {
		return false
	}
	s.scale = s.prevScale + float64(s.dir)
	s.prevScale = s.scale
	s.dir = 0
	s.steps = 0
	return true
}

// StartUpdating arms the state toward the opposite committed value. It is
// a no-op returning false while a unit is in flight.
func (s *State) StartUpdating() bool {
	if s.dir != 0 {
		return false
	}
	s.dir = 1 - 2*int(s.prevScale)
	return true
}

// commit sets an idle state to a committed value (0 or 1).
func (s *State) commit(v float64) {
	s.scale = v
	s.prevScale = v
	s.dir = 0
	s.steps = 0
}
