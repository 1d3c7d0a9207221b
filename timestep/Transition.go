package timestep

import (
	"fmt"

	"github.com/OverKoder/Jormungandr/state"
)

// Transition is a single unit of experience. One-step methods fill in
// the SARSA tuple (State, Action, Reward, NextState, NextAction), where
// NextAction is only meaningful for on-policy methods. n-step methods
// instead record the multi-step return in Gain and, for off-policy
// learning, the importance sampling ratio in Ratio.
type Transition struct {
	State      state.State
	Action     state.Action
	Reward     float64
	NextState  state.State
	NextAction state.Action
	Gain       float64
	Ratio      float64
}

// NewTransition returns a one-step Transition
func NewTransition(s state.State, a state.Action, r float64,
	next state.State, nextA state.Action) Transition {
	return Transition{
		State:      s,
		Action:     a,
		Reward:     r,
		NextState:  next,
		NextAction: nextA,
		Ratio:      1.0,
	}
}

// NewNStepTransition returns a Transition carrying an n-step return
func NewNStepTransition(s state.State, a state.Action, gain,
	ratio float64) Transition {
	return Transition{State: s, Action: a, Gain: gain, Ratio: ratio}
}

func (t Transition) String() string {
	return fmt.Sprintf("Transition | S: %v  A: %v  R: %.2f  S': %v  A': %v"+
		"  G: %.2f  ρ: %.2f", t.State, t.Action, t.Reward, t.NextState,
		t.NextAction, t.Gain, t.Ratio)
}
