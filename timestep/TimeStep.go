// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"github.com/OverKoder/Jormungandr/state"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended
type EndType int

const (
	// Unended is the EndType of any TimeStep that is not the last
	Unended EndType = iota

	// GoalReached indicates the snake reached the goal cell
	GoalReached

	// Death indicates the snake left the grid or ran into its own body
	Death

	// StepLimit indicates the episode hit its step ceiling
	StepLimit
)

func (e EndType) String() string {
	switch e {
	case GoalReached:
		return "GoalReached"
	case Death:
		return "Death"
	case StepLimit:
		return "StepLimit"
	default:
		return "Unended"
	}
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	StepType
	Reward      float64
	Observation state.State
	Number      int
	endType     EndType
}

// New returns a new TimeStep
func New(t StepType, r float64, o state.State, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Observation: o, Number: n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the reason the episode ended
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns the reason the episode ended, or Unended if the
// TimeStep is not the last in its episode
func (t *TimeStep) EndType() EndType {
	return t.endType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  End: %v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.endType, t.Number)
}
