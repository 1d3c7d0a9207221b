// Package environment outlines the interfaces and sturcts needed to implement
// concrete environments
package environment

import (
	"github.com/OverKoder/Jormungandr/state"
	"github.com/OverKoder/Jormungandr/timestep"
)

// Task implements the reward scheme for taking actions in some environment.
//
// Terminal rewards (dying, reaching the goal) are fixed by the
// environment; a Task only decides the reward of ordinary steps.
type Task interface {
	// GetReward returns the reward for a non-terminal step that left the
	// agent with the given Manhattan distance to the goal
	GetReward(distance float64) float64

	// Min returns the minimum reward attainable in the Task
	Min() float64

	// Max returns the maximum reward attainable in the Task
	Max() float64
}

// Ender determines when episodes should end
type Ender interface {
	// End returns whether the episode should end. If so, End marks the
	// TimeStep as the last in the episode and records why it ended.
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated environment with discrete relative
// actions and a discrete State observation
type Environment interface {
	Reset() timestep.TimeStep // Resets between episodes
	Step(action state.Action) (timestep.TimeStep, bool)
	CurrentTimeStep() timestep.TimeStep
	ActionSpec() Spec
	ObservationSpec() Spec
}
