package environment

import "github.com/OverKoder/Jormungandr/timestep"

// StepLimit is an Ender that cuts an episode off once it has run for a
// fixed number of steps, marking the cut step with timestep.StepLimit
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit returns a StepLimit ending episodes at step episodeSteps
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// Steps returns the step ceiling
func (s StepLimit) Steps() int {
	return s.episodeSteps
}

// End reports whether t reaches the step ceiling. If it does, t becomes
// the last step of its episode.
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Number < s.episodeSteps {
		return false
	}
	t.StepType = timestep.Last
	t.SetEnd(timestep.StepLimit)
	return true
}
