package experiment

import (
	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/environment"
	"github.com/OverKoder/Jormungandr/experiment/checkpointer"
	"github.com/OverKoder/Jormungandr/planner"
	ts "github.com/OverKoder/Jormungandr/timestep"
)

// Sarsa is an Experiment that learns with on-policy one-step SARSA
type Sarsa struct {
	solver
}

// NewSarsa returns a new Sarsa experiment running the given number of
// episodes. The planner p may be nil.
func NewSarsa(env environment.Environment, a agent.Agent, p planner.Planner,
	episodes int, test bool, c ...checkpointer.Checkpointer) *Sarsa {
	return &Sarsa{newSolver(env, a, p, episodes, test, c)}
}

// Run runs all episodes of the experiment
func (s *Sarsa) Run() {
	s.run(s.RunEpisode)
}

// RunEpisode runs a single episode and returns its return
func (s *Sarsa) RunEpisode() float64 {
	step := s.reset()
	state := step.Observation
	action := s.agent.SelectAction(state)

	var episodeReturn float64
	for !step.Last() {
		step, _ = s.env.Step(action)
		s.track(step)
		episodeReturn += step.Reward

		next := step.Observation
		nextAction := s.agent.SelectAction(next)

		if s.learning() {
			s.agent.Sarsa(state, action, step.Reward, next, nextAction,
				step.Last())
		}
		s.addStep(ts.NewTransition(state, action, step.Reward, next,
			nextAction))

		state, action = next, nextAction
	}

	s.endEpisode(step)
	return episodeReturn
}
