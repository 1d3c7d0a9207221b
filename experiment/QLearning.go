package experiment

import (
	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/environment"
	"github.com/OverKoder/Jormungandr/experiment/checkpointer"
	"github.com/OverKoder/Jormungandr/planner"
	ts "github.com/OverKoder/Jormungandr/timestep"
)

// QLearning is an Experiment that learns with off-policy one-step
// Q-learning
type QLearning struct {
	solver
}

// NewQLearning returns a new QLearning experiment running the given
// number of episodes. The planner p may be nil.
func NewQLearning(env environment.Environment, a agent.Agent,
	p planner.Planner, episodes int, test bool,
	c ...checkpointer.Checkpointer) *QLearning {
	return &QLearning{newSolver(env, a, p, episodes, test, c)}
}

// Run runs all episodes of the experiment
func (q *QLearning) Run() {
	q.run(q.RunEpisode)
}

// RunEpisode runs a single episode and returns its return
func (q *QLearning) RunEpisode() float64 {
	step := q.reset()

	var episodeReturn float64
	for !step.Last() {
		state := step.Observation
		action := q.agent.SelectAction(state)

		step, _ = q.env.Step(action)
		q.track(step)
		episodeReturn += step.Reward

		if q.learning() {
			q.agent.QLearning(state, action, step.Reward, step.Observation,
				step.Last())
		}

		// Q-learning bootstraps from the greedy action, so the next
		// action is irrelevant to replays
		q.addStep(ts.NewTransition(state, action, step.Reward,
			step.Observation, 0))
	}

	q.endEpisode(step)
	return episodeReturn
}
