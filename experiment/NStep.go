package experiment

import (
	"fmt"
	"math"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/environment"
	"github.com/OverKoder/Jormungandr/experiment/checkpointer"
	"github.com/OverKoder/Jormungandr/planner"
	"github.com/OverKoder/Jormungandr/state"
	ts "github.com/OverKoder/Jormungandr/timestep"
	"github.com/OverKoder/Jormungandr/utils/intutils"
)

// NStep is an Experiment that learns with n-step SARSA. If offPolicy is
// set, the n-step returns are corrected with importance sampling so
// that the greedy policy is learned while acting with the behaviour
// policy.
//
// The last n+1 states, actions, and rewards are kept in circular
// buffers indexed by time step modulo n+1.
type NStep struct {
	solver
	n         int
	offPolicy bool

	states  []state.State
	actions []state.Action
	rewards []float64
}

// NewNStep returns a new NStep experiment running the given number of
// episodes. The planner p may be nil.
func NewNStep(env environment.Environment, a agent.Agent, p planner.Planner,
	n int, offPolicy bool, episodes int, test bool,
	c ...checkpointer.Checkpointer) (*NStep, error) {
	if n < 1 {
		return nil, fmt.Errorf("newNStep: n must be at least 1, got %d", n)
	}

	return &NStep{
		solver:    newSolver(env, a, p, episodes, test, c),
		n:         n,
		offPolicy: offPolicy,
		states:    make([]state.State, n+1),
		actions:   make([]state.Action, n+1),
		rewards:   make([]float64, n+1),
	}, nil
}

// N returns the number of steps in each return
func (e *NStep) N() int {
	return e.n
}

// Run runs all episodes of the experiment
func (e *NStep) Run() {
	e.run(e.RunEpisode)
}

// at returns the buffer index of time step t
func (e *NStep) at(t int) int {
	return t % (e.n + 1)
}

// RunEpisode runs a single episode and returns its return
func (e *NStep) RunEpisode() float64 {
	step := e.reset()
	e.states[0] = step.Observation
	e.actions[0] = e.agent.SelectAction(step.Observation)

	var episodeReturn float64
	end := math.MaxInt
	for t := 0; ; t++ {
		if t < end {
			step, _ = e.env.Step(e.actions[e.at(t)])
			e.track(step)
			episodeReturn += step.Reward

			e.rewards[e.at(t+1)] = step.Reward
			e.states[e.at(t+1)] = step.Observation

			if step.Last() {
				end = t + 1
			} else {
				e.actions[e.at(t+1)] = e.agent.SelectAction(step.Observation)
			}
		}

		// tau is the time step whose estimate is updated
		tau := t - e.n + 1
		if tau >= 0 {
			e.update(tau, end)
		}

		if tau == end-1 {
			break
		}
	}

	e.endEpisode(step)
	return episodeReturn
}

// update moves the estimate of time step tau towards its n-step return
// given that the episode ends at time step end
func (e *NStep) update(tau, end int) {
	ratio := 1.0
	if e.offPolicy {
		ratio = e.ratio(tau+1, intutils.Min(tau+e.n, end-1))
	}

	var gain float64
	for i := tau + 1; i <= intutils.Min(tau+e.n, end); i++ {
		gain += e.rewards[e.at(i)]
	}
	if tau+e.n < end {
		gain += e.agent.Value(e.states[e.at(tau+e.n)],
			e.actions[e.at(tau+e.n)])
	}

	s, a := e.states[e.at(tau)], e.actions[e.at(tau)]
	if e.learning() {
		if e.offPolicy {
			e.agent.NStepOffPolicy(s, a, ratio, gain)
		} else {
			e.agent.NStepSarsa(s, a, gain)
		}
	}
	e.addStep(ts.NewNStepTransition(s, a, gain, ratio))
}

// ratio returns the importance sampling ratio of the greedy target
// policy to the behaviour policy over time steps [from, to]. Both
// policies are evaluated with the current action values and ε, not
// those in force when each action was selected.
func (e *NStep) ratio(from, to int) float64 {
	ratio := 1.0
	for i := from; i <= to; i++ {
		s, a := e.states[e.at(i)], e.actions[e.at(i)]

		b := e.agent.ActionProbabilities(s)[a]
		if b == 0 {
			return 0
		}
		ratio *= e.agent.GreedyProbabilities(s)[a] / b
	}
	return ratio
}
