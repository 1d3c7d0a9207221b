// Package tabular implements an agent that stores one action value for
// every (state, action) pair in a table and learns them with one-step
// and n-step SARSA and Q-learning updates.
package tabular

import (
	"fmt"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/state"
	"github.com/OverKoder/Jormungandr/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Agent implements a tabular action value agent. The table has one row
// per state, indexed by state.State.Index, and one column per action.
//
// Updates are undiscounted and applied in place. The table is shared
// with anything holding the *mat.Dense returned by Weights.
type Agent struct {
	weights      *mat.Dense
	learningRate float64
	selector     agent.Selector
}

// New creates a new tabular Agent with all action values set to zero
func New(c Config, selector agent.Selector) (*Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	if selector == nil {
		return nil, fmt.Errorf("new: nil action selector")
	}

	weights := mat.NewDense(state.NumStates, state.NumActions, nil)
	return &Agent{weights, c.LearningRate, selector}, nil
}

// LearningRate returns the step size of the updates
func (t *Agent) LearningRate() float64 {
	return t.learningRate
}

// row returns the row of the table holding the values of s, panicking
// if s does not encode exactly one heading
func row(s state.State) int {
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("row: %v", err))
	}
	return s.Index()
}

func col(a state.Action) int {
	if !a.Valid() {
		panic(fmt.Sprintf("col: invalid action %d", int(a)))
	}
	return int(a)
}

// Values returns a copy of the action values of s
func (t *Agent) Values(s state.State) []float64 {
	return mat.Row(nil, row(s), t.weights)
}

// Value returns Q(s, a)
func (t *Agent) Value(s state.State, a state.Action) float64 {
	return t.weights.At(row(s), col(a))
}

// maxValue returns the value of the greedy action in s
func (t *Agent) maxValue(s state.State) float64 {
	return floats.Max(t.Values(s))
}

// update moves Q(s, a) a fraction step of the way towards target
func (t *Agent) update(s state.State, a state.Action, step, target float64) {
	r, c := row(s), col(a)
	current := t.weights.At(r, c)
	t.weights.Set(r, c, current+step*(target-current))
}

// Sarsa performs a one-step SARSA update
func (t *Agent) Sarsa(s state.State, a state.Action, r float64,
	next state.State, nextA state.Action, terminal bool) {
	target := r
	if !terminal {
		target += t.Value(next, nextA)
	}
	t.update(s, a, t.learningRate, target)
}

// QLearning performs a one-step Q-learning update
func (t *Agent) QLearning(s state.State, a state.Action, r float64,
	next state.State, terminal bool) {
	target := r
	if !terminal {
		target += t.maxValue(next)
	}
	t.update(s, a, t.learningRate, target)
}

// NStepSarsa moves Q(s, a) towards the n-step return gain
func (t *Agent) NStepSarsa(s state.State, a state.Action, gain float64) {
	t.update(s, a, t.learningRate, gain)
}

// NStepOffPolicy moves Q(s, a) towards the n-step return gain with a
// step size scaled by the importance sampling ratio
func (t *Agent) NStepOffPolicy(s state.State, a state.Action, ratio,
	gain float64) {
	t.update(s, a, t.learningRate*ratio, gain)
}

// TdError returns the TD error of a transition under the update rule of
// alg, treating the transition as non-terminal. For n-step algorithms
// the target is the stored gain.
func (t *Agent) TdError(tr timestep.Transition, alg agent.Algorithm) float64 {
	var target float64
	switch alg {
	case agent.Sarsa:
		target = tr.Reward + t.Value(tr.NextState, tr.NextAction)

	case agent.QLearning:
		target = tr.Reward + t.maxValue(tr.NextState)

	case agent.NStepSarsa, agent.NStepOffPolicy:
		target = tr.Gain

	default:
		panic(fmt.Sprintf("tdError: unknown algorithm %q", alg))
	}
	return target - t.Value(tr.State, tr.Action)
}

// SelectAction selects an action in s with the behaviour policy
func (t *Agent) SelectAction(s state.State) state.Action {
	return t.selector.SelectAction(t.Values(s))
}

// GreedyAction returns the action with the largest value in s
func (t *Agent) GreedyAction(s state.State) state.Action {
	return state.Action(floats.MaxIdx(t.Values(s)))
}

// ActionProbabilities returns the behaviour policy's probability of
// selecting each action in s
func (t *Agent) ActionProbabilities(s state.State) []float64 {
	return t.selector.ActionProbabilities(t.Values(s))
}

// GreedyProbabilities returns the greedy policy's probability of
// selecting each action in s
func (t *Agent) GreedyProbabilities(s state.State) []float64 {
	return t.selector.GreedyProbabilities(t.Values(s))
}

// Weights returns the action value table
func (t *Agent) Weights() *mat.Dense {
	return t.weights
}

// SetWeights sets the action value table, which must have one row per
// state and one column per action
func (t *Agent) SetWeights(weights *mat.Dense) error {
	if r, c := weights.Dims(); r != state.NumStates || c != state.NumActions {
		return fmt.Errorf("setWeights: table must be %dx%d, got %dx%d",
			state.NumStates, state.NumActions, r, c)
	}
	t.weights = weights
	return nil
}
