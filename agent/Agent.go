// Package agent defines the interfaces implemented by agents that learn
// action values for the snake environment
package agent

import (
	"fmt"

	"github.com/OverKoder/Jormungandr/state"
	"github.com/OverKoder/Jormungandr/timestep"
	"gonum.org/v1/gonum/mat"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy and Learner
// share the same action values so that any update the Learner makes is
// reflected in the actions the Policy chooses.
type Agent interface {
	Learner
	Policy
}

// Learner implements the update rules that change action values. All
// updates are undiscounted.
type Learner interface {
	// Sarsa moves Q(s, a) towards r, or r + Q(next, nextA) if the
	// transition is not terminal
	Sarsa(s state.State, a state.Action, r float64, next state.State,
		nextA state.Action, terminal bool)

	// QLearning moves Q(s, a) towards r, or r + max_a' Q(next, a') if
	// the transition is not terminal
	QLearning(s state.State, a state.Action, r float64, next state.State,
		terminal bool)

	// NStepSarsa moves Q(s, a) towards the n-step return gain
	NStepSarsa(s state.State, a state.Action, gain float64)

	// NStepOffPolicy moves Q(s, a) towards gain, scaling the step by
	// the importance sampling ratio
	NStepOffPolicy(s state.State, a state.Action, ratio, gain float64)

	// Value returns Q(s, a)
	Value(s state.State, a state.Action) float64

	// Weights returns the action value table
	Weights() *mat.Dense
	SetWeights(*mat.Dense) error
}

// TdErrorer is a Learner that can return the TD error of a transition
type TdErrorer interface {
	Learner

	// TdError returns the non-terminal TD error of a one-step transition
	// under the update rule of alg
	TdError(t timestep.Transition, alg Algorithm) float64
}

// Policy represents a policy that an agent can have.
type Policy interface {
	SelectAction(s state.State) state.Action
	GreedyAction(s state.State) state.Action

	// ActionProbabilities returns the probability of the behaviour
	// policy selecting each action in s
	ActionProbabilities(s state.State) []float64

	// GreedyProbabilities returns the probability of the greedy target
	// policy selecting each action in s
	GreedyProbabilities(s state.State) []float64
}

// Replay applies the update rule of alg to a Transition. One-step
// transitions use the SARSA tuple while n-step transitions use their
// stored gain and ratio.
func Replay(l Learner, t timestep.Transition, alg Algorithm,
	terminal bool) {
	switch alg {
	case Sarsa:
		l.Sarsa(t.State, t.Action, t.Reward, t.NextState, t.NextAction,
			terminal)

	case QLearning:
		l.QLearning(t.State, t.Action, t.Reward, t.NextState, terminal)

	case NStepSarsa:
		l.NStepSarsa(t.State, t.Action, t.Gain)

	case NStepOffPolicy:
		l.NStepOffPolicy(t.State, t.Action, t.Ratio, t.Gain)

	default:
		panic(fmt.Sprintf("replay: unknown algorithm %q", alg))
	}
}
