// Package policy implements ε-greedy action selection over the action
// values of a single state
package policy

import (
	"fmt"
	"math"

	"github.com/OverKoder/Jormungandr/state"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// MinEpsilon is the value below which a decaying ε is pinned to 0
const MinEpsilon = 1e-3

// Config determines the exploration schedule of an EGreedy policy.
//
// If EpsilonDecay is 0, ε stays fixed at Epsilon. Otherwise, after t
// action selections ε = EpsilonEnd + (Epsilon - EpsilonEnd) *
// exp(-t / EpsilonDecay), until ε falls below MinEpsilon at which point
// it is set to 0 and no longer decays.
type Config struct {
	Epsilon      float64 `mapstructure:"epsilon" yaml:"epsilon"`
	EpsilonEnd   float64 `mapstructure:"epsilon_end" yaml:"epsilon_end"`
	EpsilonDecay float64 `mapstructure:"epsilon_decay" yaml:"epsilon_decay"`
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("validate: epsilon must be in [0, 1], got %v",
			c.Epsilon)
	}
	if c.EpsilonEnd < 0 || c.EpsilonEnd > 1 {
		return fmt.Errorf("validate: epsilon end must be in [0, 1], got %v",
			c.EpsilonEnd)
	}
	if c.EpsilonDecay < 0 {
		return fmt.Errorf("validate: epsilon decay cannot be negative, "+
			"got %v", c.EpsilonDecay)
	}
	return nil
}

// EGreedy implements an ε-greedy policy over a slice of action values.
// Ties between greedy actions are broken in favour of the lowest index.
type EGreedy struct {
	epsilon    float64
	start, end float64
	decay      float64
	decaying   bool
	steps      int
	rng        *rand.Rand
}

// NewEGreedy creates a new EGreedy policy
func NewEGreedy(c Config, seed uint64) (*EGreedy, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newEGreedy: %v", err)
	}

	return &EGreedy{
		epsilon:  c.Epsilon,
		start:    c.Epsilon,
		end:      c.EpsilonEnd,
		decay:    c.EpsilonDecay,
		decaying: c.EpsilonDecay > 0,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// NewGreedy returns an EGreedy policy with ε = 0
func NewGreedy(seed uint64) *EGreedy {
	p, err := NewEGreedy(Config{}, seed)
	if err != nil {
		panic(err)
	}
	return p
}

// Epsilon returns the current value of ε
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Steps returns the number of actions selected so far
func (p *EGreedy) Steps() int {
	return p.steps
}

// SelectAction selects an action given the action values of a state
func (p *EGreedy) SelectAction(values []float64) state.Action {
	checkValues(values)

	prob := p.rng.Float64()
	p.steps++

	if p.decaying {
		p.epsilon = p.end + (p.start-p.end)*
			math.Exp(-float64(p.steps)/p.decay)

		if p.epsilon < MinEpsilon {
			p.decaying = false
			p.epsilon = 0
		}
	}

	if prob < p.epsilon {
		return state.Action(p.rng.Intn(len(values)))
	}
	return GreedyAction(values)
}

// ActionProbabilities returns the probability with which SelectAction
// picks each action given the current ε
func (p *EGreedy) ActionProbabilities(values []float64) []float64 {
	checkValues(values)

	probs := make([]float64, len(values))
	floats.AddConst(p.epsilon/float64(len(values)), probs)
	probs[GreedyAction(values)] += 1.0 - p.epsilon
	return probs
}

// GreedyProbabilities returns the action probabilities of the greedy
// policy: 1 for the greedy action and 0 for the rest
func (p *EGreedy) GreedyProbabilities(values []float64) []float64 {
	checkValues(values)

	probs := make([]float64, len(values))
	probs[GreedyAction(values)] = 1.0
	return probs
}

// GreedyAction returns the action with the largest value, preferring the
// lowest index on ties
func GreedyAction(values []float64) state.Action {
	return state.Action(floats.MaxIdx(values))
}

func checkValues(values []float64) {
	if len(values) != state.NumActions {
		panic(fmt.Sprintf("policy: expected %d action values, got %d",
			state.NumActions, len(values)))
	}
}

func (p *EGreedy) String() string {
	return fmt.Sprintf("EGreedy | ε: %.4f  |  Steps: %d", p.epsilon, p.steps)
}
