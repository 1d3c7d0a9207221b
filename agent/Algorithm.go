package agent

import (
	"fmt"
	"strings"
)

// Algorithm names an update rule used to learn action values. The same
// tag selects how the experiment collects experience and how a planner
// replays it.
type Algorithm string

const (
	// One-step methods
	Sarsa     Algorithm = "sarsa"
	QLearning Algorithm = "qlearning"

	// Multi-step methods
	NStepSarsa     Algorithm = "nStepSarsa"
	NStepOffPolicy Algorithm = "nStepOffPolicy"
)

// registeredAlgorithms maps the lower case form of each tag to its
// Algorithm so that tags can be parsed case-insensitively
var registeredAlgorithms map[string]Algorithm

func init() {
	registeredAlgorithms = make(map[string]Algorithm)
	for _, alg := range []Algorithm{Sarsa, QLearning, NStepSarsa,
		NStepOffPolicy} {
		registeredAlgorithms[strings.ToLower(string(alg))] = alg
	}
}

// ParseAlgorithm returns the Algorithm named by tag, ignoring case
func ParseAlgorithm(tag string) (Algorithm, error) {
	alg, ok := registeredAlgorithms[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return "", fmt.Errorf("parseAlgorithm: unknown algorithm %q", tag)
	}
	return alg, nil
}

// Validate returns an error if a is not a known Algorithm
func (a Algorithm) Validate() error {
	if _, err := ParseAlgorithm(string(a)); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	return nil
}

// NStep returns whether the Algorithm learns from n-step returns
func (a Algorithm) NStep() bool {
	return a == NStepSarsa || a == NStepOffPolicy
}

// OffPolicy returns whether the Algorithm corrects its n-step returns
// with importance sampling
func (a Algorithm) OffPolicy() bool {
	return a == NStepOffPolicy
}
