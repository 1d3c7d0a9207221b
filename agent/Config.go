package agent

import (
	"github.com/OverKoder/Jormungandr/environment"
	"github.com/OverKoder/Jormungandr/state"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes for the
	// environment env, acting with the argument action selector
	CreateAgent(env environment.Environment, selector Selector) (Agent,
		error)

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error
}

// Selector chooses actions given the action values of a single state
type Selector interface {
	SelectAction(values []float64) state.Action
	ActionProbabilities(values []float64) []float64
	GreedyProbabilities(values []float64) []float64
}
