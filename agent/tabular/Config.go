package tabular

import (
	"fmt"
	"os"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/environment"
	"github.com/OverKoder/Jormungandr/state"
)

// Config represents a configuration for the tabular agent
type Config struct {
	LearningRate float64 `mapstructure:"learning_rate" yaml:"learning_rate"`
}

// CreateAgent creates the agent from the Config, sizing its table from
// the specifications of env. The action values are always initialized
// to zero using this function. To start from a snapshot, call Load on
// the returned agent.
func (c Config) CreateAgent(env environment.Environment,
	selector agent.Selector) (agent.Agent, error) {
	return NewForEnv(c, env, selector)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate < 0 {
		return fmt.Errorf("validate: learning rate cannot be negative, "+
			"got %v", c.LearningRate)
	}
	if c.LearningRate > 1 {
		fmt.Fprintf(os.Stderr, "Warning: learning rate %v > 1 may diverge\n",
			c.LearningRate)
	}
	return nil
}

// NewForEnv creates a new tabular Agent for env. The observation and
// action specifications of env must describe the table the state
// encoding indexes: one row per combination of the discrete observation
// features and one column per action.
func NewForEnv(c Config, env environment.Environment,
	selector agent.Selector) (*Agent, error) {
	rows, cols, err := TableShape(env)
	if err != nil {
		return nil, fmt.Errorf("newForEnv: %v", err)
	}
	if rows != state.NumStates || cols != state.NumActions {
		return nil, fmt.Errorf("newForEnv: environment needs a %dx%d "+
			"table, states index a %dx%d table", rows, cols,
			state.NumStates, state.NumActions)
	}
	return New(c, selector)
}

// TableShape returns the shape of the action value table needed for env
func TableShape(env environment.Environment) (rows, cols int, err error) {
	obs, act := env.ObservationSpec(), env.ActionSpec()
	if obs.Cardinality != environment.Discrete ||
		act.Cardinality != environment.Discrete {
		return 0, 0, fmt.Errorf("tableShape: tabular agents need discrete "+
			"observations and actions, got %v observations and %v actions",
			obs.Cardinality, act.Cardinality)
	}

	actions := act.Cardinalities()
	if len(actions) != 1 {
		return 0, 0, fmt.Errorf("tableShape: expected a single action "+
			"dimension, got %d", len(actions))
	}

	rows = 1
	for _, n := range obs.Cardinalities() {
		rows *= n
	}
	return rows, actions[0], nil
}
