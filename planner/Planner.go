// Package planner implements Dyna-style planners that record real
// transitions in a model of the environment and replay them into an
// agent's action values between episodes.
package planner

import (
	"fmt"
	"strings"

	"github.com/OverKoder/Jormungandr/agent"
	"github.com/OverKoder/Jormungandr/timestep"
)

// Type determines which kind of Planner a Config creates
type Type string

const (
	// None disables planning
	None Type = "none"

	// DynaQType replays uniformly sampled transitions
	DynaQType Type = "dynaq"

	// PrioritizedType replays transitions in order of their TD error
	PrioritizedType Type = "prioritized"
)

// Planner records transitions and replays them into a learner
type Planner interface {
	// AddStep records a single transition in the model
	AddStep(t timestep.Transition)

	// Plan replays transitions from the model into the learner
	Plan()

	// ResetModel forgets all recorded transitions
	ResetModel()

	// Len returns the number of transitions in the model
	Len() int
}

// Config implements a specific configuration of a Planner
type Config struct {
	Type          Type            `mapstructure:"type" yaml:"type"`
	PlanningSteps int             `mapstructure:"planning_steps" yaml:"planning_steps"`
	Threshold     float64         `mapstructure:"threshold" yaml:"threshold"`
	Algorithm     agent.Algorithm `mapstructure:"algorithm" yaml:"algorithm"`
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.PlanningSteps < 0 {
		return &Error{Op: "validate", Err: errNegativeSteps}
	}
	if c.PlanningSteps == 0 || c.typ() == None {
		return nil
	}

	if err := c.Algorithm.Validate(); err != nil {
		return fmt.Errorf("validate: %v", err)
	}

	switch c.typ() {
	case DynaQType:
	case PrioritizedType:
		if c.Algorithm.NStep() {
			return &Error{Op: "validate", Err: errUnsupportedAlgorithm}
		}
	default:
		return &Error{Op: "validate", Err: errUnknownType}
	}
	return nil
}

func (c Config) typ() Type {
	return Type(strings.ToLower(string(c.Type)))
}

// Create creates and returns the Planner with the specified Config.
// If the Config disables planning, Create returns a nil Planner.
func (c Config) Create(learner agent.TdErrorer, seed uint64) (Planner,
	error) {
	return New(c, learner, seed)
}

// New is a factory for creating Planners. If planning is disabled,
// either through zero planning steps or the None type, New returns a
// nil Planner and nil error.
func New(c Config, learner agent.TdErrorer, seed uint64) (Planner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.PlanningSteps == 0 || c.typ() == None {
		return nil, nil
	}

	if c.typ() == PrioritizedType {
		return NewPrioritized(learner, c.Algorithm, c.PlanningSteps,
			c.Threshold), nil
	}
	return NewDynaQ(learner, c.Algorithm, c.PlanningSteps, seed), nil
}
