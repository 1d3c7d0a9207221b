// Package state implements the discrete state and action encoding used
// by the snake environment and the tabular agents that learn on it.
//
// A State is a fixed set of 11 boolean features describing what the
// snake senses relative to its head: which of the three relative cells
// around the head are dangerous, which absolute direction the snake is
// heading, and in which absolute directions the goal lies.
package state

import (
	"fmt"
	"strings"
)

// Feature indexes a single boolean feature of a State
type Feature int

const (
	DangerFront Feature = iota
	DangerLeft
	DangerRight
	GoingNorth
	GoingSouth
	GoingWest
	GoingEast
	GoalNorth
	GoalSouth
	GoalWest
	GoalEast
)

// NumFeatures is the number of boolean features in a State
const NumFeatures = 11

// NumStates is the number of distinct States, 2^NumFeatures
const NumStates = 1 << NumFeatures

var featureNames = [NumFeatures]string{
	"DangerFront", "DangerLeft", "DangerRight",
	"GoingNorth", "GoingSouth", "GoingWest", "GoingEast",
	"GoalNorth", "GoalSouth", "GoalWest", "GoalEast",
}

// String returns the name of the Feature
func (f Feature) String() string {
	if f < 0 || int(f) >= NumFeatures {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	return featureNames[f]
}

// State is an immutable vector of boolean features. States are values:
// copying a State copies its features, and two States are equal when all
// of their features are equal, so a State can be used as a map key.
type State [NumFeatures]bool

// New returns a new State built from its three groups of features. The
// heading h sets exactly one of the four heading features.
func New(danger [3]bool, h Heading, goal [4]bool) State {
	var s State
	s[DangerFront] = danger[0]
	s[DangerLeft] = danger[1]
	s[DangerRight] = danger[2]
	s[GoingNorth+Feature(h)] = true
	s[GoalNorth] = goal[0]
	s[GoalSouth] = goal[1]
	s[GoalWest] = goal[2]
	s[GoalEast] = goal[3]
	return s
}

// Has returns whether feature f is set
func (s State) Has(f Feature) bool {
	return s[f]
}

// Index flattens the State into a row index in [0, NumStates). The first
// feature is the most significant bit, which matches a row-major layout
// of a (2, 2, ..., 2) shaped table.
func (s State) Index() int {
	idx := 0
	for _, set := range s {
		idx <<= 1
		if set {
			idx |= 1
		}
	}
	return idx
}

// FromIndex is the inverse of Index
func FromIndex(idx int) State {
	if idx < 0 || idx >= NumStates {
		panic(fmt.Sprintf("fromIndex: index %d out of range [0, %d)", idx,
			NumStates))
	}

	var s State
	for i := NumFeatures - 1; i >= 0; i-- {
		s[i] = idx&1 == 1
		idx >>= 1
	}
	return s
}

// Validate returns an error if the State does not have exactly one
// heading feature set
func (s State) Validate() error {
	headings := 0
	for f := GoingNorth; f <= GoingEast; f++ {
		if s[f] {
			headings++
		}
	}
	if headings != 1 {
		return fmt.Errorf("validate: state %v has %d heading features set, "+
			"want 1", s, headings)
	}
	return nil
}

// Heading returns the heading encoded in the State. Heading panics if the
// State does not encode exactly one heading.
func (s State) Heading() Heading {
	if err := s.Validate(); err != nil {
		panic(err)
	}
	for f := GoingNorth; f <= GoingEast; f++ {
		if s[f] {
			return Heading(f - GoingNorth)
		}
	}
	panic("heading: unreachable")
}

// String returns the names of the features that are set
func (s State) String() string {
	set := make([]string, 0, NumFeatures)
	for i, on := range s {
		if on {
			set = append(set, Feature(i).String())
		}
	}
	return "{" + strings.Join(set, " ") + "}"
}
