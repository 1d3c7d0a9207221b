// Package snake implements the grid snake environment: a snake moves on a
// bounded board towards a goal cell, growing each time it reaches the goal
// and dying when it leaves the board or runs into itself.
package snake

import (
	"fmt"
	"strings"

	"github.com/OverKoder/Jormungandr/environment"
	"github.com/OverKoder/Jormungandr/state"
	"github.com/OverKoder/Jormungandr/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

const (
	// MinSize is the smallest allowed board width and height
	MinSize = 5

	// DefaultMaxSteps is the default episode step ceiling
	DefaultMaxSteps = 100000

	// startLength is the length of the body after a fresh reset
	startLength = 3
)

// Config determines the board dimensions and the episode step ceiling
type Config struct {
	Width    int `mapstructure:"width" yaml:"width"`
	Height   int `mapstructure:"height" yaml:"height"`
	MaxSteps int `mapstructure:"max_steps" yaml:"max_steps"`
}

// Validate checks that the Config describes a playable board
func (c Config) Validate() error {
	if c.Width < MinSize || c.Height < MinSize {
		return fmt.Errorf("validate: board must be at least %dx%d, got %dx%d",
			MinSize, MinSize, c.Width, c.Height)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("validate: max steps must be non-negative, got %d",
			c.MaxSteps)
	}
	return nil
}

// Snake implements the grid snake environment.
//
// The body is stored head first. A step pushes the new head before
// checking for death, so moving into the cell the tail is about to leave
// kills the snake. Reaching the goal ends the episode without popping the
// tail; the next Reset then keeps the body and heading and only moves the
// goal.
type Snake struct {
	environment.Task
	environment.Ender
	width, height int

	body    []Cell
	goal    Cell
	heading state.Heading

	// whether the last episode ended by reaching the goal
	goalBefore bool

	rng         *rand.Rand
	renderer    Renderer
	currentStep timestep.TimeStep

	goalsReached int
	deaths       int
}

// New creates a new Snake environment with reward scheme t and returns it
// along with the first step of the first episode
func New(c Config, t environment.Task, seed uint64) (*Snake,
	timestep.TimeStep, error) {
	if c.MaxSteps == 0 {
		c.MaxSteps = DefaultMaxSteps
	}
	if err := c.Validate(); err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: %v", err)
	}
	if t == nil {
		t = NewConstantPenalty(-1.0)
	}

	s := &Snake{
		Task:   t,
		Ender:  environment.NewStepLimit(c.MaxSteps),
		width:  c.Width,
		height: c.Height,
		rng:    rand.New(rand.NewSource(seed)),
	}

	return s, s.Reset(), nil
}

// SetRenderer sets the Renderer notified after each step. A nil Renderer
// disables rendering.
func (s *Snake) SetRenderer(r Renderer) {
	s.renderer = r
}

// Reset resets the environment between episodes and returns the first
// step of the new episode
func (s *Snake) Reset() timestep.TimeStep {
	if !s.goalBefore || len(s.body) >= s.width*s.height {
		s.recenter()
	}
	s.goalBefore = false
	s.spawnGoal()

	step := timestep.New(timestep.First, 0, s.observe(), 0)
	s.currentStep = step
	return step
}

// recenter places a fresh body in the middle of the board heading north
func (s *Snake) recenter() {
	head := Cell{s.width / 2, s.height / 2}
	s.body = make([]Cell, startLength)
	for i := range s.body {
		s.body[i] = Cell{head.X, head.Y + i}
	}
	s.heading = state.North
}

// spawnGoal places the goal uniformly at random on a free cell
func (s *Snake) spawnGoal() {
	occupied := s.occupied()
	free := make([]Cell, 0, s.width*s.height-len(occupied))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if c := (Cell{x, y}); !occupied[c] {
				free = append(free, c)
			}
		}
	}
	s.goal = free[s.rng.Intn(len(free))]
}

// Step takes one step in the environment, returning the next step and
// whether it ends the episode
func (s *Snake) Step(a state.Action) (timestep.TimeStep, bool) {
	if !a.Valid() {
		panic(fmt.Sprintf("step: invalid action %d", int(a)))
	}
	if s.currentStep.Last() {
		panic("step: episode has ended, call Reset to start a new one")
	}

	head := s.body[0].Add(moves[s.heading][a])
	s.body = append([]Cell{head}, s.body...)
	s.heading = turns[s.heading][a]

	obs := s.observe()
	step := timestep.New(timestep.Mid, 0, obs, s.currentStep.Number+1)

	if s.renderer != nil {
		s.renderer.Render(s.Body(), s.goal, obs)
	}

	switch {
	case s.dead():
		s.deaths++
		step.Reward = DeathReward
		step.StepType = timestep.Last
		step.SetEnd(timestep.Death)

	case head == s.goal:
		s.goalsReached++
		s.goalBefore = true
		step.Reward = GoalReward
		step.StepType = timestep.Last
		step.SetEnd(timestep.GoalReached)

	case s.End(&step):
		step.Reward = StepLimitReward

	default:
		s.body = s.body[:len(s.body)-1]
		step.Reward = s.GetReward(manhattan(head, s.goal))
	}

	s.currentStep = step
	return step, step.Last()
}

// observe computes the State of the board from the current geometry
func (s *Snake) observe() state.State {
	head := s.body[0]
	occupied := s.occupied()

	var danger [3]bool
	for _, a := range state.Actions {
		c := head.Add(moves[s.heading][a])
		danger[a] = !s.inBounds(c) || occupied[c]
	}

	var goal [4]bool
	goal[0] = s.goal.Y < head.Y
	goal[1] = s.goal.Y > head.Y
	goal[2] = s.goal.X < head.X
	goal[3] = s.goal.X > head.X

	return state.New(danger, s.heading, goal)
}

// dead returns whether the head is off the board or any two cells of the
// body overlap
func (s *Snake) dead() bool {
	if !s.inBounds(s.body[0]) {
		return true
	}
	return len(s.occupied()) != len(s.body)
}

func (s *Snake) occupied() map[Cell]bool {
	occupied := make(map[Cell]bool, len(s.body))
	for _, c := range s.body {
		occupied[c] = true
	}
	return occupied
}

func (s *Snake) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

// CurrentTimeStep returns the last TimeStep produced by the environment
func (s *Snake) CurrentTimeStep() timestep.TimeStep {
	return s.currentStep
}

// ActionSpec returns the action specification of the environment: a
// single discrete value in {Straight, Left, Right}
func (s *Snake) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lower := mat.NewVecDense(1, []float64{float64(state.Straight)})
	upper := mat.NewVecDense(1, []float64{float64(state.Right)})

	return environment.NewSpec(shape, environment.Action, lower, upper,
		environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment: state.NumFeatures booleans
func (s *Snake) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(state.NumFeatures, nil)
	lower := mat.NewVecDense(state.NumFeatures, nil)
	upperBounds := make([]float64, state.NumFeatures)
	for i := range upperBounds {
		upperBounds[i] = 1.0
	}
	upper := mat.NewVecDense(state.NumFeatures, upperBounds)

	return environment.NewSpec(shape, environment.Observation, lower, upper,
		environment.Discrete)
}

// Dims returns the width and height of the board
func (s *Snake) Dims() (width, height int) {
	return s.width, s.height
}

// Body returns a copy of the body, head first
func (s *Snake) Body() []Cell {
	body := make([]Cell, len(s.body))
	copy(body, s.body)
	return body
}

// Head returns the position of the head
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Goal returns the position of the goal
func (s *Snake) Goal() Cell {
	return s.goal
}

// Heading returns the direction the snake is travelling in
func (s *Snake) Heading() state.Heading {
	return s.heading
}

// GoalsReached returns the number of times the goal has been reached
// since the environment was created
func (s *Snake) GoalsReached() int {
	return s.goalsReached
}

// Deaths returns the number of times the snake has died since the
// environment was created
func (s *Snake) Deaths() int {
	return s.deaths
}

func (s *Snake) String() string {
	body := make([]string, len(s.body))
	for i, c := range s.body {
		body[i] = fmt.Sprintf("(%d, %d)", c.X, c.Y)
	}
	str := "Snake | Body: [%v]  |  Heading: %v  |  Goal: (%d, %d)  |  " +
		"Bounds: (%d, %d)"
	return fmt.Sprintf(str, strings.Join(body, " "), s.heading, s.goal.X,
		s.goal.Y, s.width, s.height)
}
