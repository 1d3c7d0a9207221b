package snake

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	// DeathReward is the reward for leaving the board or running into
	// the snake's own body
	DeathReward = -10.0

	// GoalReward is the reward for reaching the goal
	GoalReward = 10.0

	// StepLimitReward is the reward for the step that hits the episode
	// step ceiling
	StepLimitReward = -1.0
)

// ConstantPenalty is the default Task: every ordinary step costs the same
type ConstantPenalty struct {
	penalty float64
}

// NewConstantPenalty returns a ConstantPenalty charging penalty per step.
// The penalty should be negative to encourage short paths to the goal.
func NewConstantPenalty(penalty float64) *ConstantPenalty {
	return &ConstantPenalty{penalty}
}

// GetReward returns the constant step penalty regardless of distance
func (c *ConstantPenalty) GetReward(float64) float64 {
	return c.penalty
}

// Min returns the minimum reward attainable in the Task
func (c *ConstantPenalty) Min() float64 {
	return floats.Min([]float64{DeathReward, StepLimitReward, c.penalty})
}

// Max returns the maximum reward attainable in the Task
func (c *ConstantPenalty) Max() float64 {
	return floats.Max([]float64{GoalReward, StepLimitReward, c.penalty})
}

func (c *ConstantPenalty) String() string {
	return fmt.Sprintf("ConstantPenalty | Penalty: %.2f", c.penalty)
}

// DistancePenalty shapes the reward of ordinary steps by the Manhattan
// distance from the head to the goal: r = -scale * distance
type DistancePenalty struct {
	scale       float64
	maxDistance float64
}

// NewDistancePenalty returns a DistancePenalty for a board of the given
// dimensions
func NewDistancePenalty(scale float64, width, height int) (*DistancePenalty,
	error) {
	if scale <= 0 {
		return nil, fmt.Errorf("newDistancePenalty: scale must be positive, "+
			"got %v", scale)
	}
	maxDistance := float64(width + height - 2)
	return &DistancePenalty{scale, maxDistance}, nil
}

// GetReward returns the shaped reward for a step ending at the given
// distance from the goal
func (d *DistancePenalty) GetReward(distance float64) float64 {
	return -d.scale * distance
}

// Min returns the minimum reward attainable in the Task
func (d *DistancePenalty) Min() float64 {
	return floats.Min([]float64{DeathReward, StepLimitReward,
		d.GetReward(d.maxDistance)})
}

// Max returns the maximum reward attainable in the Task
func (d *DistancePenalty) Max() float64 {
	return GoalReward
}

func (d *DistancePenalty) String() string {
	return fmt.Sprintf("DistancePenalty | Scale: %.4f", d.scale)
}

// manhattan returns the Manhattan distance between two cells
func manhattan(a, b Cell) float64 {
	return floats.Distance(
		[]float64{float64(a.X), float64(a.Y)},
		[]float64{float64(b.X), float64(b.Y)},
		1,
	)
}
