package state

import "fmt"

// Action is a move relative to the snake's current heading
type Action int

const (
	Straight Action = iota
	Left
	Right
)

// NumActions is the number of available actions
const NumActions = 3

// Actions lists every Action in index order
var Actions = [NumActions]Action{Straight, Left, Right}

func (a Action) String() string {
	switch a {
	case Straight:
		return "Straight"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Valid returns whether the Action is one of the three relative moves
func (a Action) Valid() bool {
	return a >= Straight && a <= Right
}

// Heading is the absolute direction the snake is travelling in. Headings
// are ordered the same as the heading features of a State.
type Heading int

const (
	North Heading = iota
	South
	West
	East
)

// NumHeadings is the number of absolute headings
const NumHeadings = 4

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case South:
		return "S"
	case West:
		return "W"
	case East:
		return "E"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}
