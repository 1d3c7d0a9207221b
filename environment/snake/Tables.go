package snake

import "github.com/OverKoder/Jormungandr/state"

// Cell is a single (x, y) position on the board. X grows to the east and
// Y grows to the south, so the north-west corner of the board is (0, 0).
type Cell struct {
	X, Y int
}

// Add returns the Cell offset by d
func (c Cell) Add(d Cell) Cell {
	return Cell{c.X + d.X, c.Y + d.Y}
}

// moves[h][a] is the offset of the head when taking action a while
// heading h
var moves = [state.NumHeadings][state.NumActions]Cell{
	state.North: {{0, -1}, {-1, 0}, {1, 0}},
	state.South: {{0, 1}, {1, 0}, {-1, 0}},
	state.West:  {{-1, 0}, {0, 1}, {0, -1}},
	state.East:  {{1, 0}, {0, -1}, {0, 1}},
}

// turns[h][a] is the heading after taking action a while heading h
var turns = [state.NumHeadings][state.NumActions]state.Heading{
	state.North: {state.North, state.West, state.East},
	state.South: {state.South, state.East, state.West},
	state.West:  {state.West, state.South, state.North},
	state.East:  {state.East, state.North, state.South},
}

// Move returns the offset of the head when taking action a while
// heading h
func Move(h state.Heading, a state.Action) Cell {
	return moves[h][a]
}

// Turn returns the heading after taking action a while heading h
func Turn(h state.Heading, a state.Action) state.Heading {
	return turns[h][a]
}
