package snake

import (
	"fmt"
	"io"
	"strings"

	"github.com/OverKoder/Jormungandr/state"
)

// Renderer is notified after every step of the environment. Renderers
// only observe the board; nothing they do is read back by the Snake.
type Renderer interface {
	Render(body []Cell, goal Cell, s state.State)
}

// TextRenderer draws each frame as ASCII text. The head is drawn as 'H',
// the rest of the body as 'o', the goal as '*', and empty cells as '.'.
// Cells of the body that have left the board are not drawn.
type TextRenderer struct {
	out           io.Writer
	width, height int
}

// NewTextRenderer returns a TextRenderer for a board of the given size
func NewTextRenderer(out io.Writer, width, height int) *TextRenderer {
	return &TextRenderer{out, width, height}
}

// Render writes a single frame
func (t *TextRenderer) Render(body []Cell, goal Cell, s state.State) {
	grid := make([][]byte, t.height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", t.width))
	}

	t.set(grid, goal, '*')
	for i := len(body) - 1; i >= 0; i-- {
		if i == 0 {
			t.set(grid, body[i], 'H')
		} else {
			t.set(grid, body[i], 'o')
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%v\n\n", s)

	if _, err := io.WriteString(t.out, b.String()); err != nil {
		panic(fmt.Sprintf("render: could not write frame: %v", err))
	}
}

func (t *TextRenderer) set(grid [][]byte, c Cell, b byte) {
	if c.X < 0 || c.X >= t.width || c.Y < 0 || c.Y >= t.height {
		return
	}
	grid[c.Y][c.X] = b
}
