package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Brick is a single destructible block.
type Brick struct {
	Box   core.Box
	Row   int
	Alive bool
}

// BrickField holds the brick grid and reports hits through Events.
type BrickField struct {
	bricks    []Brick
	remaining int
	arena     Arena
	top       float64
	events    Events
}

// NewBrickField creates an empty field whose first row sits at screen row top.
func NewBrickField(arena Arena, top int, events Events) *BrickField {
	return &BrickField{
		arena:  arena,
		top:    math.Max(float64(top), arena.Top),
		events: events,
	}
}

// CreateBricks lays out a rows×cols grid centered in the arena.
// spacing is the horizontal gap between bricks; rows are stacked without gaps.
// A non-positive width fits the grid to the arena.
func (f *BrickField) CreateBricks(rows, cols int, width, height, spacing float64) {
	if width <= 0 {
		width = math.Floor((f.arena.Width() - spacing*float64(cols-1)) / float64(cols))
		if width < 1 {
			width = 1
		}
	}
	total := float64(cols)*width + float64(cols-1)*spacing
	left := f.arena.Left + math.Floor((f.arena.Width()-total)/2)

	f.bricks = make([]Brick, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.bricks = append(f.bricks, Brick{
				Box: core.Box{
					X: left + float64(c)*(width+spacing),
					Y: f.top + float64(r)*height,
					W: width,
					H: height,
				},
				Row:   r,
				Alive: true,
			})
		}
	}
	f.remaining = len(f.bricks)
}

// Collide destroys the first live brick overlapping box.
// It raises IncreaseScore, and LevelComplete when no bricks remain.
func (f *BrickField) Collide(box core.Box) (core.Box, bool) {
	for i := range f.bricks {
		br := &f.bricks[i]
		if !br.Alive || !br.Box.Intersects(box) {
			continue
		}
		br.Alive = false
		f.remaining--
		f.events.IncreaseScore()
		if f.remaining == 0 {
			f.events.LevelComplete()
		}
		return br.Box, true
	}
	return core.Box{}, false
}

// Remaining returns the number of live bricks.
func (f *BrickField) Remaining() int {
	return f.remaining
}

// Total returns the number of bricks laid out.
func (f *BrickField) Total() int {
	return len(f.bricks)
}

// Bricks returns the grid, for snapshots.
func (f *BrickField) Bricks() []Brick {
	return f.bricks
}

// Render draws live bricks, coloring each row from the palette.
func (f *BrickField) Render(dst *core.Screen) {
	for _, br := range f.bricks {
		if !br.Alive {
			continue
		}
		color := core.RowColors[br.Row%len(core.RowColors)]
		dst.DrawRect(br.Box.Cells(), BrickChar, color)
	}
}
