package grid

// Agent is the set of operations shared by Grid and AdvancedGrid.
type Agent interface {
	Width() int
	Height() int
	Enemy() Position
	Position() Position
	SetPosition(value any) error
	Direction() Facing
	SetDirection(f Facing)
	MoveForward() Position
	TurnLeft() Facing
	TurnRight() Facing
	FindEnemy() bool
	RecordPosition(step int)
	PositionAt(step int) (Position, bool)
	History() map[int]Position
}

// Stepper is implemented by agents that count forward moves.
type Stepper interface {
	Steps() int
}

// Ranger is implemented by agents that can measure the enemy distance.
type Ranger interface {
	DistanceToEnemy() int
}

// Grid holds one agent on the rectangle [0,width] x [0,height].
type Grid struct {
	width, height int
	pos           Position
	dir           Facing
	enemy         Position
	history       map[int]Position
}

// NewGrid places the agent at (0,0) facing up. The enemy position is
// stored as given, even outside the rectangle.
func NewGrid(width, height int, enemy Position) *Grid {
	return &Grid{
		width:   width,
		height:  height,
		dir:     Up,
		enemy:   enemy,
		history: make(map[int]Position),
	}
}

func (g *Grid) Width() int      { return g.width }
func (g *Grid) Height() int     { return g.height }
func (g *Grid) Enemy() Position { return g.enemy }

// Position returns the current position.
func (g *Grid) Position() Position {
	return g.pos
}

// SetPosition accepts a Position or a two-element array of numbers,
// truncates the coordinates to integers and clamps each one into its
// axis. Anything else yields a *TypeError and leaves the grid untouched.
func (g *Grid) SetPosition(value any) error {
	p, err := coerce(value)
	if err != nil {
		return err
	}
	g.pos = g.clamp(p)
	return nil
}

func (g *Grid) clamp(p Position) Position {
	return Position{
		X: max(0, min(p.X, g.width)),
		Y: max(0, min(p.Y, g.height)),
	}
}

func (g *Grid) Direction() Facing {
	return g.dir
}

// SetDirection stores f reduced onto the four headings.
func (g *Grid) SetDirection(f Facing) {
	g.dir = f.Normalize()
}

// MoveForward steps one cell along the current facing. A step off the
// rectangle stops at the edge.
func (g *Grid) MoveForward() Position {
	dx, dy := g.dir.Delta()
	// a Position never fails coercion
	_ = g.SetPosition(Position{X: g.pos.X + dx, Y: g.pos.Y + dy})
	return g.pos
}

// TurnLeft rotates counter-clockwise and returns the new facing.
func (g *Grid) TurnLeft() Facing {
	g.dir = g.dir.Left()
	return g.dir
}

// TurnRight rotates clockwise and returns the new facing.
func (g *Grid) TurnRight() Facing {
	g.dir = g.dir.Right()
	return g.dir
}

// FindEnemy reports whether the agent stands on the enemy.
func (g *Grid) FindEnemy() bool {
	return g.pos == g.enemy
}

// RecordPosition snapshots the current position under step, replacing
// any earlier entry.
func (g *Grid) RecordPosition(step int) {
	g.history[step] = g.pos
}

// PositionAt returns the position recorded at step. ok is false when
// nothing was recorded there.
func (g *Grid) PositionAt(step int) (Position, bool) {
	p, ok := g.history[step]
	return p, ok
}

// History returns a copy of the recorded positions.
func (g *Grid) History() map[int]Position {
	out := make(map[int]Position, len(g.history))
	for k, v := range g.history {
		out[k] = v
	}
	return out
}
