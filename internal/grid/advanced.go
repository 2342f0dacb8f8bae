package grid

// AdvancedGrid is a Grid that counts forward moves and measures the
// distance to the enemy.
type AdvancedGrid struct {
	*Grid
	steps int
}

func NewAdvancedGrid(width, height int, enemy Position) *AdvancedGrid {
	return &AdvancedGrid{Grid: NewGrid(width, height, enemy)}
}

// MoveForward moves like Grid.MoveForward and then counts the step,
// including moves clamped in place.
func (a *AdvancedGrid) MoveForward() Position {
	p := a.Grid.MoveForward()
	a.steps++
	return p
}

func (a *AdvancedGrid) Steps() int {
	return a.steps
}

// DistanceToEnemy is the Manhattan distance from the current position.
func (a *AdvancedGrid) DistanceToEnemy() int {
	return a.Position().Manhattan(a.Enemy())
}

var (
	_ Agent   = (*Grid)(nil)
	_ Agent   = (*AdvancedGrid)(nil)
	_ Stepper = (*AdvancedGrid)(nil)
	_ Ranger  = (*AdvancedGrid)(nil)
)
