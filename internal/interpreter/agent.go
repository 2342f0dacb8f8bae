package interpreter

import (
	"errors"
	"fmt"

	"gridbot/internal/grid"
)

var ErrNotAdvanced = errors.New("needs an advanced grid")

// queries are read-only names answered by the agent.
var queries = map[string]bool{
	"posx": true, "posy": true, "facing": true,
	"found": true, "steps": true, "distance": true,
}

// query reads one of the built-in agent values.
func query(agent grid.Agent, name string) (int, error) {
	switch name {
	case "posx":
		return agent.Position().X, nil
	case "posy":
		return agent.Position().Y, nil
	case "facing":
		return int(agent.Direction()), nil
	case "found":
		if agent.FindEnemy() {
			return 1, nil
		}
		return 0, nil
	case "steps":
		s, ok := agent.(grid.Stepper)
		if !ok {
			return 0, fmt.Errorf("steps: %w", ErrNotAdvanced)
		}
		return s.Steps(), nil
	case "distance":
		r, ok := agent.(grid.Ranger)
		if !ok {
			return 0, fmt.Errorf("distance: %w", ErrNotAdvanced)
		}
		return r.DistanceToEnemy(), nil
	}
	return 0, fmt.Errorf("unknown query %s", name)
}
