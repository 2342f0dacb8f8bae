package interpreter

import (
	"fmt"
	"io"
	"sort"

	"gridbot/internal/grid"
)

// Report writes a summary of the agent state to w.
func Report(w io.Writer, agent grid.Agent) error {
	p := agent.Position()
	lines := []string{
		fmt.Sprintf("Grid: %dx%d", agent.Width(), agent.Height()),
		fmt.Sprintf("Position: %s facing %s", p, agent.Direction()),
		fmt.Sprintf("Enemy: %s found=%v", agent.Enemy(), agent.FindEnemy()),
	}
	if s, ok := agent.(grid.Stepper); ok {
		lines = append(lines, fmt.Sprintf("Steps: %d", s.Steps()))
	}
	if r, ok := agent.(grid.Ranger); ok {
		lines = append(lines, fmt.Sprintf("Distance: %d", r.DistanceToEnemy()))
	}
	history := agent.History()
	if len(history) > 0 {
		steps := make([]int, 0, len(history))
		for step := range history {
			steps = append(steps, step)
		}
		sort.Ints(steps)
		lines = append(lines, "History:")
		for _, step := range steps {
			lines = append(lines, fmt.Sprintf("  %d: %s", step, history[step]))
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
