package config

import (
	"os"
	"path/filepath"
	"testing"

	"gridbot/internal/grid"
)

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	data := "width: 4\nheight: 3\nenemy: [9, 1]\nstart: [10, -2]\nfacing: left\nadvanced: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	agent, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := agent.(*grid.AdvancedGrid); !ok {
		t.Errorf("expected advanced grid, got %T", agent)
	}
	if agent.Position() != (grid.Position{X: 4, Y: 0}) {
		t.Errorf("start = %s, want clamped (4,0)", agent.Position())
	}
	if agent.Direction() != grid.Left {
		t.Errorf("facing = %s", agent.Direction())
	}
	if agent.Enemy() != (grid.Position{X: 9, Y: 1}) {
		t.Errorf("enemy = %s", agent.Enemy())
	}
}

func TestParseScenarioDefaults(t *testing.T) {
	s, err := ParseScenario([]byte("width: 2\nheight: 2\nenemy: [1, 1]\n"))
	if err != nil {
		t.Fatal(err)
	}
	agent, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := agent.(*grid.Grid); !ok {
		t.Errorf("expected plain grid, got %T", agent)
	}
	if agent.Direction() != grid.Up || agent.Position() != (grid.Position{}) {
		t.Errorf("defaults not applied")
	}
}

func TestParseScenarioInvalid(t *testing.T) {
	tests := []string{
		"width: -1\nheight: 2\nenemy: [0, 0]\n",
		"width: 1\nheight: 2\nenemy: [0]\n",
		"width: 1\nheight: 2\nenemy: [0, 0]\nstart: [1, 2, 3]\n",
		"width: 1\nheight: 2\nenemy: [0, 0]\nfacing: sideways\n",
		"width: [\n",
	}
	for _, input := range tests {
		if _, err := ParseScenario([]byte(input)); err == nil {
			t.Errorf("accepted %q", input)
		}
	}
}

func TestLoadScenarioMissing(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestDefaultScenario(t *testing.T) {
	agent, err := DefaultScenario().Build()
	if err != nil {
		t.Fatal(err)
	}
	r, ok := agent.(grid.Ranger)
	if !ok {
		t.Fatalf("default agent has no distance")
	}
	if r.DistanceToEnemy() != 10 {
		t.Errorf("distance = %d", r.DistanceToEnemy())
	}
}
