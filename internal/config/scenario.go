package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridbot/internal/grid"
)

// Scenario describes the grid an agent is dropped into.
//
// Format:
//
//	width: 7
//	height: 7
//	enemy: [5, 5]
//	start: [0, 0]   # optional
//	facing: up      # optional
//	advanced: true  # optional
type Scenario struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Enemy    []int  `yaml:"enemy"`
	Start    []int  `yaml:"start,omitempty"`
	Facing   string `yaml:"facing,omitempty"`
	Advanced bool   `yaml:"advanced"`
}

func DefaultScenario() *Scenario {
	return &Scenario{Width: 7, Height: 7, Enemy: []int{5, 5}, Advanced: true}
}

func LoadScenario(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseScenario(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the shape of the scenario. The enemy is allowed to sit
// outside the grid.
func (s *Scenario) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("grid size must be non-negative, got %dx%d", s.Width, s.Height)
	}
	if len(s.Enemy) != 2 {
		return fmt.Errorf("enemy needs 2 coordinates, got %d", len(s.Enemy))
	}
	if s.Start != nil && len(s.Start) != 2 {
		return fmt.Errorf("start needs 2 coordinates, got %d", len(s.Start))
	}
	if s.Facing != "" {
		if _, err := grid.ParseFacing(s.Facing); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs the agent described by the scenario.
func (s *Scenario) Build() (grid.Agent, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	enemy := grid.Position{X: s.Enemy[0], Y: s.Enemy[1]}
	var agent grid.Agent
	if s.Advanced {
		agent = grid.NewAdvancedGrid(s.Width, s.Height, enemy)
	} else {
		agent = grid.NewGrid(s.Width, s.Height, enemy)
	}
	if s.Start != nil {
		if err := agent.SetPosition([2]int{s.Start[0], s.Start[1]}); err != nil {
			return nil, err
		}
	}
	if s.Facing != "" {
		f, _ := grid.ParseFacing(s.Facing)
		agent.SetDirection(f)
	}
	return agent, nil
}
