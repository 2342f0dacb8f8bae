package interpreter

import (
	"fmt"
	"sort"
	"strings"
)

// Environment holds variables

type Environment struct {
	vars map[string]int
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]int)}
}

func (e *Environment) Get(name string) (int, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, val int) {
	e.vars[name] = val
}

func (e *Environment) String() string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, e.vars[name])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
