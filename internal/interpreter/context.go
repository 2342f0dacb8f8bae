package interpreter

import (
	log "github.com/sirupsen/logrus"

	"gridbot/internal/grid"
)

// Context stores environment and agent

type Context struct {
	Env   *Environment
	Agent grid.Agent
	Log   log.FieldLogger
}

func NewContext(agent grid.Agent, logger log.FieldLogger) *Context {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Context{Env: NewEnvironment(), Agent: agent, Log: logger}
}
