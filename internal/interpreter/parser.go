package interpreter

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	log "github.com/sirupsen/logrus"

	"gridbot/internal/grid"
)

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Place  *Place  `parser:"  @@ ';'"`
	Face   *Face   `parser:"| @@ ';'"`
	Record *Record `parser:"| @@ ';'"`
	Recall *Recall `parser:"| @@ ';'"`
	Move   *Move   `parser:"| @@ ';'"`
	Loop   *Loop   `parser:"| @@"`
	If     *If     `parser:"| @@"`
	Assign *Assign `parser:"| @@ ';'"`
}

type Assign struct {
	Name string `parser:"@Ident"`
	Expr *Expr  `parser:"'=' @@"`
}

type Place struct {
	X *Expr `parser:"'place' @@ ','"`
	Y *Expr `parser:"@@"`
}

type Face struct {
	Dir string `parser:"'face' @('right'|'up'|'left'|'down')"`
}

type Record struct {
	Step *Expr `parser:"'record' @@"`
}

type Recall struct {
	Step *Expr `parser:"'recall' @@"`
}

type Move struct {
	Cmd string `parser:"@('forward'|'left'|'right')"`
}

type Loop struct {
	Var  string   `parser:"'repeat' @Ident"`
	From *Expr    `parser:"'=' @@ ':'"`
	To   *Expr    `parser:"@@"`
	Body *Program `parser:"'do' @@ 'end'"`
}

type If struct {
	Cond *Expr    `parser:"'if' @@"`
	Body *Program `parser:"'do' @@ 'end'"`
}

type Expr struct {
	Left *Term     `parser:"@@"`
	Rest []*OpTerm `parser:"@@*"`
}

type OpTerm struct {
	Op    string `parser:"@('+'|'-')"`
	Right *Term  `parser:"@@"`
}

type Term struct {
	Neg  bool  `parser:"@'-'?"`
	Atom *Atom `parser:"@@"`
}

type Atom struct {
	Number *int    `parser:"@Int"`
	Query  *string `parser:"| @('posx'|'posy'|'steps'|'distance'|'found'|'facing')"`
	Ident  *string `parser:"| @Ident"`
}

var parser = participle.MustBuild[Program]()

func Parse(data string) (*Program, error) {
	return parser.ParseString("input", data)
}

// Run parses src and executes it against ctx.
func Run(ctx *Context, src string) error {
	prog, err := Parse(src)
	if err != nil {
		return err
	}
	return prog.Exec(ctx)
}

func (p *Program) Exec(ctx *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Loop != nil:
		return s.Loop.Exec(ctx, s.Pos)
	case s.If != nil:
		cond, err := s.If.Cond.Eval(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Pos, err)
		}
		if cond != 0 {
			return s.If.Body.Exec(ctx)
		}
		return nil
	}
	if err := s.exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", s.Pos, err)
	}
	return nil
}

func (s *Statement) exec(ctx *Context) error {
	agent := ctx.Agent
	switch {
	case s.Assign != nil:
		if queries[s.Assign.Name] {
			return fmt.Errorf("cannot assign to %s", s.Assign.Name)
		}
		val, err := s.Assign.Expr.Eval(ctx)
		if err != nil {
			return err
		}
		ctx.Env.Set(s.Assign.Name, val)
	case s.Place != nil:
		x, err := s.Place.X.Eval(ctx)
		if err != nil {
			return err
		}
		y, err := s.Place.Y.Eval(ctx)
		if err != nil {
			return err
		}
		if err := agent.SetPosition([2]int{x, y}); err != nil {
			return err
		}
		ctx.Log.WithFields(log.Fields{"pos": agent.Position()}).Debug("place")
	case s.Face != nil:
		f, err := grid.ParseFacing(s.Face.Dir)
		if err != nil {
			return err
		}
		agent.SetDirection(f)
	case s.Move != nil:
		switch s.Move.Cmd {
		case "forward":
			p := agent.MoveForward()
			ctx.Log.WithFields(log.Fields{"pos": p, "facing": agent.Direction()}).Debug("forward")
		case "left":
			ctx.Log.WithField("facing", agent.TurnLeft()).Debug("turn")
		case "right":
			ctx.Log.WithField("facing", agent.TurnRight()).Debug("turn")
		}
	case s.Record != nil:
		step, err := s.Record.Step.Eval(ctx)
		if err != nil {
			return err
		}
		agent.RecordPosition(step)
		ctx.Log.WithFields(log.Fields{"step": step, "pos": agent.Position()}).Debug("record")
	case s.Recall != nil:
		step, err := s.Recall.Step.Eval(ctx)
		if err != nil {
			return err
		}
		p, ok := agent.PositionAt(step)
		if !ok {
			return fmt.Errorf("no position recorded at step %d", step)
		}
		if err := agent.SetPosition(p); err != nil {
			return err
		}
		ctx.Log.WithFields(log.Fields{"step": step, "pos": p}).Debug("recall")
	}
	return nil
}

func (l *Loop) Exec(ctx *Context, pos lexer.Position) error {
	start, err := l.From.Eval(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", pos, err)
	}
	end, err := l.To.Eval(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", pos, err)
	}
	for i := start; i <= end; i++ {
		ctx.Env.Set(l.Var, i)
		if err := l.Body.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (e *Expr) Eval(ctx *Context) (int, error) {
	val, err := e.Left.Eval(ctx)
	if err != nil {
		return 0, err
	}
	for _, rt := range e.Rest {
		v, err := rt.Right.Eval(ctx)
		if err != nil {
			return 0, err
		}
		switch rt.Op {
		case "+":
			val += v
		case "-":
			val -= v
		}
	}
	return val, nil
}

func (t *Term) Eval(ctx *Context) (int, error) {
	v, err := t.Atom.Eval(ctx)
	if err != nil {
		return 0, err
	}
	if t.Neg {
		return -v, nil
	}
	return v, nil
}

func (a *Atom) Eval(ctx *Context) (int, error) {
	switch {
	case a.Number != nil:
		return *a.Number, nil
	case a.Query != nil:
		return query(ctx.Agent, *a.Query)
	case a.Ident != nil:
		v, ok := ctx.Env.Get(*a.Ident)
		if !ok {
			return 0, fmt.Errorf("undefined variable %s", *a.Ident)
		}
		return v, nil
	}
	return 0, fmt.Errorf("invalid term")
}
