package interpreter

import (
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"gridwalk/internal/geometry"
)

// command is one recognised character of a command string.
type command struct {
	Op      rune
	Literal string
}

var commandLexer = mustCommandLexer()

func mustCommandLexer() *lexmachine.Lexer {
	l := lexmachine.NewLexer()
	l.Add([]byte(`[Ff]`), opAction('F'))
	l.Add([]byte(`[Ll]`), opAction('L'))
	l.Add([]byte(`[Rr]`), opAction('R'))
	if err := l.Compile(); err != nil {
		panic(err)
	}
	return l
}

func opAction(op rune) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return command{Op: op, Literal: string(m.Bytes)}, nil
	}
}

// Program is a command string such as "FFRFF".
type Program struct {
	source string
}

func Parse(commands string) *Program {
	return &Program{source: commands}
}

// Exec applies the commands left to right and stops at the first one
// that fails. Commands are scanned lazily, so everything before an
// unknown character has already changed the robot when it is reported.
func (p *Program) Exec(ctx *Context) error {
	scanner, err := commandLexer.Scanner([]byte(p.source))
	if err != nil {
		return err
	}
	offset := 0
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			r, _ := utf8.DecodeRuneInString(p.source[offset:])
			return &CommandError{Command: r, Offset: offset, Pose: ctx.Robot.Pose()}
		}
		c := tok.(command)
		if err := ctx.apply(c); err != nil {
			return err
		}
		offset += len(c.Literal)
	}
	return nil
}

func (ctx *Context) apply(c command) error {
	if c.Op == 'F' {
		if err := ctx.Robot.Step(ctx.Room); err != nil {
			return err
		}
		ctx.notify(KindMove)
		return nil
	}
	if err := ctx.Robot.Turn(c.Op); err != nil {
		return err
	}
	ctx.notify(KindTurn)
	return nil
}

// Run executes commands for a robot starting at start inside a room of
// the given size. The returned pose is the last valid one, also when an
// error stopped the run.
func Run(size geometry.Point, start Pose, commands string, observer Observer) (Pose, error) {
	ctx := &Context{
		Room:     Room{Size: size},
		Robot:    NewRobot(start),
		Observer: observer,
	}
	err := Parse(commands).Exec(ctx)
	return ctx.Robot.Pose(), err
}
