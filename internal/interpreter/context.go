package interpreter

// Context stores the room, the robot and the trace observer for one run.
type Context struct {
	Room     Room
	Robot    *Robot
	Observer Observer
}

func (ctx *Context) notify(kind Kind) {
	if ctx.Observer != nil {
		ctx.Observer.Observe(Event{Kind: kind, Pose: ctx.Robot.Pose(), Room: ctx.Room})
	}
}
