package interpreter

// Kind tells which transition an Event reports.
type Kind int

const (
	KindMove Kind = iota
	KindTurn
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "Move"
	case KindTurn:
		return "Turn"
	default:
		return "Unknown"
	}
}

// Event is emitted after every command that was applied successfully.
type Event struct {
	Kind Kind
	Pose Pose
	Room Room
}

// Observer receives trace events. It cannot influence the run.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}
