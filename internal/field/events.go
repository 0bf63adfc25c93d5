package field

// InputKind identifies a host input message.
type InputKind int

const (
	InputMouseMove InputKind = iota
	InputTouchStart
	InputTouchMove
	InputTouchEnd
	InputResize
)

// Input is a host event fed to Field.Handle. X/Y are canvas pixels for
// pointer kinds; W/H are the new canvas size for InputResize.
type Input struct {
	Kind InputKind
	X, Y float64
	W, H int
}

func MouseMove(x, y float64) Input { return Input{Kind: InputMouseMove, X: x, Y: y} }
func TouchStart() Input { return Input{Kind: InputTouchStart} }
func TouchMove(x, y float64) Input { return Input{Kind: InputTouchMove, X: x, Y: y} }
func TouchEnd() Input { return Input{Kind: InputTouchEnd} }
func Resize(w, h int) Input { return Input{Kind: InputResize, W: w, H: h} }

type EventType int

const (
	EventSeeded EventType = iota
	EventScatterBegin
	EventScatterEnd
)

func (t EventType) String() string {
	switch t {
	case EventSeeded:
		return "seeded"
	case EventScatterBegin:
		return "scatter-begin"
	case EventScatterEnd:
		return "scatter-end"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	X, Y float64
	Data int // Particle count for EventSeeded, scattered count otherwise.
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
