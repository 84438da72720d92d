package quiz

type EventType int

const (
	EventQuizStarted EventType = iota
	EventAnswered
	EventQuestionAdvanced
	EventResultsEntered
	EventRetry
)

type Event struct {
	Type    EventType
	Option  int     // selected option slot (EventAnswered)
	Correct bool    // answer outcome (EventAnswered)
	Percent float64 // final percentage (EventResultsEntered)
	Tier    Tier    // final tier (EventResultsEntered)
}

type EventHandler func(Event)

// EventBus fans controller transitions out to effects and audio.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	if eb == nil {
		return
	}
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
