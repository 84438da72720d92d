package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewEventBus()
	var got []string
	bus.Subscribe(EventAnswered, func(e Event) { got = append(got, "first") })
	bus.Subscribe(EventAnswered, func(e Event) { got = append(got, "second") })
	bus.Subscribe(EventRetry, func(e Event) { got = append(got, "retry") })

	bus.Emit(Event{Type: EventAnswered, Option: 2, Correct: true})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestEventBusNilIsSilent(t *testing.T) {
	var bus *EventBus
	assert.NotPanics(t, func() {
		bus.Subscribe(EventRetry, func(Event) {})
		bus.Emit(Event{Type: EventRetry})
	})
}
