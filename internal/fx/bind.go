package fx

import "quizfx/internal/quiz"

// Anchor returns the screen centre of the option button in display slot i.
type Anchor func(slot int) (x, y float64)

// Subscribe drives the effects from quiz transitions: a ring on every
// answer, the results batch on finishing, and cleanup on advance and retry.
func (e *Effects) Subscribe(bus *quiz.EventBus, anchor Anchor) {
	bus.Subscribe(quiz.EventAnswered, func(ev quiz.Event) {
		x, y := anchor(ev.Option)
		e.SpawnRing(x, y, ev.Correct)
	})
	bus.Subscribe(quiz.EventQuestionAdvanced, func(quiz.Event) {
		e.ClearRing()
	})
	bus.Subscribe(quiz.EventResultsEntered, func(ev quiz.Event) {
		e.ClearRing()
		e.SpawnResults(ev.Tier.Celebrates())
	})
	bus.Subscribe(quiz.EventRetry, func(quiz.Event) {
		e.ClearResults()
	})
}
