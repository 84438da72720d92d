package ui

import "quizfx/internal/quiz"

// Click routes a pointer press at (px, py) to the control visible in the
// controller's current state. It reports whether a transition happened.
func (l *Layout) Click(c *quiz.Controller, px, py float64) bool {
	switch c.State() {
	case quiz.StateStart:
		if l.Start.Contains(px, py) {
			return c.Start()
		}
	case quiz.StateQuizzing:
		if slot := l.OptionAt(px, py); slot >= 0 {
			return c.Select(slot)
		}
	case quiz.StateResults:
		if l.Retry.Contains(px, py) {
			return c.Retry()
		}
	}
	return false
}

// Activate is the keyboard equivalent of pressing the screen's main button.
func Activate(c *quiz.Controller) bool {
	switch c.State() {
	case quiz.StateStart:
		return c.Start()
	case quiz.StateResults:
		return c.Retry()
	}
	return false
}
