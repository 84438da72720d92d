package ui

import "quizfx/internal/quiz"

// Layout constants, in logical window pixels.
const (
	WideBreakpoint = 700.0
	WideOptionW    = 300.0
	NarrowOptionK  = 0.4 // option width as a fraction of surface width
	OptionH        = 50.0
	OptionGap      = 20.0
	OptionsOffsetY = 80.0

	StartW       = 200.0
	StartH       = 60.0
	StartOffsetY = 100.0

	RetryW      = 200.0
	RetryH      = 50.0
	RetryInsetY = 100.0
)

const (
	StartLabel = "Start Quiz"
	RetryLabel = "Try Again"
)

// Button is a centred rectangle.
type Button struct {
	X, Y  float64 // centre
	W, H  float64
	Text  string
	Hover bool
}

// Contains reports whether (px, py) lies strictly inside b.
func (b *Button) Contains(px, py float64) bool {
	return px > b.X-b.W/2 && px < b.X+b.W/2 &&
		py > b.Y-b.H/2 && py < b.Y+b.H/2
}

// Layout holds every interactive control for the current surface size.
type Layout struct {
	W, H    float64
	Options [quiz.OptionCount]Button
	Start   Button
	Retry   Button
}

func NewLayout(w, h float64) *Layout {
	l := &Layout{}
	l.Resize(w, h)
	return l
}

// Resize recomputes every control position for a w x h surface.
func (l *Layout) Resize(w, h float64) {
	l.W, l.H = w, h

	btnW := WideOptionW
	if w <= WideBreakpoint {
		btnW = w * NarrowOptionK
	}
	cx := w / 2
	top := h/2 + OptionsOffsetY
	for i := range l.Options {
		b := &l.Options[i]
		side := -1.0
		if i%2 == 1 {
			side = 1.0
		}
		row := float64(i / 2)
		b.X = cx + side*(btnW/2+OptionGap/2)
		b.Y = top + row*(OptionH+OptionGap)
		b.W = btnW
		b.H = OptionH
	}

	l.Start = Button{X: cx, Y: h/2 + StartOffsetY, W: StartW, H: StartH, Text: StartLabel}
	l.Retry = Button{X: cx, Y: h - RetryInsetY, W: RetryW, H: RetryH, Text: RetryLabel}
}

// SetOptions copies the shuffled option texts onto the option buttons.
func (l *Layout) SetOptions(opts []quiz.ShuffledOption) {
	for i := range l.Options {
		l.Options[i].Text = ""
		if i < len(opts) {
			l.Options[i].Text = opts[i].Text
		}
	}
}

// UpdateHover refreshes the hover flag of the controls visible in state.
func (l *Layout) UpdateHover(state quiz.State, px, py float64) {
	for i := range l.Options {
		b := &l.Options[i]
		b.Hover = state == quiz.StateQuizzing && b.Contains(px, py)
	}
	l.Start.Hover = state == quiz.StateStart && l.Start.Contains(px, py)
	l.Retry.Hover = state == quiz.StateResults && l.Retry.Contains(px, py)
}

// OptionAt returns the option slot under (px, py), or -1.
func (l *Layout) OptionAt(px, py float64) int {
	for i := range l.Options {
		if l.Options[i].Contains(px, py) {
			return i
		}
	}
	return -1
}

// OptionCentre is the anchor for selection effects.
func (l *Layout) OptionCentre(slot int) (float64, float64) {
	if slot < 0 || slot >= len(l.Options) {
		return l.W / 2, l.H / 2
	}
	return l.Options[slot].X, l.Options[slot].Y
}
