package ui

import (
	"quizfx/internal/fx"
	"quizfx/internal/quiz"
)

// TierStyle is the results headline for a score tier.
type TierStyle struct {
	Title string
	Col   fx.RGB
}

var tierStyles = map[quiz.Tier]TierStyle{
	quiz.TierTop: {Title: "Brilliant! You nailed it!", Col: fx.RGB{R: 0, G: 255, B: 150}},
	quiz.TierMid: {Title: "Nice work! Keep going!", Col: fx.RGB{R: 255, G: 215, B: 0}},
	quiz.TierLow: {Title: "Don't give up! Practice a bit more!", Col: fx.RGB{R: 150, G: 200, B: 255}},
}

func StyleFor(t quiz.Tier) TierStyle {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return tierStyles[quiz.TierLow]
}
