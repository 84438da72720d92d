package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quizfx/internal/quiz"
)

func TestStyleFor(t *testing.T) {
	assert.Equal(t, "Brilliant! You nailed it!", StyleFor(quiz.TierFor(80)).Title)
	assert.Equal(t, "Nice work! Keep going!", StyleFor(quiz.TierFor(67)).Title)
	assert.Equal(t, "Don't give up! Practice a bit more!", StyleFor(quiz.TierFor(0)).Title)
	assert.Equal(t, StyleFor(quiz.TierLow), StyleFor(quiz.Tier(42)))
	assert.NotEqual(t, StyleFor(quiz.TierMid).Col, StyleFor(quiz.TierLow).Col)
}
