package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Text:    "Which operator is the odd one out?",
			Options: [OptionCount]string{"Amiya", "Kal'tsit", "Exusiai", "Texas"},
			Correct: i % OptionCount,
		}
	}
	return qs
}

func TestNewBank(t *testing.T) {
	bank, err := NewBank(sampleQuestions(3))
	require.NoError(t, err)
	assert.Equal(t, 3, bank.Count())

	q, err := bank.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Correct)
}

func TestNewBankRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		q    Question
	}{
		{"empty text", Question{Text: " ", Options: [OptionCount]string{"a", "b", "c", "d"}}},
		{"empty option", Question{Text: "q", Options: [OptionCount]string{"a", "", "c", "d"}}},
		{"correct too large", Question{Text: "q", Options: [OptionCount]string{"a", "b", "c", "d"}, Correct: 4}},
		{"correct negative", Question{Text: "q", Options: [OptionCount]string{"a", "b", "c", "d"}, Correct: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBank([]Question{tt.q})
			assert.ErrorIs(t, err, ErrInvalidQuestion)
		})
	}
}

func TestBankGetOutOfRange(t *testing.T) {
	bank, err := NewBank(sampleQuestions(2))
	require.NoError(t, err)

	_, err = bank.Get(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = bank.Get(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Panics(t, func() { bank.MustGet(5) })
}

func TestBankIsolatedFromInput(t *testing.T) {
	records := sampleQuestions(1)
	bank, err := NewBank(records)
	require.NoError(t, err)

	records[0].Text = "mutated"
	q := bank.MustGet(0)
	assert.NotEqual(t, "mutated", q.Text)
}

func TestEmptyBank(t *testing.T) {
	bank, err := NewBank(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, bank.Count())

	var nilBank *Bank
	assert.Equal(t, 0, nilBank.Count())
}
