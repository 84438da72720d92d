package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

var (
	ErrOutOfRange      = errors.New("question index out of range")
	ErrInvalidQuestion = errors.New("invalid question")
)

// Question is one multiple-choice record. Correct indexes Options.
type Question struct {
	Text    string
	Options [OptionCount]string
	Correct int
}

// Validate reports whether q can be shown.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidQuestion)
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("%w: empty option %d", ErrInvalidQuestion, i)
		}
	}
	if q.Correct < 0 || q.Correct >= OptionCount {
		return fmt.Errorf("%w: correct index %d not in [0,%d]", ErrInvalidQuestion, q.Correct, OptionCount-1)
	}
	return nil
}

// Bank holds the loaded questions. It is never mutated after NewBank.
type Bank struct {
	questions []Question
}

// NewBank validates records and copies them into a bank.
func NewBank(records []Question) (*Bank, error) {
	qs := make([]Question, len(records))
	for i, q := range records {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		qs[i] = q
	}
	return &Bank{questions: qs}, nil
}

func (b *Bank) Count() int {
	if b == nil {
		return 0
	}
	return len(b.questions)
}

// Get returns the question at i or ErrOutOfRange.
func (b *Bank) Get(i int) (Question, error) {
	if i < 0 || i >= b.Count() {
		return Question{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, b.Count())
	}
	return b.questions[i], nil
}

// MustGet is Get for callers that already hold the index invariant.
func (b *Bank) MustGet(i int) Question {
	q, err := b.Get(i)
	if err != nil {
		panic(err)
	}
	return q
}
