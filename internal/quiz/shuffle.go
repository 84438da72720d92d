package quiz

import "quizfx/internal/rng"

// ShuffledOption is an option in display order, tagged with correctness.
type ShuffledOption struct {
	Text      string
	IsCorrect bool
}

// Shuffler produces uniform permutations of a question's options.
type Shuffler struct {
	r *rng.Rand
}

func NewShuffler(seed uint64) *Shuffler {
	return &Shuffler{r: rng.New(seed)}
}

// Shuffle tags each option and applies a Fisher-Yates permutation.
func (s *Shuffler) Shuffle(q Question) []ShuffledOption {
	out := make([]ShuffledOption, OptionCount)
	for i, text := range q.Options {
		out[i] = ShuffledOption{Text: text, IsCorrect: i == q.Correct}
	}
	for i := len(out) - 1; i > 0; i-- {
		j := s.r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
