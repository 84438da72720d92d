package quiz

type State int

const (
	StateLoading  State = iota
	StateStart          // title screen
	StateQuizzing       // answering questions
	StateResults        // score screen
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateStart:
		return "start"
	case StateQuizzing:
		return "quizzing"
	case StateResults:
		return "results"
	}
	return "unknown"
}

// Session is the mutable progress of one run through the bank.
type Session struct {
	State           State
	Index           int
	Score           int
	Feedback        string
	FeedbackCorrect bool
}

// Answering reports whether an answer is currently being shown.
func (s Session) Answering() bool {
	return s.Feedback != ""
}

func (s *Session) reset() {
	s.Index = 0
	s.Score = 0
	s.Feedback = ""
	s.FeedbackCorrect = false
}
