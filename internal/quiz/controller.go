package quiz

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultAnswerDelay is how long answer feedback stays up before advancing.
const DefaultAnswerDelay = 1500 * time.Millisecond

const (
	FeedbackCorrect = "Correct!"
	// FeedbackWrong does not name the right option.
	FeedbackWrong = "Wrong!"
)

// Controller drives the quiz state machine. It owns the session and the
// current shuffled options; all transitions happen on the caller's goroutine.
type Controller struct {
	bank     *Bank
	shuffler *Shuffler
	bus      *EventBus
	log      zerolog.Logger

	session Session
	options []ShuffledOption

	answerDelay float64 // seconds
	feedbackTTL float64 // seconds left before advancing; 0 when idle
}

type ControllerOption func(*Controller)

func WithAnswerDelay(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d > 0 {
			c.answerDelay = d.Seconds()
		}
	}
}

func WithLogger(l zerolog.Logger) ControllerOption {
	return func(c *Controller) { c.log = l }
}

func NewController(bank *Bank, shuffler *Shuffler, bus *EventBus, opts ...ControllerOption) *Controller {
	c := &Controller{
		bank:        bank,
		shuffler:    shuffler,
		bus:         bus,
		log:         zerolog.Nop(),
		session:     Session{State: StateLoading},
		answerDelay: DefaultAnswerDelay.Seconds(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) Session() Session { return c.session }
func (c *Controller) State() State     { return c.session.State }
func (c *Controller) Count() int       { return c.bank.Count() }

// Options returns the current question's options in display order.
func (c *Controller) Options() []ShuffledOption { return c.options }

// Question returns the question being asked, if any.
func (c *Controller) Question() (Question, bool) {
	if c.session.State != StateQuizzing || c.session.Index >= c.bank.Count() {
		return Question{}, false
	}
	return c.bank.MustGet(c.session.Index), true
}

func (c *Controller) Percentage() float64 {
	return Percentage(c.session.Score, c.bank.Count())
}

func (c *Controller) RoundedPercentage() int {
	return RoundedPercentage(c.session.Score, c.bank.Count())
}

// Loaded moves from LOADING to START once the bank is ready.
func (c *Controller) Loaded() bool {
	if c.session.State != StateLoading {
		return false
	}
	c.session.State = StateStart
	c.log.Info().Int("questions", c.bank.Count()).Msg("question bank ready")
	return true
}

// Start begins a run from the title screen.
func (c *Controller) Start() bool {
	if c.session.State != StateStart {
		return false
	}
	c.session.reset()
	c.session.State = StateQuizzing
	c.log.Debug().Msg("quiz started")
	c.bus.Emit(Event{Type: EventQuizStarted})
	c.enterQuestion()
	return true
}

// Select answers the current question with the option in display slot i.
// It is ignored while feedback for a previous answer is showing.
func (c *Controller) Select(i int) bool {
	if c.session.State != StateQuizzing || c.session.Answering() {
		return false
	}
	if i < 0 || i >= len(c.options) {
		return false
	}
	correct := c.options[i].IsCorrect
	if correct {
		c.session.Score++
		c.session.Feedback = FeedbackCorrect
	} else {
		c.session.Feedback = FeedbackWrong
	}
	c.session.FeedbackCorrect = correct
	c.feedbackTTL = c.answerDelay
	c.log.Debug().
		Int("question", c.session.Index).
		Int("option", i).
		Bool("correct", correct).
		Int("score", c.session.Score).
		Msg("answer")
	c.bus.Emit(Event{Type: EventAnswered, Option: i, Correct: correct})
	return true
}

// Update advances the answer-delay countdown by dt seconds.
func (c *Controller) Update(dt float64) {
	if c.session.State != StateQuizzing || !c.session.Answering() || dt <= 0 {
		return
	}
	c.feedbackTTL -= dt
	if c.feedbackTTL > 0 {
		return
	}
	c.feedbackTTL = 0
	c.session.Feedback = ""
	c.session.FeedbackCorrect = false
	c.session.Index++
	c.bus.Emit(Event{Type: EventQuestionAdvanced})
	c.enterQuestion()
}

// Retry returns from the results screen to the title screen.
func (c *Controller) Retry() bool {
	if c.session.State != StateResults {
		return false
	}
	c.session.reset()
	c.feedbackTTL = 0
	c.options = nil
	c.session.State = StateStart
	c.log.Debug().Msg("retry")
	c.bus.Emit(Event{Type: EventRetry})
	return true
}

// enterQuestion shuffles the question at the session index, or finishes the
// run when the index has reached the end of the bank.
func (c *Controller) enterQuestion() {
	if c.session.Index >= c.bank.Count() {
		c.enterResults()
		return
	}
	c.options = c.shuffler.Shuffle(c.bank.MustGet(c.session.Index))
}

func (c *Controller) enterResults() {
	c.options = nil
	c.session.State = StateResults
	pct := c.Percentage()
	tier := TierFor(pct)
	c.log.Info().
		Int("score", c.session.Score).
		Int("questions", c.bank.Count()).
		Int("percent", c.RoundedPercentage()).
		Msg("quiz finished")
	c.bus.Emit(Event{Type: EventResultsEntered, Percent: pct, Tier: tier})
}
