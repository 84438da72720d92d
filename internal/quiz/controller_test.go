package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60.0

func newTestController(t *testing.T, n int) (*Controller, *[]Event) {
	t.Helper()
	bank, err := NewBank(sampleQuestions(n))
	require.NoError(t, err)

	bus := NewEventBus()
	var events []Event
	for _, et := range []EventType{EventQuizStarted, EventAnswered, EventQuestionAdvanced, EventResultsEntered, EventRetry} {
		bus.Subscribe(et, func(e Event) { events = append(events, e) })
	}
	c := NewController(bank, NewShuffler(7), bus)
	require.True(t, c.Loaded())
	return c, &events
}

func correctSlot(c *Controller) int {
	for i, o := range c.Options() {
		if o.IsCorrect {
			return i
		}
	}
	return -1
}

func wrongSlot(c *Controller) int {
	for i, o := range c.Options() {
		if !o.IsCorrect {
			return i
		}
	}
	return -1
}

// waitAnswerDelay ticks until the feedback timer fires.
func waitAnswerDelay(c *Controller) {
	for range int(DefaultAnswerDelay.Seconds()/tick) + 2 {
		c.Update(tick)
	}
}

func TestLoadingToStart(t *testing.T) {
	bank, err := NewBank(sampleQuestions(1))
	require.NoError(t, err)
	c := NewController(bank, NewShuffler(1), nil)

	assert.Equal(t, StateLoading, c.State())
	assert.False(t, c.Start(), "cannot start before data is loaded")
	assert.True(t, c.Loaded())
	assert.Equal(t, StateStart, c.State())
	assert.False(t, c.Loaded())
}

func TestStartEntersFirstQuestion(t *testing.T) {
	c, _ := newTestController(t, 3)

	require.True(t, c.Start())
	assert.Equal(t, StateQuizzing, c.State())
	assert.Equal(t, 0, c.Session().Index)
	assert.Len(t, c.Options(), OptionCount)

	q, ok := c.Question()
	require.True(t, ok)
	assert.Equal(t, sampleQuestions(1)[0].Text, q.Text)
}

func TestAllCorrect(t *testing.T) {
	c, _ := newTestController(t, 5)
	require.True(t, c.Start())

	for range 5 {
		require.True(t, c.Select(correctSlot(c)))
		waitAnswerDelay(c)
	}
	assert.Equal(t, StateResults, c.State())
	assert.Equal(t, 5, c.Session().Score)
	assert.Equal(t, 100.0, c.Percentage())
}

func TestMixedAnswers(t *testing.T) {
	c, events := newTestController(t, 3)
	require.True(t, c.Start())

	require.True(t, c.Select(correctSlot(c)))
	waitAnswerDelay(c)
	require.True(t, c.Select(wrongSlot(c)))
	waitAnswerDelay(c)
	require.True(t, c.Select(correctSlot(c)))
	waitAnswerDelay(c)

	assert.Equal(t, StateResults, c.State())
	assert.Equal(t, 2, c.Session().Score)
	assert.Equal(t, 67, c.RoundedPercentage())

	results := 0
	for _, e := range *events {
		if e.Type == EventResultsEntered {
			results++
			assert.Equal(t, TierMid, e.Tier)
		}
	}
	assert.Equal(t, 1, results, "results must be entered exactly once")
}

func TestSelectLockedDuringFeedback(t *testing.T) {
	c, _ := newTestController(t, 2)
	require.True(t, c.Start())

	require.True(t, c.Select(correctSlot(c)))
	assert.Equal(t, FeedbackCorrect, c.Session().Feedback)
	assert.False(t, c.Select(correctSlot(c)), "second click while feedback is shown")
	assert.Equal(t, 1, c.Session().Score)
	assert.Equal(t, 0, c.Session().Index)

	c.Update(DefaultAnswerDelay.Seconds() / 2)
	assert.Equal(t, 0, c.Session().Index, "advance waits for the full delay")

	c.Update(DefaultAnswerDelay.Seconds())
	assert.Equal(t, 1, c.Session().Index)
	assert.Empty(t, c.Session().Feedback)
}

func TestWrongFeedbackHidesAnswer(t *testing.T) {
	c, _ := newTestController(t, 1)
	require.True(t, c.Start())

	right := c.Options()[correctSlot(c)].Text
	require.True(t, c.Select(wrongSlot(c)))
	assert.Equal(t, FeedbackWrong, c.Session().Feedback)
	assert.NotContains(t, c.Session().Feedback, right)
	assert.False(t, c.Session().FeedbackCorrect)
}

func TestSelectOutOfRange(t *testing.T) {
	c, _ := newTestController(t, 1)
	assert.False(t, c.Select(0), "not quizzing yet")
	require.True(t, c.Start())
	assert.False(t, c.Select(-1))
	assert.False(t, c.Select(OptionCount))
}

func TestEmptyBankGoesStraightToResults(t *testing.T) {
	c, events := newTestController(t, 0)
	require.True(t, c.Start())

	assert.Equal(t, StateResults, c.State())
	assert.Equal(t, 0.0, c.Percentage())
	assert.Equal(t, 0, c.RoundedPercentage())
	require.NotEmpty(t, *events)
	last := (*events)[len(*events)-1]
	assert.Equal(t, EventResultsEntered, last.Type)
	assert.Equal(t, TierLow, last.Tier)
}

func TestRetryResets(t *testing.T) {
	c, events := newTestController(t, 2)
	require.True(t, c.Start())
	for range 2 {
		require.True(t, c.Select(correctSlot(c)))
		waitAnswerDelay(c)
	}
	require.Equal(t, StateResults, c.State())

	assert.True(t, c.Retry())
	assert.Equal(t, StateStart, c.State())
	assert.Equal(t, 0, c.Session().Score)
	assert.Equal(t, 0, c.Session().Index)
	assert.Nil(t, c.Options())
	assert.Equal(t, EventRetry, (*events)[len(*events)-1].Type)

	assert.False(t, c.Retry(), "retry only from results")
	require.True(t, c.Start())
	assert.Equal(t, 0, c.Session().Index)
}

func TestCustomAnswerDelay(t *testing.T) {
	bank, err := NewBank(sampleQuestions(2))
	require.NoError(t, err)
	c := NewController(bank, NewShuffler(3), nil, WithAnswerDelay(100*time.Millisecond))
	c.Loaded()
	c.Start()

	require.True(t, c.Select(0))
	c.Update(0.05)
	assert.Equal(t, 0, c.Session().Index)
	c.Update(0.06)
	assert.Equal(t, 1, c.Session().Index)
}

func TestUpdateIgnoresNonPositiveDt(t *testing.T) {
	c, _ := newTestController(t, 2)
	require.True(t, c.Start())
	require.True(t, c.Select(0))
	c.Update(0)
	c.Update(-5)
	assert.True(t, c.Session().Answering())
}
