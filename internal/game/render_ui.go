package game

import (
	"quizfx/internal/fx"
	"quizfx/internal/quiz"
	"quizfx/internal/ui"
)

var (
	colText        = fx.Palette.White
	colMuted       = fx.RGB{R: 200, G: 200, B: 200}
	colProgress    = fx.RGB{R: 150, G: 150, B: 150}
	colFeedbackOK  = fx.RGB{R: 0, G: 255, B: 0}
	colFeedbackBad = fx.RGB{R: 255, G: 0, B: 0}
)

var (
	buttonNormal = RectStyle{
		Fill:        fx.RGB{R: 60, G: 80, B: 150},
		Border:      fx.RGB{R: 200, G: 200, B: 200},
		BorderWidth: 1,
		Radius:      10,
	}
	buttonHover = RectStyle{
		Fill:        fx.RGB{R: 100, G: 150, B: 255},
		Border:      fx.Palette.White,
		BorderWidth: 3,
		Radius:      10,
	}
)

// Hovered buttons grow by this much.
const (
	hoverGrowW = 10
	hoverGrowH = 5
)

// Scene bundles everything a frame draws.
type Scene struct {
	Ctrl    *quiz.Controller
	Layout  *ui.Layout
	Effects *fx.Effects

	spriteBuf []float32
}

func (r *Renderer) drawButton(b *ui.Button) {
	w, h := float32(b.W), float32(b.H)
	st := buttonNormal
	if b.Hover {
		st = buttonHover
		w += hoverGrowW
		h += hoverGrowH
	}
	r.DrawRect(float32(b.X), float32(b.Y), w, h, st)
	scale := FitScale(b.Text, ButtonScale, w-16)
	r.DrawCentered(b.Text, float32(b.X), float32(b.Y), scale, colText)
}

// RenderScene draws the screen for the controller's state, then the cursor
// trail and selection ring on top.
func (r *Renderer) RenderScene(s *Scene) {
	l := s.Layout
	w, h := float32(l.W), float32(l.H)

	switch s.Ctrl.State() {
	case quiz.StateLoading:
		r.DrawCentered(ui.LoadingText, w/2, h/2, HeadingScale, colText)

	case quiz.StateStart:
		title := ui.TitleText
		r.DrawCentered(title, w/2, h/2-60, FitScale(title, TitleScale, w*0.9), colText)
		r.DrawCentered(ui.CountText(s.Ctrl.Count()), w/2, h/2, BodyScale, colMuted)
		r.drawButton(&l.Start)

	case quiz.StateQuizzing:
		r.renderQuizzing(s)

	case quiz.StateResults:
		s.spriteBuf = s.Effects.ResultRenderData(s.spriteBuf)
		r.DrawSprites(s.spriteBuf)
		r.renderResults(s)
	}

	r.FlushRects()
	r.FlushText()

	s.spriteBuf = s.Effects.TrailRenderData(s.spriteBuf)
	r.DrawSprites(s.spriteBuf)
}

func (r *Renderer) renderQuizzing(s *Scene) {
	l := s.Layout
	w, h := float32(l.W), float32(l.H)
	sess := s.Ctrl.Session()

	if q, ok := s.Ctrl.Question(); ok {
		maxChars := int(w * QuestionWidth / (FontCellW * BodyScale))
		lineH := float32(FontCellH)*BodyScale + 6
		y := float32(QuestionTop)
		for _, line := range ui.Wrap(ui.QuestionText(sess.Index, q.Text), maxChars) {
			r.DrawCentered(line, w/2, y, BodyScale, colText)
			y += lineH
		}
	}

	for i := range l.Options {
		if l.Options[i].Text == "" {
			continue
		}
		r.drawButton(&l.Options[i])
	}

	if sess.Feedback != "" {
		col := colFeedbackBad
		if sess.FeedbackCorrect {
			col = colFeedbackOK
		}
		r.DrawCentered(sess.Feedback, w/2, h-FeedbackInset, HeadingScale, col)
	}

	progress := ui.ProgressText(sess.Index, s.Ctrl.Count(), sess.Score)
	r.DrawCentered(progress, w/2, h-ProgressInset, SmallScale, colProgress)
}

func (r *Renderer) renderResults(s *Scene) {
	l := s.Layout
	w, h := float32(l.W), float32(l.H)
	sess := s.Ctrl.Session()

	style := ui.StyleFor(quiz.TierFor(s.Ctrl.Percentage()))
	r.DrawCentered(style.Title, w/2, h/2-80, FitScale(style.Title, TitleScale, w*0.9), style.Col)
	r.DrawCentered(ui.ScoreText(s.Ctrl.RoundedPercentage()), w/2, h/2, HeadingScale, colText)
	r.DrawCentered(ui.TallyText(sess.Score, s.Ctrl.Count()), w/2, h/2+40, BodyScale, colMuted)
	r.drawButton(&l.Retry)
}
