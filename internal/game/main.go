package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"quizfx/internal/config"
	"quizfx/internal/fx"
	"quizfx/internal/quiz"
	"quizfx/internal/rng"
	"quizfx/internal/ui"
)

// Seed salts for independent random streams.
const (
	saltShuffle = 0x5A1F
	saltEffects = 0xBEAD
)

// Run opens the window and drives the quiz until the window closes.
func Run(cfg *config.Config, bank *quiz.Bank, log zerolog.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Msg("random seed")

	winW, winH := window.GetSize()
	layout := ui.NewLayout(float64(winW), float64(winH))
	effects := fx.NewEffects(float64(winW), float64(winH), rng.Derive(seed, saltEffects),
		fx.WithResultCount(cfg.Effects.ResultCount),
		fx.WithCursorCadence(cfg.Effects.CursorCadence),
		fx.WithMaxCursor(cfg.Effects.MaxCursor),
	)

	bus := quiz.NewEventBus()
	ctrl := quiz.NewController(bank, quiz.NewShuffler(rng.Derive(seed, saltShuffle)), bus,
		quiz.WithAnswerDelay(cfg.Quiz.AnswerDelay),
		quiz.WithLogger(log),
	)
	effects.Subscribe(bus, layout.OptionCentre)

	if cfg.Audio.Enabled {
		audio, err := NewAudio(cfg.Audio.Volume)
		if err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		} else {
			audio.Bind(bus)
		}
	}

	ctrl.Loaded()

	scene := &Scene{Ctrl: ctrl, Layout: layout, Effects: effects}
	input := NewInput()

	acc := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		w, h := window.GetSize()
		if fbW <= 0 || fbH <= 0 || w <= 0 || h <= 0 {
			continue
		}
		if w != winW || h != winH {
			winW, winH = w, h
			layout.Resize(float64(w), float64(h))
			effects.Resize(float64(w), float64(h))
			log.Debug().Int("width", w).Int("height", h).Msg("resize")
		}

		cx, cy := input.PollCursor(window)
		layout.SetOptions(ctrl.Options())
		layout.UpdateHover(ctrl.State(), cx, cy)

		if input.JustClicked(window, glfw.MouseButtonLeft) {
			layout.Click(ctrl, cx, cy)
		}
		if slot := input.OptionKey(window); slot >= 0 {
			ctrl.Select(slot)
		}
		enter := input.JustPressed(window, glfw.KeyEnter)
		space := input.JustPressed(window, glfw.KeySpace)
		if enter || space {
			ui.Activate(ctrl)
		}

		acc += dt
		steps := 0
		for acc >= SimStep && steps < MaxSimSteps {
			ctrl.Update(SimStep)
			effects.Tick(input.TakePointer(window))
			acc -= SimStep
			steps++
		}
		if steps == MaxSimSteps {
			acc = 0
		}

		layout.SetOptions(ctrl.Options())
		rend.BeginFrame(fbW, fbH, winW, winH)
		rend.RenderScene(scene)
		window.SwapBuffers()
	}
	return nil
}
